package blob

import "context"

// Store is the port to the external object storage holding uploaded CV
// files. Objects are addressed by bare name inside a fixed bucket.
type Store interface {
	Remove(ctx context.Context, name string) error
}
