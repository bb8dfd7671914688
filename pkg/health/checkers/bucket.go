package checkers

import (
	"context"
	"time"

	"github.com/conchobar/candidates/pkg/blob/bucket"
)

type BucketChecker struct {
	client *bucket.Client
}

func NewBucketChecker(client *bucket.Client) *BucketChecker {
	return &BucketChecker{client: client}
}

func (c *BucketChecker) Name() string { return "bucket" }

func (c *BucketChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.client.Ping(ctx)
}
