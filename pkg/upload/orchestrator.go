package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	pdf "github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// ErrNotPDF rejects a file whose declared media type is not PDF. No network
// call is made for a rejected file.
var ErrNotPDF = errors.New("only pdf files are accepted")

// ErrUnreadablePDF rejects a file that declares PDF but cannot be opened as
// one. Also raised before any network call.
var ErrUnreadablePDF = errors.New("file is not a readable pdf")

// IngestError reports a failed ingestion call. The caller keeps its file
// selection so the upload can be retried without re-picking.
type IngestError struct {
	Status int
	Err    error
}

func (e *IngestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("ingestion failed with status %d", e.Status)
	}
	return fmt.Sprintf("ingestion call failed: %v", e.Err)
}

func (e *IngestError) Unwrap() error { return e.Err }

// File is one candidate CV handed to the orchestrator.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Orchestrator validates a CV file and drives one multipart call to the
// external ingestion endpoint. The endpoint parses, embeds and inserts the
// profile row on its side; the orchestrator only reports the outcome.
type Orchestrator struct {
	endpoint string
	httpDo   *http.Client
	log      *zap.Logger

	// OnSuccess runs after a 2xx from the ingestion endpoint, letting the
	// caller refresh its record set.
	OnSuccess func()

	now func() time.Time
}

func New(endpoint string, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		endpoint: endpoint,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// StorageName derives the object name the ingestion pipeline stores the file
// under: the epoch-millisecond timestamp joined with the first 12 characters
// of the filename without its .pdf extension. Millisecond timestamps make
// collisions negligible; they are not designed away.
func StorageName(filename string, at time.Time) string {
	name := filename
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".pdf") {
		name = name[:len(name)-4]
	}
	if len(name) > 12 {
		name = name[:12]
	}
	return fmt.Sprintf("%d_%s", at.UnixMilli(), name)
}

// Submit validates f and drives the ingestion call. When progress is
// non-nil the orchestrator owns it: it emits a monotonically increasing
// percentage while the call is outstanding, snaps to 100 once a response
// arrives, and closes the channel. The percentage is synthetic; the
// ingestion endpoint exposes no byte-level progress.
func (o *Orchestrator) Submit(ctx context.Context, f File, progress chan<- int) error {
	// Close the channel ourselves when failing before the call starts, so a
	// subscriber ranging over it is never left hanging.
	fail := func(err error) error {
		if progress != nil {
			close(progress)
		}
		return err
	}

	if f.ContentType != "application/pdf" {
		return fail(ErrNotPDF)
	}
	if _, err := pdf.NewReader(bytes.NewReader(f.Data), int64(len(f.Data))); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrUnreadablePDF, err))
	}

	name := StorageName(f.Name, o.now())
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("data", f.Name)
	if err != nil {
		return fail(err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return fail(err)
	}
	if err := mw.WriteField("time_filename", name); err != nil {
		return fail(err)
	}
	if err := mw.Close(); err != nil {
		return fail(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, body)
	if err != nil {
		return fail(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	done := make(chan bool, 1)
	if progress != nil {
		go report(progress, done)
	}

	resp, err := o.httpDo.Do(req)
	if progress != nil {
		done <- err == nil
	}
	if err != nil {
		return &IngestError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &IngestError{Status: resp.StatusCode}
	}

	o.log.Info("cv submitted for ingestion",
		zap.String("filename", f.Name),
		zap.String("storedAs", name),
		zap.Int("sizeB", len(f.Data)),
	)
	if o.OnSuccess != nil {
		o.OnSuccess()
	}
	return nil
}

// report emits synthetic progress until the request completes. It holds
// below 100 while the call is outstanding and snaps to 100 only when a
// response actually arrived.
func report(progress chan<- int, done <-chan bool) {
	defer close(progress)
	pct := 0
	t := time.NewTicker(200 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case responded := <-done:
			if responded {
				progress <- 100
			}
			return
		case <-t.C:
			if pct < 90 {
				pct += 7
				progress <- pct
			}
		}
	}
}
