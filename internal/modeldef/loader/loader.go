package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/zbyte64/micromodels-forms/pkg/modeldef"
)

// DefaultMaxDocumentSize caps loaded payloads when no explicit limit is
// configured. Definition documents are small; anything near this is almost
// certainly the wrong file.
const DefaultMaxDocumentSize int64 = 8 << 20

// Loader implements modeldef.Loader. Every source kind is opened as a
// stream and read through a shared size cap, so an oversized document fails
// the same way no matter where it came from.
type Loader struct {
	files   fs.FS
	client  *http.Client
	maxSize int64
}

var _ modeldef.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. URL sources stay
// disabled unless a client is supplied or the HTTP fallback is enabled.
func New(options modeldef.LoaderOptions) *Loader {
	l := &Loader{
		files:   options.FileSystem,
		maxSize: options.MaxDocumentSize,
	}
	if l.maxSize <= 0 {
		l.maxSize = DefaultMaxDocumentSize
	}

	switch {
	case options.HTTPClient != nil:
		client := *options.HTTPClient
		if client.Timeout == 0 {
			client.Timeout = options.RequestTimeout
		}
		l.client = &client
	case options.AllowHTTPFallback:
		l.client = &http.Client{Timeout: options.RequestTimeout}
	}
	return l
}

// Load opens the source, reads it through the size cap, and wraps the
// payload in a Document.
func (l *Loader) Load(ctx context.Context, src modeldef.Source) (modeldef.Document, error) {
	if src.IsZero() {
		return modeldef.Document{}, errors.New("modeldef loader: source is required")
	}
	if err := ctx.Err(); err != nil {
		return modeldef.Document{}, err
	}

	var (
		stream io.ReadCloser
		err    error
	)
	switch src.Kind() {
	case modeldef.SourceKindFile:
		stream, err = l.openFile(src.Location())
	case modeldef.SourceKindFS:
		stream, err = l.openFS(src.Location())
	case modeldef.SourceKindURL:
		stream, err = l.fetch(ctx, src.Location())
	default:
		err = fmt.Errorf("modeldef loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return modeldef.Document{}, err
	}
	defer func() {
		_ = stream.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(stream, l.maxSize+1))
	if err != nil {
		return modeldef.Document{}, fmt.Errorf("modeldef loader: read %s: %w", src, err)
	}
	if int64(len(payload)) > l.maxSize {
		return modeldef.Document{}, fmt.Errorf("modeldef loader: document %s exceeds %d bytes", src, l.maxSize)
	}
	return modeldef.NewDocument(src, payload)
}

func (l *Loader) openFile(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, errors.New("modeldef loader: file path is required")
	}
	return os.Open(path)
}

func (l *Loader) openFS(name string) (io.ReadCloser, error) {
	if l.files == nil {
		return nil, errors.New("modeldef loader: no filesystem configured for fs sources")
	}
	if name == "" {
		return nil, errors.New("modeldef loader: fs entry name is required")
	}
	return l.files.Open(name)
}

func (l *Loader) fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	if l.client == nil {
		return nil, errors.New("modeldef loader: http support disabled")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("modeldef loader: build request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/yaml, application/json, text/plain")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("modeldef loader: fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("modeldef loader: fetch %s: unexpected status %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}
