// Package loader fetches the plant dataset document. A load is a single
// attempt; there is no retry.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/metrics"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/models"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/tracing"
)

// ErrLoad wraps every failure to fetch or decode the dataset.
var ErrLoad = errors.New("load dataset")

// MaxDocumentSize caps the size of the dataset document.
const MaxDocumentSize = 16 << 20

// Options configures a Loader.
type Options struct {
	// Source is an http(s) URL or a filesystem path.
	Source string

	// Timeout bounds an HTTP fetch. Zero means no timeout.
	Timeout time.Duration

	// Client overrides the HTTP client used for URL sources.
	Client *http.Client
}

// Loader reads the dataset from its configured source.
type Loader struct {
	source string
	client *http.Client
}

// New creates a loader. URL sources are fetched with an otelhttp
// instrumented client unless Options.Client is set.
func New(opts Options) *Loader {
	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Loader{source: opts.Source, client: client}
}

// Source returns the configured source.
func (l *Loader) Source() string {
	return l.source
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load fetches and decodes the dataset. Errors wrap ErrLoad.
func (l *Loader) Load(ctx context.Context) (*models.Dataset, error) {
	ctx, span := tracing.LoadSpan(ctx, l.source)
	defer span.End()

	start := time.Now()
	ds, err := l.load(ctx)
	if err != nil {
		err = fmt.Errorf("%w from %s: %w", ErrLoad, l.source, err)
		tracing.EndWithError(span, err)
		metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.DatasetLoadsTotal.WithLabelValues("success").Inc()
	log.Debug().
		Str("source", l.source).
		Int("plants", len(ds.Plants)).
		Dur("duration", time.Since(start)).
		Msg("Dataset decoded")
	return ds, nil
}

func (l *Loader) load(ctx context.Context) (*models.Dataset, error) {
	if l.source == "" {
		return nil, errors.New("no source configured")
	}

	var body io.ReadCloser
	if IsURL(l.source) {
		rc, err := l.fetch(ctx)
		if err != nil {
			return nil, err
		}
		body = rc
	} else {
		f, err := os.Open(l.source)
		if err != nil {
			return nil, err
		}
		body = f
	}
	defer body.Close()

	return Decode(io.LimitReader(body, MaxDocumentSize))
}

func (l *Loader) fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Decode parses a dataset document. Absent top-level fields become empty
// collections.
func Decode(r io.Reader) (*models.Dataset, error) {
	var ds models.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	ds.Normalize()
	return &ds, nil
}
