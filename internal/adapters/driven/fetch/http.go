package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driven"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// requestsPerSecond is the sustained request rate against the library
	// host. The library is a handful of static files, so this is generous.
	requestsPerSecond = 4.0

	// burstSize allows one full default source list in a single burst.
	burstSize = 8

	// maxPayloadSize caps a single source payload at 32 MiB.
	maxPayloadSize = 32 << 20
)

// HTTPFetcher loads source payloads from a base URL over HTTP.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

var _ driven.Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher rooted at baseURL. A nil client uses a
// default with a 30 second timeout.
func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
		now:     time.Now,
	}
}

// Load fetches the payload for one source. When force is true the request
// carries a timestamp query parameter and a no-store cache directive so every
// intermediary cache is bypassed.
func (f *HTTPFetcher) Load(ctx context.Context, source domain.SourceFile, force bool) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	target, err := f.sourceURL(source, force)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", source.ID, err)
	}
	req.Header.Set("Accept", "application/json")
	if force {
		req.Header.Set("Cache-Control", "no-store")
	}

	logger.Debug("fetching %s from %s", source.ID, target)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("fetching %s: %w", source.ID, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", source.ID, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source.ID, err)
	}
	return data, nil
}

func (f *HTTPFetcher) sourceURL(source domain.SourceFile, force bool) (string, error) {
	if source.Path == "" {
		return "", fmt.Errorf("source %s: %w", source.ID, domain.ErrInvalidInput)
	}
	target := f.baseURL + "/" + strings.TrimLeft(source.Path, "/")
	if !force {
		return target, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parsing url for %s: %w", source.ID, err)
	}
	q := u.Query()
	q.Set("ts", strconv.FormatInt(f.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
