// Package translate resolves text translations through a prioritized list of
// Lingva-compatible mirror endpoints. Mirrors are tried strictly in order,
// each with its own bounded retry and growing backoff; a translation that
// cannot be resolved anywhere degrades to an empty string, never an error.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// DefaultMirrors is the built-in mirror order used when no mirrors are
// configured.
var DefaultMirrors = []string{
	"https://lingva.ml/api/v1",
	"https://lingva.garudalinux.org/api/v1",
	"https://translate.plausible.stream/api/v1",
}

// errRateLimited marks a 429 from a mirror. A rate-limited mirror is expected
// to keep throttling, so exhausting retries on it gives up quietly instead of
// surfacing an error.
var errRateLimited = errors.New("mirror rate limited")

type Gateway struct {
	client      *resty.Client
	mirrors     []string
	maxRetries  uint
	baseBackoff time.Duration
}

// NewGateway creates a gateway over the given mirrors, falling back to
// DefaultMirrors when the list is empty.
func NewGateway(mirrors []string, maxRetries uint, baseBackoff time.Duration) *Gateway {
	if len(mirrors) == 0 {
		mirrors = DefaultMirrors
	}
	return &Gateway{
		client:      resty.New(),
		mirrors:     append([]string(nil), mirrors...),
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

func (g *Gateway) Close() error {
	return g.client.Close()
}

type lingvaResponse struct {
	Translation string `json:"translation"`
}

// Translate translates text from sourceLang to targetLang. An empty result
// means no mirror could translate the text; Translate never fails.
func (g *Gateway) Translate(ctx context.Context, text, sourceLang, targetLang string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	for _, mirror := range g.mirrors {
		result, err := g.translateWithMirror(ctx, mirror, text, sourceLang, targetLang)
		if err != nil {
			slog.Default().Debug("translation mirror exhausted",
				"mirror", mirror,
				"error", err,
			)
			continue
		}
		if strings.TrimSpace(result) != "" {
			return result
		}
	}
	return ""
}

// translateWithMirror runs the bounded retry loop against a single mirror.
// It returns ("", nil) when the mirror kept rate limiting, so the caller
// moves on without treating it as a mirror failure.
func (g *Gateway) translateWithMirror(ctx context.Context, mirror, text, sourceLang, targetLang string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/%s",
		strings.TrimRight(mirror, "/"),
		sourceLang,
		targetLang,
		url.PathEscape(text),
	)

	backoff := newBackoffState(g.baseBackoff)
	var translation string
	err := retry.Do(
		func() error {
			res, err := g.client.R().
				SetContext(ctx).
				Get(endpoint)
			if err != nil {
				return fmt.Errorf("client.R.Get > %w", err)
			}
			if res.StatusCode() == http.StatusTooManyRequests {
				return errRateLimited
			}
			if res.IsError() {
				return fmt.Errorf("response error %d: %s", res.StatusCode(), res.String())
			}

			var parsed lingvaResponse
			if err := json.Unmarshal(res.Bytes(), &parsed); err != nil {
				return retry.Unrecoverable(fmt.Errorf("json.Unmarshal(%s) > %w", res.String(), err))
			}
			translation = parsed.Translation
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(g.maxRetries+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return backoff.next()
		}),
	)
	if err != nil {
		if errors.Is(err, errRateLimited) {
			return "", nil
		}
		return "", err
	}
	return translation, nil
}
