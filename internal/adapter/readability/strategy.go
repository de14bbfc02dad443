// Package readability implements the static-parse extraction strategy on
// top of go-readability's content-density heuristics. It never executes
// page script: publishers that inject their body client-side come back
// short here, which the cascade treats as a signal to escalate, not a bug.
package readability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/user/extractor-service/internal/entity"
	"github.com/user/extractor-service/internal/repository"
)

type Strategy struct {
	timeout time.Duration
}

func NewStrategy(timeout time.Duration) repository.Strategy {
	return &Strategy{timeout: timeout}
}

func (s *Strategy) Name() string { return entity.MethodReadability }

// Extract downloads the page and parses it statically. All failure modes
// (network error, non-2xx, parser error) are captured into the returned
// error, never raised further.
func (s *Strategy) Extract(ctx context.Context, url string) (*entity.RawExtraction, error) {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	article, err := readability.FromURL(url, timeout)
	if err != nil {
		slog.Warn("static parse failed", "url", url, "error", err)
		return &entity.RawExtraction{
			Method:        s.Name(),
			FailureReason: err,
		}, fmt.Errorf("%w: %v", repository.ErrNavigationFailed, err)
	}

	return &entity.RawExtraction{
		Text:   article.TextContent,
		Title:  article.Title,
		Method: s.Name(),
	}, nil
}
