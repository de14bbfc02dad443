package tavily

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/user/extractor-service/internal/entity"
	"github.com/user/extractor-service/internal/repository"
)

// Strategy wraps the client as the cascade's external-fallback step. A
// missing credential is a configuration error surfaced as a strategy
// rejection, never a crash.
type Strategy struct {
	client *Client
}

func NewStrategy(client *Client) repository.Strategy {
	return &Strategy{client: client}
}

func (s *Strategy) Name() string { return entity.MethodTavily }

func (s *Strategy) Extract(ctx context.Context, url string) (*entity.RawExtraction, error) {
	if s.client == nil || s.client.APIKey == "" {
		return &entity.RawExtraction{
			Method:        s.Name(),
			FailureReason: repository.ErrMissingCredentials,
		}, repository.ErrMissingCredentials
	}

	content, err := s.client.ExtractContent(ctx, url)
	if err != nil {
		slog.Warn("tavily extraction failed", "url", url, "error", err)
		return &entity.RawExtraction{
			Method:        s.Name(),
			FailureReason: err,
		}, fmt.Errorf("%w: %v", repository.ErrProviderEmpty, err)
	}

	// The provider returns no title; the orchestrator keeps the best title
	// seen by an earlier strategy.
	return &entity.RawExtraction{
		Text:   content,
		Method: s.Name(),
	}, nil
}
