package repository

import (
	"context"
	"errors"

	"github.com/user/extractor-service/internal/entity"
)

var (
	// ErrExtractionTimeout indicates the per-strategy time budget was exceeded.
	ErrExtractionTimeout = errors.New("extraction timed out")
	// ErrNavigationFailed indicates the page could not be downloaded or navigated to.
	ErrNavigationFailed = errors.New("navigation failed")
	// ErrNoContent indicates the page rendered but no content-bearing element was found.
	ErrNoContent = errors.New("no content element found")
	// ErrMissingCredentials indicates the external provider is not configured.
	ErrMissingCredentials = errors.New("external provider credentials are not configured")
	// ErrProviderEmpty indicates the external provider returned no usable result.
	ErrProviderEmpty = errors.New("external provider returned no content")
)

// Strategy defines the contract for one way of obtaining article text from a URL.
// Implementations capture their own failures: a returned error is a classification
// of what went wrong, never a panic escaping the strategy.
type Strategy interface {
	// Name returns the method tag this strategy stamps on its extractions.
	Name() string
	// Extract attempts to obtain raw article text for the URL.
	Extract(ctx context.Context, url string) (*entity.RawExtraction, error)
}
