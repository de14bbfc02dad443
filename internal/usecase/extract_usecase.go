package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/user/extractor-service/internal/entity"
	"github.com/user/extractor-service/internal/normalize"
	"github.com/user/extractor-service/internal/quality"
	"github.com/user/extractor-service/internal/repository"
	"github.com/user/extractor-service/pkg/metrics"
	"github.com/user/extractor-service/pkg/utils"
)

// Profile selects the strategy cascade a deployment runs. The fast profile
// is static-only; callers are expected to escalate to the dynamic profile
// themselves when it fails.
type Profile string

const (
	ProfileFast    Profile = "fast"
	ProfileDynamic Profile = "dynamic"
)

// Extractor defines the interface for running the extraction cascade.
// Extract never returns an error: every failure is captured into the
// result with success=false and a human-readable message.
type Extractor interface {
	Extract(ctx context.Context, url string) *entity.ExtractionResult
}

type extractUseCase struct {
	profile    Profile
	strategies []repository.Strategy
}

// NewExtractor creates the cascade orchestrator for a profile. Strategies
// are tried in the given order, cheapest first; the cascade never runs two
// strategies concurrently.
func NewExtractor(profile Profile, strategies ...repository.Strategy) Extractor {
	return &extractUseCase{
		profile:    profile,
		strategies: strategies,
	}
}

// cascadeState tracks one request through the cascade:
// pending → trying(i) → accepted | rejected→trying(i+1) | exhausted→failed.
type cascadeState struct {
	url        string
	bestText   string
	bestLen    int
	bestTitle  string
	lastMethod string
	lastErr    string
}

func (uc *extractUseCase) Extract(ctx context.Context, url string) *entity.ExtractionResult {
	state := &cascadeState{url: url}

	for _, strat := range uc.pick(url) {
		method := strat.Name()
		slog.Info("trying extraction strategy", "url", url, "method", method)

		start := time.Now()
		raw, err := uc.attempt(ctx, strat, url)
		metrics.ExtractionDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

		state.lastMethod = method
		if err != nil {
			// Captured, not fatal: the cascade escalates past transport,
			// timeout, render and configuration failures alike.
			metrics.ExtractionsTotal.WithLabelValues(method, "error").Inc()
			state.lastErr = classify(err)
			continue
		}

		if raw.Title != "" && state.bestTitle == "" {
			state.bestTitle = raw.Title
		}

		// Legal stubs are detected on raw text and end the cascade at
		// once: cleaning must never launder a terms page into acceptance.
		if quality.IsLegalNotice(raw.Text) {
			metrics.ExtractionsTotal.WithLabelValues(method, "legal").Inc()
			verdict := entity.QualityVerdict{Reason: entity.ReasonLegalNotice}
			return uc.failure(state, raw.Method, rejectionMessage(verdict))
		}

		text := raw.Text
		if method != entity.MethodTavily {
			// The external provider already returns cleaned text.
			text = normalize.Clean(text)
		}

		verdict := quality.Evaluate(text)
		if verdict.Accepted {
			metrics.ExtractionsTotal.WithLabelValues(method, "success").Inc()
			slog.Info("extraction accepted", "url", url, "method", method, "length", verdict.EffectiveLength)
			return &entity.ExtractionResult{
				Success:       true,
				URL:           url,
				Domain:        utils.DomainOf(url),
				Title:         pickTitle(raw.Title, state.bestTitle),
				Content:       text,
				ContentLength: verdict.EffectiveLength,
				Method:        method,
			}
		}

		metrics.ExtractionsTotal.WithLabelValues(method, "rejected").Inc()
		slog.Info("extraction rejected, escalating", "url", url, "method", method,
			"reason", string(verdict.Reason), "length", verdict.EffectiveLength)

		// A strategy that produced some text, even rejected, beats one
		// that errored outright.
		if verdict.EffectiveLength > state.bestLen {
			state.bestText = text
			state.bestLen = verdict.EffectiveLength
		}
		state.lastErr = rejectionMessage(verdict)
	}

	msg := state.lastErr
	if msg == "" {
		msg = "extraction failed"
	}
	return uc.failure(state, state.lastMethod, msg+uc.escalationHint())
}

// pick applies the domain policy table: allowlisted hosts skip the plain
// renderer and start at the stealth variant.
func (uc *extractUseCase) pick(url string) []repository.Strategy {
	if !forceStealth(utils.DomainOf(url)) {
		return uc.strategies
	}
	picked := make([]repository.Strategy, 0, len(uc.strategies))
	for _, s := range uc.strategies {
		if s.Name() == entity.MethodChromedp {
			continue
		}
		picked = append(picked, s)
	}
	if len(picked) == 0 {
		return uc.strategies
	}
	return picked
}

// attempt shields the cascade from a misbehaving strategy: a panic becomes
// a captured failure like any other.
func (uc *extractUseCase) attempt(ctx context.Context, strat repository.Strategy, url string) (raw *entity.RawExtraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("strategy panicked", "method", strat.Name(), "url", url, "panic", r)
			raw, err = nil, fmt.Errorf("internal error in %s strategy: %v", strat.Name(), r)
		}
	}()
	return strat.Extract(ctx, url)
}

func (uc *extractUseCase) failure(state *cascadeState, method, message string) *entity.ExtractionResult {
	return &entity.ExtractionResult{
		URL:           state.url,
		Domain:        utils.DomainOf(state.url),
		Title:         state.bestTitle,
		Content:       state.bestText,
		ContentLength: state.bestLen,
		Method:        method,
		Error:         message,
	}
}

func (uc *extractUseCase) escalationHint() string {
	if uc.profile == ProfileFast {
		return "; the page may require JavaScript rendering, retry via the /playwright endpoint"
	}
	return ""
}

func pickTitle(current, fallback string) string {
	if current != "" {
		return current
	}
	return fallback
}

func classify(err error) string {
	switch {
	case errors.Is(err, repository.ErrExtractionTimeout):
		return "page load timed out"
	case errors.Is(err, repository.ErrNavigationFailed):
		return fmt.Sprintf("could not download or navigate to the page: %v", err)
	case errors.Is(err, repository.ErrNoContent):
		return "no content element was found on the rendered page"
	case errors.Is(err, repository.ErrMissingCredentials):
		return "external extraction provider is not configured (missing API key)"
	case errors.Is(err, repository.ErrProviderEmpty):
		return "external extraction provider returned no usable content"
	default:
		return err.Error()
	}
}

func rejectionMessage(v entity.QualityVerdict) string {
	switch v.Reason {
	case entity.ReasonEmpty:
		return "no article text could be extracted"
	case entity.ReasonTooShort:
		return fmt.Sprintf("content too short (%d chars, minimum %d)", v.EffectiveLength, quality.MinContentLength)
	case entity.ReasonLegalNotice:
		return "the page served a terms-of-service/legal notice instead of the article body"
	default:
		return string(v.Reason)
	}
}
