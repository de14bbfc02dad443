// Package chromedp_renderer implements the rendered-DOM extraction
// strategies. Every call spawns its own isolated browser process and tears
// it down on all exit paths; nothing is pooled or reused across requests,
// so no cookies or navigation history can bleed between extractions.
package chromedp_renderer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/user/extractor-service/internal/entity"
	"github.com/user/extractor-service/internal/repository"
)

const userAgent = `Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36`

// Non-text resources are blocked before navigation to cut page-load time.
var blockedURLPatterns = []string{
	"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.svg", "*.ico",
	"*.woff", "*.woff2", "*.ttf", "*.otf",
	"*.css",
	"*.mp4", "*.webm", "*.mp3",
}

// contentSelector is the best-effort wait target for client-side rendered
// article bodies. Its absence is tolerated, never fatal.
const contentSelector = `article, main, .post_content, .editor, .article-content`

type Options struct {
	PageLoadTimeout time.Duration
	SettleDelay     time.Duration
	SelectorWait    time.Duration
}

type Strategy struct {
	opts    Options
	stealth bool
}

// NewStrategy returns the standard rendered-DOM strategy.
func NewStrategy(opts Options) repository.Strategy {
	return &Strategy{opts: opts}
}

// NewStealthStrategy returns the anti-detection variant: same extraction
// and selection logic, with automation fingerprints masked and a realistic
// viewport, user agent and locale applied before navigation.
func NewStealthStrategy(opts Options) repository.Strategy {
	return &Strategy{opts: opts, stealth: true}
}

func (s *Strategy) Name() string {
	if s.stealth {
		return entity.MethodChromedpSneaky
	}
	return entity.MethodChromedp
}

func (s *Strategy) Extract(ctx context.Context, url string) (*entity.RawExtraction, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.UserAgent(userAgent),
	)
	if s.stealth {
		allocOpts = append(allocOpts,
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
			chromedp.Flag("lang", "ko-KR"),
		)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	budget := s.opts.PageLoadTimeout + s.opts.SettleDelay + s.opts.SelectorWait + 10*time.Second
	taskCtx, timeoutCancel := context.WithTimeout(taskCtx, budget)
	defer timeoutCancel()

	var title, html string
	tasks := chromedp.Tasks{
		network.Enable(),
		network.SetBlockedURLs(blockedURLPatterns),
	}
	if s.stealth {
		tasks = append(tasks,
			chromedp.ActionFunc(func(ctx context.Context) error {
				_, err := page.AddScriptToEvaluateOnNewDocument(stealthScript).Do(ctx)
				return err
			}),
			emulation.SetDeviceMetricsOverride(1920, 1080, 1.0, false),
		)
	}
	tasks = append(tasks,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(s.opts.SettleDelay),
		waitForContent(s.opts.SelectorWait),
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &html),
	)

	if err := chromedp.Run(taskCtx, tasks...); err != nil {
		slog.Warn("render failed", "url", url, "method", s.Name(), "error", err)
		classified := repository.ErrNavigationFailed
		if errors.Is(err, context.DeadlineExceeded) {
			classified = repository.ErrExtractionTimeout
		}
		return &entity.RawExtraction{
			Method:        s.Name(),
			FailureReason: err,
		}, fmt.Errorf("%w: %v", classified, err)
	}

	body, err := SelectBody(html)
	if err != nil {
		return &entity.RawExtraction{
			Title:         title,
			Method:        s.Name(),
			FailureReason: err,
		}, fmt.Errorf("%w: %v", repository.ErrNoContent, err)
	}

	return &entity.RawExtraction{
		Text:   body,
		Title:  title,
		Method: s.Name(),
	}, nil
}

// waitForContent polls for a content-bearing element within its own bounded
// window. A missing selector is tolerated; only cancellation of the parent
// context aborts the task chain.
func waitForContent(wait time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		waitCtx, cancel := context.WithTimeout(ctx, wait)
		defer cancel()
		err := chromedp.WaitReady(contentSelector, chromedp.ByQuery).Do(waitCtx)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	})
}
