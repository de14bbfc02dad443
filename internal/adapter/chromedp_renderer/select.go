package chromedp_renderer

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/user/extractor-service/internal/entity"
	"github.com/user/extractor-service/internal/quality"
)

// minFragmentLength is the paragraph cutoff in characters. Shorter
// fragments are almost always UI labels; legitimate short paragraphs still
// accumulate once joined at the tier level.
const minFragmentLength = 25

// Known article-body containers across the observed publishers, tried
// after <article> and before <main>.
var contentContainers = []string{
	".article-content",
	".post_content",
	".editor",
	"#article-view-content-div",
	".news_body",
	".article_body",
	"#articleBody",
}

// Paragraphs containing these fragments are UI chrome, not reporting; only
// consulted in the last, page-wide tier.
var boilerplateFragments = []string{
	"쿠키", "cookie",
	"로그인", "log in", "sign in",
	"회원가입",
	"구독", "subscribe", "newsletter",
	"동의", "consent",
}

var errNoBody = errors.New("no paragraph tier produced a body")

// SelectBody picks article paragraphs out of a serialized rendered DOM.
// Tiers are tried in priority order until the joined body reaches the
// quality threshold; the best (longest) tier output is kept as a fallback
// when none does.
func SelectBody(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, nav, header, footer, aside, iframe, noscript").Remove()

	best := ""
	tiers := []func() string{
		func() string { return joinParagraphs(doc.Find("article p"), false) },
		func() string {
			for _, sel := range contentContainers {
				if body := joinParagraphs(doc.Find(sel+" p"), false); body != "" {
					return body
				}
			}
			return ""
		},
		func() string { return joinParagraphs(doc.Find("main p"), false) },
		func() string { return joinParagraphs(doc.Find("p"), true) },
	}
	for _, tier := range tiers {
		body := tier()
		if entity.TextLength(body) >= quality.MinContentLength {
			return body, nil
		}
		if entity.TextLength(body) > entity.TextLength(best) {
			best = body
		}
	}
	if best == "" {
		return "", errNoBody
	}
	return best, nil
}

func joinParagraphs(sel *goquery.Selection, filterBoilerplate bool) string {
	var parts []string
	sel.Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if entity.TextLength(text) <= minFragmentLength {
			return
		}
		if filterBoilerplate && containsBoilerplate(text) {
			return
		}
		parts = append(parts, text)
	})
	return strings.Join(parts, "\n\n")
}

func containsBoilerplate(text string) bool {
	lower := strings.ToLower(text)
	for _, f := range boilerplateFragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}
