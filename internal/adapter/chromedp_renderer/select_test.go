package chromedp_renderer

import (
	"strings"
	"testing"
)

const longParagraph = "조용한 아침이었지만 시장은 빠르게 움직였다. 투자자들은 발표 직후 반응했고 거래량은 평소의 세 배를 넘어섰다는 분석이 나왔다. 전문가들은 당분간 변동성이 이어질 것으로 내다봤다."

func TestSelectBody_PrefersArticleParagraphs(t *testing.T) {
	html := `<html><body>
		<nav><p>홈 정치 경제 사회 문화 이 메뉴는 절대 본문이 아닙니다 절대 본문이 아닙니다</p></nav>
		<article><p>` + longParagraph + `</p><p>` + longParagraph + `</p></article>
		<div class="article-content"><p>컨테이너 쪽 문단은 기사 태그가 있으면 선택되지 않아야 합니다. 충분히 긴 문단으로 만들어 둡니다.</p></div>
	</body></html>`

	body, err := SelectBody(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "조용한 아침이었지만") {
		t.Fatalf("expected article paragraphs selected, got %q", body)
	}
	if strings.Contains(body, "컨테이너 쪽 문단") {
		t.Fatalf("lower tier must not leak into the body when article tier suffices")
	}
	if strings.Contains(body, "메뉴는 절대 본문이") {
		t.Fatalf("nav content must be removed before selection")
	}
}

func TestSelectBody_FallsBackToKnownContainers(t *testing.T) {
	html := `<html><body>
		<div class="post_content"><p>` + longParagraph + `</p></div>
	</body></html>`

	body, err := SelectBody(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "조용한 아침이었지만") {
		t.Fatalf("expected container tier body, got %q", body)
	}
}

func TestSelectBody_PageWideTierFiltersBoilerplate(t *testing.T) {
	html := `<html><body>
		<div><p>` + longParagraph + `</p></div>
		<div><p>이 사이트는 쿠키를 사용합니다. 계속 이용하시면 쿠키 사용에 동의하는 것으로 간주됩니다. 자세한 내용은 안내를 확인하세요.</p></div>
		<div><p>뉴스레터를 구독하고 매일 아침 주요 기사를 받아보세요. 지금 가입하면 첫 달 무료 혜택이 제공됩니다.</p></div>
	</body></html>`

	body, err := SelectBody(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(body, "쿠키를 사용") || strings.Contains(body, "뉴스레터") {
		t.Fatalf("boilerplate paragraphs must be filtered in the page-wide tier, got %q", body)
	}
	if !strings.Contains(body, "조용한 아침이었지만") {
		t.Fatalf("expected real paragraph kept, got %q", body)
	}
}

func TestSelectBody_ShortFragmentsExcluded(t *testing.T) {
	html := `<html><body><article>
		<p>더보기</p>
		<p>` + longParagraph + `</p>
	</article></body></html>`

	body, err := SelectBody(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(body, "더보기") {
		t.Fatalf("short ui fragments must be excluded, got %q", body)
	}
}

func TestSelectBody_NoParagraphs(t *testing.T) {
	if _, err := SelectBody(`<html><body><div>짧음</div></body></html>`); err == nil {
		t.Fatalf("expected error when no tier produces a body")
	}
}

func TestSelectBody_BestRejectedTierRetained(t *testing.T) {
	// Below the quality threshold everywhere: the longest tier output is
	// still returned so the cascade can report a best candidate.
	html := `<html><body><article><p>임계값에는 못 미치지만 분명히 존재하는 짧은 기사 본문 한 문단입니다.</p></article></body></html>`
	body, err := SelectBody(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "짧은 기사 본문") {
		t.Fatalf("expected best short body returned, got %q", body)
	}
}
