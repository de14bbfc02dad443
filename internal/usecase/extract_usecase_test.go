package usecase

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/user/extractor-service/internal/entity"
	"github.com/user/extractor-service/internal/repository"
	"github.com/user/extractor-service/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init()
	os.Exit(m.Run())
}

type fakeStrategy struct {
	name  string
	text  string
	title string
	err   error
	calls int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Extract(ctx context.Context, url string) (*entity.RawExtraction, error) {
	f.calls++
	if f.err != nil {
		return &entity.RawExtraction{Method: f.name, FailureReason: f.err}, f.err
	}
	return &entity.RawExtraction{Text: f.text, Title: f.title, Method: f.name}, nil
}

func longArticle() string {
	return strings.Repeat("정부는 오늘 기자회견에서 새로운 정책 방향을 설명했다. ", 10)
}

func TestExtract_FirstStrategyAccepted(t *testing.T) {
	first := &fakeStrategy{name: entity.MethodReadability, text: longArticle(), title: "기사 제목"}
	second := &fakeStrategy{name: entity.MethodChromedp, text: longArticle()}

	res := NewExtractor(ProfileDynamic, first, second).Extract(context.Background(), "https://news.example.com/1")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Method != entity.MethodReadability {
		t.Fatalf("expected first strategy's method, got %s", res.Method)
	}
	if second.calls != 0 {
		t.Fatalf("cascade must stop at the first accepted strategy")
	}
	if res.ContentLength != entity.TextLength(res.Content) {
		t.Fatalf("content_length must equal the content's character count")
	}
	if res.Domain != "news.example.com" {
		t.Fatalf("expected derived domain, got %q", res.Domain)
	}
}

func TestExtract_EscalatesPastShortContent(t *testing.T) {
	short := &fakeStrategy{name: entity.MethodReadability, text: "짧은 본문."}
	long := &fakeStrategy{name: entity.MethodChromedp, text: longArticle(), title: "렌더링된 제목"}

	res := NewExtractor(ProfileDynamic, short, long).Extract(context.Background(), "https://news.example.com/1")
	if !res.Success {
		t.Fatalf("expected rendering strategy to win, got %+v", res)
	}
	if res.Method != entity.MethodChromedp {
		t.Fatalf("extraction_method must reflect the accepting strategy, got %s", res.Method)
	}
	if res.ContentLength < 100 {
		t.Fatalf("accepted result must meet the threshold, got %d", res.ContentLength)
	}
}

func TestExtract_EscalatesPastErrors(t *testing.T) {
	broken := &fakeStrategy{name: entity.MethodChromedp, err: repository.ErrNavigationFailed}
	working := &fakeStrategy{name: entity.MethodChromedpSneaky, text: longArticle()}

	res := NewExtractor(ProfileDynamic, broken, working).Extract(context.Background(), "https://news.example.com/1")
	if !res.Success || res.Method != entity.MethodChromedpSneaky {
		t.Fatalf("expected stealth strategy result after error, got %+v", res)
	}
}

func TestExtract_LegalNoticeShortCircuits(t *testing.T) {
	legal := &fakeStrategy{name: entity.MethodChromedp,
		text: "서비스 이용약관\n" + strings.Repeat("제1조 목적. 이 약관은 회사가 제공하는 서비스의 이용 조건을 규정함을 목적으로 합니다. ", 10)}
	next := &fakeStrategy{name: entity.MethodChromedpSneaky, text: longArticle()}

	res := NewExtractor(ProfileDynamic, legal, next).Extract(context.Background(), "https://news.example.com/1")
	if res.Success {
		t.Fatalf("legal page must never be accepted, got %+v", res)
	}
	if next.calls != 0 {
		t.Fatalf("legal detection must short-circuit the cascade, but the next strategy ran")
	}
	if !strings.Contains(res.Error, "legal") && !strings.Contains(res.Error, "terms") {
		t.Fatalf("expected a dedicated legal rejection message, got %q", res.Error)
	}
}

func TestRejectionMessage_LegalNotice(t *testing.T) {
	msg := rejectionMessage(entity.QualityVerdict{Reason: entity.ReasonLegalNotice})
	if !strings.Contains(msg, "legal notice") {
		t.Fatalf("expected the legal reason to map to its message, got %q", msg)
	}
}

func TestExtract_ExhaustionKeepsBestCandidate(t *testing.T) {
	failed := &fakeStrategy{name: entity.MethodChromedp, err: repository.ErrExtractionTimeout}
	rejected := &fakeStrategy{name: entity.MethodChromedpSneaky, text: "임계값에 못 미치는 그래도 무언가 추출된 본문입니다."}

	res := NewExtractor(ProfileDynamic, failed, rejected).Extract(context.Background(), "https://news.example.com/1")
	if res.Success {
		t.Fatalf("expected failure after exhaustion")
	}
	if !strings.Contains(res.Content, "무언가 추출된") {
		t.Fatalf("a rejected body must be preferred over an outright error, got %q", res.Content)
	}
	if res.Error == "" {
		t.Fatalf("exhaustion must carry a descriptive error")
	}
}

func TestExtract_AllErrorsYieldEmptyResult(t *testing.T) {
	down := &fakeStrategy{name: entity.MethodReadability, err: repository.ErrNavigationFailed}

	res := NewExtractor(ProfileFast, down).Extract(context.Background(), "https://unreachable.example.com/x")
	if res.Success {
		t.Fatalf("expected failure for unreachable URL")
	}
	if res.Content != "" || res.ContentLength != 0 {
		t.Fatalf("expected empty content for pure errors, got %+v", res)
	}
	if res.Error == "" {
		t.Fatalf("expected non-empty error message")
	}
	if !strings.Contains(res.Error, "/playwright") {
		t.Fatalf("fast profile failure should recommend escalation, got %q", res.Error)
	}
}

func TestExtract_StealthAllowlistSkipsPlainRenderer(t *testing.T) {
	plain := &fakeStrategy{name: entity.MethodChromedp, text: longArticle()}
	stealth := &fakeStrategy{name: entity.MethodChromedpSneaky, text: longArticle()}

	res := NewExtractor(ProfileDynamic, plain, stealth).Extract(context.Background(), "https://news.chosun.com/article/1")
	if !res.Success || res.Method != entity.MethodChromedpSneaky {
		t.Fatalf("allowlisted domain must start at stealth, got %+v", res)
	}
	if plain.calls != 0 {
		t.Fatalf("plain renderer must be skipped for stealth-forced domains")
	}
}

func TestExtract_TavilyOutputSkipsNormalization(t *testing.T) {
	// The wire byline would be stripped by normalization; provider output
	// bypasses the rule engine, so it must survive verbatim.
	text := "(서울=연합뉴스) 홍길동 기자 = " + longArticle()
	provider := &fakeStrategy{name: entity.MethodTavily, text: text}

	res := NewExtractor(ProfileDynamic, provider).Extract(context.Background(), "https://news.example.com/1")
	if !res.Success {
		t.Fatalf("expected provider result accepted, got %+v", res)
	}
	if !strings.HasPrefix(res.Content, "(서울=연합뉴스)") {
		t.Fatalf("provider output must not be normalized, got %q", res.Content)
	}
}

func TestExtract_NormalizedBeforeGating(t *testing.T) {
	render := &fakeStrategy{name: entity.MethodChromedp,
		text: "(서울=연합뉴스) 홍길동 기자 = " + longArticle() + "\nⓒ 연합뉴스. 무단 전재 및 재배포 금지"}

	res := NewExtractor(ProfileDynamic, render).Extract(context.Background(), "https://news.example.com/1")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if strings.Contains(res.Content, "연합뉴스) 홍길동") || strings.Contains(res.Content, "무단 전재") {
		t.Fatalf("rendered output must be normalized before gating, got %q", res.Content)
	}
}

func TestForceStealth(t *testing.T) {
	cases := map[string]bool{
		"chosun.com":        true,
		"news.chosun.com":   true,
		"www.imbc.com":      true,
		"example.com":       false,
		"notchosun.com":     false,
		"news.example.com":  false,
	}
	for host, want := range cases {
		if got := forceStealth(host); got != want {
			t.Errorf("forceStealth(%q) = %v, want %v", host, got, want)
		}
	}
}
