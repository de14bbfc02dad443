package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/user/extractor-service/internal/entity"
	"github.com/user/extractor-service/pkg/utils"
)

type fakeExtractor struct {
	lastURL string
	result  *entity.ExtractionResult
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) *entity.ExtractionResult {
	f.lastURL = url
	if f.result != nil {
		return f.result
	}
	content := strings.Repeat("본문 문장입니다. ", 20)
	return &entity.ExtractionResult{
		Success:       true,
		URL:           url,
		Domain:        utils.DomainOf(url),
		Title:         "제목",
		Content:       content,
		ContentLength: entity.TextLength(content),
		Method:        entity.MethodReadability,
	}
}

func decode(t *testing.T, body string) entity.ExtractionResult {
	t.Helper()
	var res entity.ExtractionResult
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, body)
	}
	return res
}

func TestHandleExtract_Success(t *testing.T) {
	fast := &fakeExtractor{}
	h := NewHandler(fast, &fakeExtractor{}, true)

	req := httptest.NewRequest("POST", "/extract", strings.NewReader(`{"url":"https://news.example.com/a"}`))
	w := httptest.NewRecorder()
	h.HandleExtract(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	res := decode(t, w.Body.String())
	if !res.Success || res.URL != "https://news.example.com/a" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if fast.lastURL != "https://news.example.com/a" {
		t.Fatalf("fast extractor not invoked with the request URL")
	}
}

func TestHandleExtract_FailureStill200(t *testing.T) {
	fast := &fakeExtractor{result: &entity.ExtractionResult{
		URL:    "https://unreachable.example.com/x",
		Domain: "unreachable.example.com",
		Method: entity.MethodReadability,
		Error:  "could not download or navigate to the page",
	}}
	h := NewHandler(fast, &fakeExtractor{}, false)

	req := httptest.NewRequest("POST", "/extract", strings.NewReader(`{"url":"https://unreachable.example.com/x"}`))
	w := httptest.NewRecorder()
	h.HandleExtract(w, req)

	if w.Code != 200 {
		t.Fatalf("failures must still be HTTP 200, got %d", w.Code)
	}
	res := decode(t, w.Body.String())
	if res.Success || res.Content != "" || res.ContentLength != 0 || res.Error == "" {
		t.Fatalf("unexpected failure envelope: %+v", res)
	}
}

func TestHandleExtract_InvalidJSONRecoversURL(t *testing.T) {
	h := NewHandler(&fakeExtractor{}, &fakeExtractor{}, false)

	req := httptest.NewRequest("POST", "/extract", strings.NewReader(`url = https://news.example.com/broken`))
	w := httptest.NewRecorder()
	h.HandleExtract(w, req)

	if w.Code != 200 {
		t.Fatalf("validation failures must still be HTTP 200, got %d", w.Code)
	}
	res := decode(t, w.Body.String())
	if res.Success {
		t.Fatalf("expected validation failure")
	}
	if res.URL != "https://news.example.com/broken" {
		t.Fatalf("expected best-effort URL recovery, got %q", res.URL)
	}
}

func TestHandleExtract_RejectsNonHTTPScheme(t *testing.T) {
	h := NewHandler(&fakeExtractor{}, &fakeExtractor{}, false)

	req := httptest.NewRequest("POST", "/extract", strings.NewReader(`{"url":"ftp://example.com/file"}`))
	w := httptest.NewRecorder()
	h.HandleExtract(w, req)

	res := decode(t, w.Body.String())
	if res.Success || !strings.Contains(res.Error, "http") {
		t.Fatalf("expected scheme validation failure, got %+v", res)
	}
}

func TestHandlePlaywright_UsesDynamicCascade(t *testing.T) {
	dynamic := &fakeExtractor{result: &entity.ExtractionResult{
		Success: true,
		URL:     "https://news.example.com/js",
		Method:  entity.MethodChromedpSneaky,
	}}
	h := NewHandler(&fakeExtractor{}, dynamic, true)

	req := httptest.NewRequest("POST", "/playwright", strings.NewReader(`{"url":"https://news.example.com/js"}`))
	w := httptest.NewRecorder()
	h.HandlePlaywright(w, req)

	res := decode(t, w.Body.String())
	if res.Method != entity.MethodChromedpSneaky {
		t.Fatalf("expected dynamic cascade result, got %+v", res)
	}
	if dynamic.lastURL == "" {
		t.Fatalf("dynamic extractor not invoked")
	}
}

func TestHandleHealthCheck(t *testing.T) {
	h := NewHandler(&fakeExtractor{}, &fakeExtractor{}, true)

	w := httptest.NewRecorder()
	h.HandleHealthCheck(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var health map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("invalid health JSON: %v", err)
	}
	if health["status"] != "healthy" {
		t.Fatalf("unexpected health status: %v", health["status"])
	}
	if health["tavily_configured"] != true {
		t.Fatalf("expected tavily_configured reported")
	}
}
