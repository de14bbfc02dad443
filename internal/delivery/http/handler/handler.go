package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"

	"github.com/user/extractor-service/internal/delivery/http/request"
	"github.com/user/extractor-service/internal/delivery/http/response"
	"github.com/user/extractor-service/internal/entity"
	"github.com/user/extractor-service/internal/usecase"
	"github.com/user/extractor-service/pkg/utils"
)

const (
	serviceName    = "news-extractor-api"
	serviceVersion = "2.0.0"
)

// Extraction responses are always HTTP 200, success or not: downstream
// pipelines treat non-200 as fatal, so failures travel inside the envelope.
type Handler struct {
	fast             usecase.Extractor
	dynamic          usecase.Extractor
	tavilyConfigured bool
}

func NewHandler(fast, dynamic usecase.Extractor, tavilyConfigured bool) *Handler {
	return &Handler{
		fast:             fast,
		dynamic:          dynamic,
		tavilyConfigured: tavilyConfigured,
	}
}

func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, h.fast, entity.MethodReadability)
}

func (h *Handler) HandlePlaywright(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, h.dynamic, entity.MethodChromedp)
}

func (h *Handler) extract(w http.ResponseWriter, r *http.Request, ex usecase.Extractor, methodTag string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeJSON(w, http.StatusOK, validationFailure("", methodTag, "could not read request body"))
		return
	}

	var req request.ExtractRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// Best-effort URL recovery so even a malformed request reports
		// which page it was about.
		h.writeJSON(w, http.StatusOK, validationFailure(recoverURL(body), methodTag, "invalid JSON request body"))
		return
	}
	if req.URL == "" {
		h.writeJSON(w, http.StatusOK, validationFailure("", methodTag, "url field is required"))
		return
	}
	if u, err := url.ParseRequestURI(req.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		h.writeJSON(w, http.StatusOK, validationFailure(req.URL, methodTag, "url must be an absolute http(s) URL"))
		return
	}

	result := ex.Extract(r.Context(), req.URL)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, response.Health{
		Status:           "healthy",
		Service:          serviceName,
		Version:          serviceVersion,
		Methods:          methods(),
		TavilyConfigured: h.tavilyConfigured,
	})
}

func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, response.ServiceInfo{
		Service:     "News Extractor API",
		Version:     serviceVersion,
		Description: "article body extraction with an escalating strategy cascade",
		Methods:     methods(),
		Endpoints: map[string]string{
			"POST /extract":    "static article extraction (fast profile)",
			"POST /playwright": "rendered extraction with stealth and external fallback (dynamic profile)",
			"GET /health":      "liveness and capability summary",
		},
	})
}

func methods() []string {
	return []string{
		entity.MethodReadability,
		entity.MethodChromedp,
		entity.MethodChromedpSneaky,
		entity.MethodTavily,
	}
}

var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

func recoverURL(body []byte) string {
	return urlPattern.FindString(string(body))
}

func validationFailure(rawURL, methodTag, message string) *entity.ExtractionResult {
	return &entity.ExtractionResult{
		URL:    rawURL,
		Domain: utils.DomainOf(rawURL),
		Method: methodTag,
		Error:  "request validation failed: " + message,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
