package entity

import "unicode/utf8"

// Extraction method tags. These appear verbatim in the extraction_method
// field of API responses.
const (
	MethodReadability    = "readability"
	MethodChromedp       = "chromedp"
	MethodChromedpSneaky = "chromedp-stealth"
	MethodTavily         = "tavily"
)

// RawExtraction is the unprocessed output of a single strategy attempt.
type RawExtraction struct {
	Text          string
	Title         string
	Method        string
	FailureReason error // set when the strategy errored before producing text
}

// RejectReason classifies why the quality gate turned a candidate body down.
type RejectReason string

const (
	ReasonOK          RejectReason = "ok"
	ReasonTooShort    RejectReason = "too-short"
	ReasonLegalNotice RejectReason = "legal-notice"
	ReasonEmpty       RejectReason = "empty"
)

// QualityVerdict is the quality gate's decision on a candidate body.
type QualityVerdict struct {
	Accepted        bool
	Reason          RejectReason
	EffectiveLength int
}

// ExtractionResult is the public result of an extraction request. It is the
// only entity that crosses the service boundary, and it is always returned
// with HTTP 200 whether or not the extraction succeeded.
type ExtractionResult struct {
	Success       bool   `json:"success"`
	URL           string `json:"url"`
	Domain        string `json:"domain"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	ContentLength int    `json:"content_length"`
	Method        string `json:"extraction_method"`
	Error         string `json:"error,omitempty"`
}

// TextLength counts characters, not bytes; Korean article bodies would
// otherwise triple their apparent length and break the quality threshold.
func TextLength(s string) int {
	return utf8.RuneCountInString(s)
}
