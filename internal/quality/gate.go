// Package quality classifies candidate article bodies as accepted or
// rejected. Rejection is the cascade's signal that a page needed a
// stronger extraction strategy.
package quality

import (
	"strings"

	"github.com/user/extractor-service/internal/entity"
)

// MinContentLength is the acceptance threshold in characters. It is the
// single most important tuning constant in the service: bodies shorter
// than this almost always mean the page injects its content with script.
const MinContentLength = 100

// Legal-notice markers at the very start of a page body. Certain
// publishers serve a terms-of-service stub instead of the article under
// some request conditions; those stubs must never pass the gate.
var legalStartMarkers = []string{
	"서비스 이용약관",
	"이용약관",
	"Terms of Service",
	"Terms of Use",
}

// contentTermsPhrases is a phrase pair that, appearing together, marks a
// publisher's content-terms page.
var contentTermsPhrases = [2]string{"콘텐츠의 저작권", "이용 조건"}

var legalKeywords = []string{
	"약관",
	"개인정보",
	"책임의 한계",
	"법적 고지",
	"면책",
	"손해배상",
	"privacy policy",
	"terms of use",
	"legal notice",
}

var newsKeywords = []string{
	"기자",
	"특파원",
	"앵커",
	"연합뉴스",
	"뉴스",
	"보도",
	"취재",
	"reporter",
	"correspondent",
}

// IsLegalNotice reports whether raw, pre-normalization text is a legal or
// boilerplate stub rather than an article body. It must run before
// cleaning: normalization could strip the very markers that identify the
// stub and launder it into a false acceptance.
func IsLegalNotice(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, m := range legalStartMarkers {
		if strings.HasPrefix(trimmed, m) {
			return true
		}
	}
	if strings.Contains(trimmed, contentTermsPhrases[0]) && strings.Contains(trimmed, contentTermsPhrases[1]) {
		return true
	}
	lower := strings.ToLower(trimmed)
	legal := 0
	for _, k := range legalKeywords {
		if strings.Contains(lower, k) {
			legal++
		}
	}
	if legal < 2 {
		return false
	}
	for _, k := range newsKeywords {
		if strings.Contains(lower, k) {
			return false
		}
	}
	return true
}

// Evaluate gates normalized text on length. Legal-notice detection happens
// earlier, on raw text, via IsLegalNotice.
func Evaluate(text string) entity.QualityVerdict {
	trimmed := strings.TrimSpace(text)
	n := entity.TextLength(trimmed)
	switch {
	case n == 0:
		return entity.QualityVerdict{Reason: entity.ReasonEmpty}
	case n < MinContentLength:
		return entity.QualityVerdict{Reason: entity.ReasonTooShort, EffectiveLength: n}
	default:
		return entity.QualityVerdict{Accepted: true, Reason: entity.ReasonOK, EffectiveLength: n}
	}
}
