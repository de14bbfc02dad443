package normalize

import "regexp"

// Scope determines whether a rule's pattern is matched against the whole
// text at once or against each line independently.
type Scope int

const (
	ScopeWholeText Scope = iota
	ScopePerLine
)

// Rule is one ordered rewrite step. Rules are pure data; the relative order
// inside each stage table is part of the cleaning contract, since later
// rules assume earlier ones already removed certain noise.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
	Scope       Scope
}

// Stage b: byline, credit and broadcast-script families. Wire-service
// bylines come first so the per-line reporter rules below see lines that
// already start with the sentence proper.
var bylineRules = []Rule{
	// "(서울=연합뉴스) 홍길동 기자 =" and the same shape for other wires.
	{regexp.MustCompile(`\([가-힣]+=(?:연합뉴스|뉴시스|뉴스1|노컷뉴스)\)\s*[가-힣]{2,5}\s*(?:기자|특파원|통신원)\s*=?\s*`), "", ScopeWholeText},
	// Reporter byline line with an email, e.g. "홍길동 기자 gildong@yna.co.kr".
	{regexp.MustCompile(`^\s*[가-힣]{2,5}\s*(?:기자|특파원|앵커|PD|논설위원)\s*[\(\[]?[\w.+-]+@[\w.-]+\.[A-Za-z]{2,}[\)\]]?\s*$`), "", ScopePerLine},
	// Bare credit email on its own line.
	{regexp.MustCompile(`^\s*[\(\[]?[\w.+-]+@[\w.-]+\.[A-Za-z]{2,}[\)\]]?\s*$`), "", ScopePerLine},
	// Photo and video credits, both as whole lines and inline bracket tags.
	{regexp.MustCompile(`^\s*[\[〔(]?\s*(?:사진|영상|그래픽)\s*(?:출처)?\s*[=:：ⓒ].*$`), "", ScopePerLine},
	{regexp.MustCompile(`\[\s*(?:사진|영상|그래픽)\s*(?:출처|[=:：])[^\]]*\]`), "", ScopeWholeText},
	// Broadcast script markers.
	{regexp.MustCompile(`【\s*[^】]{1,12}\s*】`), "", ScopeWholeText},
	{regexp.MustCompile(`^\s*◀\s*(?:앵커|기자|리포트|VCR)\s*▶\s*$`), "", ScopePerLine},
	// Wire copy terminator.
	{regexp.MustCompile(`^\s*\(끝\)\s*$`), "", ScopePerLine},
}

// Stage c: copyright and redistribution notices.
var copyrightRules = []Rule{
	{regexp.MustCompile(`^.*(?:저작권자|무단\s*전재|무단전재|재배포\s*금지|재배포금지|AI\s*학습\s*(?:및\s*)?활용\s*금지).*$`), "", ScopePerLine},
	{regexp.MustCompile(`^\s*[ⓒ©].*$`), "", ScopePerLine},
	{regexp.MustCompile(`^.*(?i:copyright).*$`), "", ScopePerLine},
	{regexp.MustCompile(`^.*(?i:all rights reserved).*$`), "", ScopePerLine},
}

// Stage d: promotional blocks, app pitches and footer chrome.
var promoRules = []Rule{
	{regexp.MustCompile(`^\s*(?:관련\s*기사|관련\s*뉴스|추천\s*기사|인기\s*기사|많이\s*본\s*(?:기사|뉴스)|함께\s*보면\s*좋은\s*기사|이\s*시각\s*추천뉴스).*$`), "", ScopePerLine},
	{regexp.MustCompile(`^.*(?:뉴스레터\s*구독|구독\s*신청|앱\s*다운로드|앱에서\s*보기|네이버에서\s*.{0,10}\s*구독).*$`), "", ScopePerLine},
	{regexp.MustCompile(`^\s*※.*(?:제보|문의|카카오톡|이메일).*$`), "", ScopePerLine},
	{regexp.MustCompile(`^\s*(?:제보는\s*카카오톡|기사\s*제보\s*및\s*보도자료).*$`), "", ScopePerLine},
}

// Stage f: markdown-artifact and URL cleanup. Link text survives, bare
// URLs and image syntax do not. Stripping a URL can reduce a line to a
// noise label that was still URL-suffixed when the line filter ran, so
// the residual lines get one more sweep through the noise tables before
// the whitespace rules close the stage.
var cleanupRules = []Rule{
	{regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`), "", ScopeWholeText},
	{regexp.MustCompile(`\[([^\]]*)\]\(https?://[^)]*\)`), "$1", ScopeWholeText},
	{regexp.MustCompile(`^\s*https?://\S+\s*$`), "", ScopePerLine},
	{regexp.MustCompile(`https?://\S+`), "", ScopeWholeText},
}

// whitespaceRules run after the residual noise sweep so that line
// removals cannot leave runs of empty lines behind.
var whitespaceRules = []Rule{
	{regexp.MustCompile(`[ \t]+$`), "", ScopePerLine},
	{regexp.MustCompile(`\n{3,}`), "\n\n", ScopeWholeText},
}

// Stage g: trailing bylines anchored to the end of the text. The group is
// repeated so stacked credit lines at the bottom go in one application.
var trailingRules = []Rule{
	{regexp.MustCompile(`(?:\n[ \t]*[가-힣]{2,5}[ \t]*(?:기자|특파원|인턴기자)(?:[ \t][^\n]*)?)+[ \t\n]*$`), "", ScopeWholeText},
	{regexp.MustCompile(`(?:\n[ \t]*(?:취재|편집|영상취재|영상편집|그래픽)\s*[:：][^\n]*)+[ \t\n]*$`), "", ScopeWholeText},
}

// Stage a: share/report-abuse markers that open blog-style article pages.
// Only honored when the marker sits inside the leading portion of the text
// (see shareHeaderWindow), so a legitimate later mention is never cut.
var shareHeaderMarkers = []string{
	"공유하기",
	"신고하기",
	"본문 기타 기능",
}

// Stage e: line-level noise tables. Hand-curated against the observed
// corpus; kept as replaceable data rather than logic, and not claimed to
// be complete.
var noiseLines = map[string]struct{}{
	"공유하기":      {},
	"신고하기":      {},
	"본문 기타 기능":  {},
	"스크랩":       {},
	"프린트":       {},
	"인쇄":        {},
	"글자 크기 설정":  {},
	"글자크기":      {},
	"가나다라마바사":   {},
	"SNS 기사보내기": {},
	"기사공유하기":    {},
	"페이스북":      {},
	"트위터":       {},
	"카카오톡":      {},
	"카카오스토리":    {},
	"네이버 블로그":   {},
	"네이버 밴드":    {},
	"URL 복사":    {},
	"URL복사":     {},
	"좋아요":       {},
	"슬퍼요":       {},
	"화나요":       {},
	"후속기사 원해요":  {},
	"댓글":        {},
	"댓글쓰기":      {},
	"댓글 많은 뉴스":  {},
	"로그인":       {},
	"회원가입":      {},
	"전체보기":      {},
	"목록":        {},
	"이전 기사":     {},
	"다음 기사":     {},
	"더보기":       {},
	"닫기":        {},
	"TOP":       {},
	"top":       {},
	"맨 위로":      {},
	"광고":        {},
	"AD":        {},
	"ADVERTISEMENT": {},
	"재생":        {},
	"일시정지":      {},
	"정지":        {},
	"음소거":       {},
	"음소거 해제":    {},
	"전체화면":      {},
	"자막":        {},
	"자막 설정":     {},
	"1배속":       {},
	"고화질":       {},
	"저화질":       {},
	"구독":        {},
	"구독하기":      {},
	"구독중":       {},
	"홈으로":       {},
	"뉴스홈":       {},
	"섹션 목록":     {},
	"본문 글씨 키우기": {},
	"본문 글씨 줄이기": {},
}

var noisePrefixes = []string{
	"입력 ",
	"수정 ",
	"송고 ",
	"승인 ",
	"업데이트 ",
	"게재 ",
	"지면보기",
	"동영상 뉴스",
	"구독자 ",
	"이 기사를 추천합니다",
	"키워드 ",
	"태그 ",
	"#",
}

var noiseSuffixes = []string{
	"개의 댓글",
	"명이 구독중",
	"명 구독",
	"회 재생",
	"번 공유됨",
	"기사 원문",
}

// Date-only lines such as "2024.03.15" or "2024년 3월 15일 14:30".
var dateOnlyLine = regexp.MustCompile(`^\s*\d{4}\s*[.\-/년]\s*\d{1,2}\s*[.\-/월]\s*\d{1,2}\s*일?\.?\s*(?:[월화수목금토일]요일)?\s*(?:오전|오후)?\s*(?:\d{1,2}:\d{2}(?::\d{2})?)?\s*$`)

// Reporter sign-off lines: "홍길동 기자", or a bare short hangul fragment
// left over after byline removal. Bare fragments are only dropped when they
// are not in the common-word exception list below.
var reporterLine = regexp.MustCompile(`^\s*[가-힣]{2,5}\s*(?:기자|특파원|인턴기자|객원기자)\s*$`)
var bareNameLine = regexp.MustCompile(`^\s*[가-힣]{2,4}\s*$`)

// Short hangul fragments that look like leftover names but are section
// labels or ordinary standalone words; these survive the bare-name filter.
var bareNameExceptions = map[string]struct{}{
	"데일리":  {},
	"스포츠":  {},
	"이슈픽":  {},
	"포토뉴스": {},
	"핫뉴스":  {},
	"단독":   {},
	"속보":   {},
	"날씨":   {},
	"정치":   {},
	"경제":   {},
	"사회":   {},
	"문화":   {},
	"세계":   {},
	"연예":   {},
	"한줄평":  {},
	"인터뷰":  {},
	"칼럼":   {},
	"사설":   {},
	"오피니언": {},
	"결론":   {},
	"요약":   {},
}
