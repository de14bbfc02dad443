package usecase

import "strings"

// stealthDomains lists publishers whose pages detect plain headless
// rendering and serve a stub instead of the article. The dynamic cascade
// skips the standard renderer for these and goes straight to stealth.
// Hand-curated against the observed corpus; revise as data, not logic.
var stealthDomains = map[string]struct{}{
	"chosun.com":  {},
	"imbc.com":    {},
	"vogue.co.kr": {},
	"mk.co.kr":    {},
}

// forceStealth reports whether the host, or any registrable suffix of it,
// is on the stealth allowlist.
func forceStealth(host string) bool {
	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	for {
		if _, ok := stealthDomains[host]; ok {
			return true
		}
		i := strings.Index(host, ".")
		if i < 0 || !strings.Contains(host[i+1:], ".") {
			return false
		}
		host = host[i+1:]
	}
}
