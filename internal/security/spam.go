package security

import (
	"regexp"
	"strings"
)

var (
	urlPattern      = regexp.MustCompile(`(?i)https?://\S+`)
	spamTermPattern = regexp.MustCompile(`(?i)\b(viagra|casino|lottery|winner|click here|free money)\b`)
	allCapsPattern  = regexp.MustCompile(`\b[A-Z]{10,}\b`)
)

const (
	spamThreshold = 2
	repeatRunLen  = 11 // any character repeated this many times consecutively
	urlBonusCount = 2  // links beyond this many escalate the score
)

// IsSpam scores text against a fixed battery of heuristics and reports
// whether the accumulated score reaches the spam threshold. Link-heavy text
// is escalated on top of the base URL point; the overlap is intentional.
// Pure and total.
func IsSpam(text string) bool {
	score := 0

	urls := urlPattern.FindAllString(text, -1)
	if len(urls) > 0 {
		score++
	}
	if spamTermPattern.MatchString(text) {
		score++
	}
	if hasRepeatedRun(text, repeatRunLen) {
		score++
	}
	if allCapsPattern.MatchString(text) {
		score++
	}

	if len(urls) > urlBonusCount {
		score += 2
	}

	return score >= spamThreshold
}

// hasRepeatedRun reports whether any rune occurs n or more times in a row.
// RE2 has no backreferences, so the (.)\1{10,} check is a manual scan.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range strings.ToLower(s) {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
