package extractor

import (
	"regexp"
	"strings"
)

const nameWords = 4

var (
	rePrice       = regexp.MustCompile(`(?i)(?:Rs\.|₹)[\s\p{Zs}\d,]+`)
	reDiscount    = regexp.MustCompile(`(?i)\d+% Off`)
	reParenthesis = regexp.MustCompile(`\(.*?\)`)
	// \s is ASCII-only; \p{Zs} adds the no-break space pages emit for &nbsp;
	reSpace       = regexp.MustCompile(`[\s\p{Zs}]+`)
	reSeparator   = regexp.MustCompile(`[-,]`)
)

// CleanText strips prices, discounts and parenthesised notes and collapses whitespace.
// CleanText(CleanText(s)) == CleanText(s).
func CleanText(s string) string {
	return fixedPoint(s, cleanTextOnce)
}

// CleanName applies CleanText, drops separators and keeps the first four words.
// CleanName(CleanName(s)) == CleanName(s).
func CleanName(s string) string {
	cleaned := fixedPoint(s, cleanNameOnce)
	if cleaned == "" {
		return ""
	}

	words := strings.Fields(cleaned)
	if len(words) > nameWords {
		words = words[:nameWords]
	}
	return strings.Join(words, " ")
}

func cleanTextOnce(s string) string {
	s = rePrice.ReplaceAllString(s, "")
	s = reDiscount.ReplaceAllString(s, "")
	s = reParenthesis.ReplaceAllString(s, "")
	s = reSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func cleanNameOnce(s string) string {
	s = cleanTextOnce(s)
	s = reSeparator.ReplaceAllString(s, " ")
	s = reSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// fixedPoint reapplies step until the output stops changing. A removal can expose a new
// match (e.g. "R(x)s. 5"), so a single pass is not enough for idempotence.
func fixedPoint(s string, step func(string) string) string {
	for i := 0; i <= len(s); i++ {
		next := step(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}
