package polish

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRunRe    = regexp.MustCompile(`\s+`)
	spaceBeforePunctRe = regexp.MustCompile(`\s+([,.!?])`)
	tightSentenceRe    = regexp.MustCompile(`([.!?])\s*(\p{Lu})`)
	lowerAfterPunctRe  = regexp.MustCompile(`([.!?])\s+(\p{Ll})`)
)

// Normalize is the final polishing pass: collapse whitespace, fix
// punctuation spacing and capitalize sentence openers. Idempotent.
func Normalize(text string) string {
	text = whitespaceRunRe.ReplaceAllString(text, " ")
	text = spaceBeforePunctRe.ReplaceAllString(text, "$1")
	text = tightSentenceRe.ReplaceAllString(text, "$1 $2")
	text = lowerAfterPunctRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := lowerAfterPunctRe.FindStringSubmatch(m)
		r, _ := utf8.DecodeRuneInString(parts[2])
		return parts[1] + " " + string(unicode.ToUpper(r))
	})
	return strings.TrimSpace(text)
}
