package polish

import (
	"strings"
	"unicode/utf8"

	"clementus360/response-engine/config"
	"clementus360/response-engine/types"
)

// breakPoint pairs a split marker with the connective that leads the new
// sentence. The lead words are in the flow stage's guard set, so a
// boundary produced here is not decorated again on a later pass.
type breakPoint struct {
	marker string
	lead   string
}

// Natural break points for splitting an overlong sentence, checked in order.
var breakPoints = []breakPoint{
	{", ale ", "Jednak "},
	{", jednak ", "Jednak "},
	{", ponadto ", "Ponadto "},
	{", dodatkowo ", "Dodatkowo "},
}

// improveClarity splits any sentence over the configured length threshold
// at the first natural connective past its midpoint, falling back to the
// first comma past the midpoint. Sentences with neither are left alone.
// The threshold counts runes, not bytes.
func improveClarity(text string, _ types.Context) string {
	segments := splitKeepBoundaries(text)
	for i := 0; i < len(segments); i += 2 {
		if utf8.RuneCountInString(segments[i]) > config.EngineConfig.MaxSentenceLength {
			segments[i] = splitLongSentence(segments[i])
		}
	}
	return strings.Join(segments, "")
}

func splitLongSentence(sentence string) string {
	mid := len(sentence) / 2

	best := -1
	bestLen := 0
	lead := ""
	for _, bp := range breakPoints {
		idx := strings.Index(sentence[mid:], bp.marker)
		if idx < 0 {
			continue
		}
		if best < 0 || mid+idx < best {
			best = mid + idx
			bestLen = len(bp.marker)
			lead = bp.lead
		}
	}
	if best >= 0 {
		return sentence[:best] + ". " + lead + sentence[best+bestLen:]
	}

	if idx := strings.Index(sentence[mid:], ","); idx >= 0 {
		at := mid + idx
		return sentence[:at] + ". Ponadto " + strings.TrimLeft(sentence[at+1:], " ")
	}

	return sentence
}
