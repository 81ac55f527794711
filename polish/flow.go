package polish

import (
	"regexp"
	"strings"

	"clementus360/response-engine/types"
)

var (
	afterPeriodRe      = regexp.MustCompile(`\.\s+(\p{Lu}[\p{L}]*)`)
	afterExclamationRe = regexp.MustCompile(`!\s+(\p{Lu}[\p{L}]*)`)
	sentenceBoundaryRe = regexp.MustCompile(`[.!?]+`)
)

// Connectives this stage inserts, plus the leads the clarity stage puts
// after a split. Guarded against so a second pass leaves the text unchanged.
var connectives = map[string]bool{
	"Dodatkowo": true,
	"Również":   true,
	"Ponadto":   true,
	"Jednak":    true,
}

// Rotating synonym lists keyed by a repeated sentence-opening word.
var startAlternatives = map[string][]string{
	"Masz":  {"Posiadasz", "Do Twojej dyspozycji", "W Twoim kalendarzu"},
	"Twoja": {"Obecna", "Aktualna", "Bieżąca"},
	"Jest":  {"Znajduje się", "Wynosi", "Określone jest"},
}

func improveFlow(text string, _ types.Context) string {
	text = afterPeriodRe.ReplaceAllStringFunc(text, func(m string) string {
		word := afterPeriodRe.FindStringSubmatch(m)[1]
		if connectives[word] {
			return m
		}
		return ". Dodatkowo, " + word
	})

	text = afterExclamationRe.ReplaceAllStringFunc(text, func(m string) string {
		word := afterExclamationRe.FindStringSubmatch(m)[1]
		if connectives[word] {
			return m
		}
		return "! Również " + word
	})

	return varySentenceStarts(text)
}

// varySentenceStarts detects repeated sentence-opening words across the
// whole text and swaps the second and later occurrences for rotating
// synonyms.
func varySentenceStarts(text string) string {
	segments := splitKeepBoundaries(text)

	counts := make(map[string]int)
	for i := 0; i < len(segments); i += 2 {
		counts[firstWord(segments[i])]++
	}

	seen := make(map[string]int)
	for i := 0; i < len(segments); i += 2 {
		word := firstWord(segments[i])
		alts, ok := startAlternatives[word]
		if !ok || counts[word] < 2 {
			continue
		}
		occurrence := seen[word]
		seen[word]++
		if occurrence == 0 {
			continue // keep the first occurrence
		}
		alt := alts[(occurrence-1)%len(alts)]
		segments[i] = strings.Replace(segments[i], word, alt, 1)
	}

	return strings.Join(segments, "")
}

// splitKeepBoundaries splits text into alternating sentence and boundary
// segments, sentences at even indices.
func splitKeepBoundaries(text string) []string {
	var segments []string
	last := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		segments = append(segments, text[last:loc[0]], text[loc[0]:loc[1]])
		last = loc[1]
	}
	return append(segments, text[last:])
}

func firstWord(sentence string) string {
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
