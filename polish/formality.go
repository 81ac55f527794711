package polish

import (
	"regexp"

	"clementus360/response-engine/config"
	"clementus360/response-engine/types"
)

type swap struct {
	re   *regexp.Regexp
	repl string
}

// Informal second-person constructs rewritten to formal address.
var formalSwaps = []swap{
	{regexp.MustCompile(`(?i)masz`), "posiada Pan/Pani"},
	{regexp.MustCompile(`(?i)zrób`), "proszę wykonać"},
	{regexp.MustCompile(`(?i)zobacz`), "proszę sprawdzić"},
}

// Formal polite markers stripped or converted back to informal address.
var casualSwaps = []swap{
	{regexp.MustCompile(`(?i)może Pan/Pani`), "możesz"},
	{regexp.MustCompile(`(?i)proszę `), ""},
}

func adjustFormality(text string, ctx types.Context) string {
	level := ctx.Preference("formalityLevel", config.LevelMedium)

	switch level {
	case config.LevelHigh:
		for _, s := range formalSwaps {
			text = s.re.ReplaceAllString(text, s.repl)
		}
	case config.LevelLow:
		for _, s := range casualSwaps {
			text = s.re.ReplaceAllString(text, s.repl)
		}
	}

	return text
}
