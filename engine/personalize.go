package engine

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/config"
	"clementus360/response-engine/types"
)

// Personalizer applies communication-style transforms, name insertion and
// history-based references.
type Personalizer struct {
	Catalog *catalog.Catalog
	Now     func() time.Time
}

var (
	formalYouRe  = regexp.MustCompile(`(?i)\bty\b`)
	formalHaveRe = regexp.MustCompile(`(?i)masz`)
	formalAreRe  = regexp.MustCompile(`(?i)jesteś`)

	// Natural insertion points for the preferred name: greeting opener,
	// celebratory exclamation, possession statement. First match wins.
	nameInsertionPoints = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(Dzień dobry|Witaj|Dobry wieczór)`),
		regexp.MustCompile(`(?i)(Gratulacje|Świetnie|Doskonale)`),
		regexp.MustCompile(`(?i)(Masz|Posiadasz)`),
	}
)

func (p *Personalizer) Personalize(resp types.Response, ctx types.Context) (types.Response, types.PersonalizationApplied) {
	style := ctx.Preference("communicationStyle", config.StyleCasual)

	text := resp.Text
	if rule, ok := p.Catalog.Style(style); ok {
		text = applyStyleRule(text, rule)
	}

	name := ctx.Preference("preferredName", "")
	if name != "" {
		text = insertName(text, name)
	}

	text, historyUsed := p.applyHistory(text, ctx)

	resp.Text = text
	return resp, types.PersonalizationApplied{
		Style:          style,
		Name:           name,
		HistoryContext: historyUsed,
	}
}

func applyStyleRule(text string, rule catalog.StyleRule) string {
	if rule.Formality == config.LevelHigh {
		text = formalYouRe.ReplaceAllString(text, "Pan/Pani")
		text = formalHaveRe.ReplaceAllString(text, "ma Pan/Pani")
		text = formalAreRe.ReplaceAllString(text, "jest Pan/Pani")
	}

	switch rule.Tone {
	case "enthusiastic":
		text = Enthuse(text)
	case "professional":
		text = professionalize(text)
	}

	return text
}

// insertName puts the name immediately after the first matching insertion
// point. At most one insertion; no match means no insertion.
func insertName(text, name string) string {
	for _, re := range nameInsertionPoints {
		if loc := re.FindStringIndex(text); loc != nil {
			return text[:loc[1]] + ", " + name + text[loc[1]:]
		}
	}
	return text
}

func (p *Personalizer) applyHistory(text string, ctx types.Context) (string, bool) {
	applied := false

	if achievements := ctx.UserHistory.RecentAchievements; len(achievements) > 0 {
		text += fmt.Sprintf(" Pamiętam, że niedawno ukończyłeś %q.", achievements[0])
		applied = true
	}

	if ctx.UserHistory.PreferredTimeOfDay == "morning" && p.Now().Hour() < 12 {
		text += " Jak zwykle, zaczynasz dzień wcześnie!"
		applied = true
	}

	return text, applied
}

var (
	enthusiasmSwaps   []swap
	professionalSwaps []swap
)

type swap struct {
	re   *regexp.Regexp
	repl string
}

func init() {
	for _, s := range catalog.EnthusiasmSwaps {
		enthusiasmSwaps = append(enthusiasmSwaps, swap{
			re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(s[0])),
			repl: s[1],
		})
	}
	for _, s := range catalog.ProfessionalSwaps {
		professionalSwaps = append(professionalSwaps, swap{
			re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(s[0])),
			repl: s[1],
		})
	}
}

// Enthuse converts periods to exclamation marks and swaps a small word set
// for more enthusiastic synonyms. Shared by the enthusiastic tone and the
// excitement emotion branch.
func Enthuse(text string) string {
	text = strings.ReplaceAll(text, ".", "!")
	for _, s := range enthusiasmSwaps {
		text = s.re.ReplaceAllString(text, s.repl)
	}
	return text
}

func professionalize(text string) string {
	for _, s := range professionalSwaps {
		text = s.re.ReplaceAllString(text, s.repl)
	}
	return text
}
