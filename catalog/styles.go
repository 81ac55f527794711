package catalog

import "clementus360/response-engine/config"

// StyleRule is a personalization rule keyed by communication style.
type StyleRule struct {
	ID         string
	Pronouns   []string
	Tone       string
	Vocabulary string
	Formality  string
}

func (c *Catalog) setupStyles() {
	c.styles[config.StyleFormal] = StyleRule{
		ID:         config.StyleFormal,
		Pronouns:   []string{"Pan", "Pani"},
		Tone:       "professional",
		Vocabulary: "business",
		Formality:  config.LevelHigh,
	}
	c.styles[config.StyleCasual] = StyleRule{
		ID:         config.StyleCasual,
		Pronouns:   []string{"Ty"},
		Tone:       "friendly",
		Vocabulary: "everyday",
		Formality:  config.LevelLow,
	}
	c.styles[config.StyleMotivational] = StyleRule{
		ID:        config.StyleMotivational,
		Pronouns:  []string{"Ty"},
		Tone:      "enthusiastic",
		Formality: config.LevelMedium,
	}
	c.styles[config.StyleAnalytical] = StyleRule{
		ID:         config.StyleAnalytical,
		Pronouns:   []string{"Ty"},
		Vocabulary: "technical",
		Formality:  config.LevelMedium,
	}
}

// Style looks up a personalization rule by communication style id.
func (c *Catalog) Style(id string) (StyleRule, bool) {
	s, ok := c.styles[id]
	return s, ok
}
