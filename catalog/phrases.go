package catalog

// Phrase pools for the emotional rewrite. Selection between entries is the
// engine's single point of randomness, injectable for tests.

var CalmingPhrases = []string{
	"Spokojnie,",
	"Weź głęboki oddech.",
	"Krok po kroku.",
	"Wszystko się ułoży.",
}

var EmpathyStarters = []string{
	"Rozumiem, że to może być frustrujące.",
	"Wiem, jak się czujesz.",
	"To naturalne, że się zirytowałeś.",
}

var Celebrations = []string{
	"Brawo!",
	"Wspaniale!",
	"Gratulacje!",
	"Fantastyczny wynik!",
}

var Reinforcements = []string{
	"Świetnie sobie radzisz.",
	"Jesteś na dobrej drodze.",
	"Trzymaj tempo!",
}

// Casual-to-professional vocabulary swaps, applied on the professional tone.
var ProfessionalSwaps = [][2]string{
	{"super", "doskonale"},
	{"git", "bardzo dobrze"},
	{"spoko", "w porządku"},
	{"mega", "bardzo"},
}

// Enthusiasm word swaps, applied on the enthusiastic tone and the
// excitement emotion.
var EnthusiasmSwaps = [][2]string{
	{"dobrze", "świetnie"},
	{"ok", "fantastycznie"},
}
