package polish

import (
	"regexp"
	"strconv"
	"strings"

	"clementus360/response-engine/types"
)

// nounForms holds the three Polish forms of a governed noun: singular
// (1), paucal (last digit 2-4 outside the teens) and genitive plural
// (everything else).
type nounForms struct {
	singular string
	paucal   string
	plural   string
}

var governedNouns = []nounForms{
	{"zadanie", "zadania", "zadań"},
	{"spotkanie", "spotkania", "spotkań"},
}

var (
	countNounRe *regexp.Regexp
	formsByWord map[string]nounForms
)

func init() {
	var alts []string
	formsByWord = make(map[string]nounForms)
	for _, n := range governedNouns {
		for _, form := range []string{n.paucal, n.plural, n.singular} {
			alts = append(alts, regexp.QuoteMeta(form))
			formsByWord[form] = n
		}
	}
	countNounRe = regexp.MustCompile(`(\d+)\s+(` + strings.Join(alts, "|") + `)`)
}

// pick applies the numeral-agreement rule. Counts with n%100 in [10,20)
// always take the genitive plural, regardless of last digit.
func (n nounForms) pick(count int) string {
	if count == 1 {
		return n.singular
	}
	last := count % 10
	if last >= 2 && last <= 4 && (count%100 < 10 || count%100 >= 20) {
		return n.paucal
	}
	return n.plural
}

func fixNumeralAgreement(text string, _ types.Context) string {
	return countNounRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := countNounRe.FindStringSubmatch(m)
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return m
		}
		forms := formsByWord[parts[2]]
		return parts[1] + " " + forms.pick(count)
	})
}
