package moderation

import (
	"regexp"
	"sort"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain/moderation"
)

// titleTokens are regex fragments for the civility and professional
// titles that anchor name detection, in priority order. Abbreviated
// civilities accept an optional trailing period.
var titleTokens = []string{
	`Dr\.?`, "Docteur", `Pr\.?`, "Professeur", `Prof\.?`,
	"Médecin", "Infirmier", "Infirmière", "Chirurgien", "Chirurgienne",
	"Pharmacien", "Pharmacienne", "Kinésithérapeute", "Kiné",
	"Aide-soignant", "Aide-soignante", "Sage-femme", "Sage femme",
	"Monsieur", "Madame", "Mademoiselle",
	`M\.?`, `Mr\.?`, `Mme\.?`, `Mlle\.?`, `Me\.?`,
	"Maître", "Maitre", "Directeur", "Directrice",
	"Responsable", "Chef",
}

const (
	upperClass = `[A-ZÉÈÊËÀÂÄÔÖÛÜÇ]`
	lowerClass = `[a-zéèêëàâäôöûüç-]`
)

// NameRedactor masks the name token of title+name occurrences. Titles
// match case-insensitively; the name must either be capitalized (first
// letter uppercase, rest lowercase or hyphen) or entirely uppercase,
// accents included. Matching collects non-overlapping spans across all
// titles in one pass over the input instead of re-scanning partially
// redacted text, so a name can only ever be claimed by the highest
// priority title that covers it.
type NameRedactor struct {
	patterns []*regexp.Regexp
}

func NewNameRedactor() *NameRedactor {
	patterns := make([]*regexp.Regexp, 0, len(titleTokens)*2)
	for _, token := range titleTokens {
		// Capitalized variant first, all-uppercase variant second.
		patterns = append(patterns, regexp.MustCompile(
			`\b((?i:`+token+`)\s+)(`+upperClass+lowerClass+`+)`,
		))
		patterns = append(patterns, regexp.MustCompile(
			`\b((?i:`+token+`)\s+)(`+upperClass+upperClass+`+)`,
		))
	}
	return &NameRedactor{patterns: patterns}
}

type nameSpan struct {
	start, end int // span of the name token
	full       [2]int
}

// Redact masks every detected name with the fixed five-asterisk token
// and returns the title+name fragments that matched, in title priority
// order.
func (r *NameRedactor) Redact(text string) (string, []string) {
	var matched []string
	var spans []nameSpan

	for _, pattern := range r.patterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			candidate := nameSpan{start: m[4], end: m[5], full: [2]int{m[0], m[1]}}
			if overlapsAny(candidate.full, spans) {
				continue
			}
			spans = append(spans, candidate)
			matched = append(matched, text[m[2]:m[5]])
		}
	}

	if len(spans) == 0 {
		return text, nil
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start > spans[j].start })
	out := text
	for _, s := range spans {
		out = out[:s.start] + moderation.NameMask + out[s.end:]
	}
	return out, matched
}

func overlapsAny(full [2]int, spans []nameSpan) bool {
	for _, s := range spans {
		if full[0] < s.full[1] && s.full[0] < full[1] {
			return true
		}
	}
	return false
}
