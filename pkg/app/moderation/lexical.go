package moderation

import (
	"strings"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain/moderation"
)

// LexicalOutcome carries the redacted text plus the provenance of both
// lexical passes.
type LexicalOutcome struct {
	Text              string
	ClassifierWords   []string
	DictionaryWords   []string
	ClassifierChanged bool
	DictionaryChanged bool
}

// LexicalRedactor substitutes forbidden words in two ordered passes:
// the curated vocabulary (only when the classifier triggered), then the
// persistent dictionary. Every mask is one asterisk per character of
// the matched word.
type LexicalRedactor struct {
	vocab *Vocabulary
}

func NewLexicalRedactor(vocab *Vocabulary) *LexicalRedactor {
	return &LexicalRedactor{vocab: vocab}
}

// Redact applies both passes over text. The dictionary argument is a
// point-in-time snapshot so concurrent mutations cannot be observed
// mid-request.
func (r *LexicalRedactor) Redact(text string, triggered bool, dictionary []string) LexicalOutcome {
	outcome := LexicalOutcome{Text: text}
	lower := strings.ToLower(text)

	if triggered {
		before := outcome.Text
		for _, term := range r.vocab.Terms() {
			// Containment is a cheap pre-filter; the whole-word match may
			// still disagree on boundaries, in which case nothing is
			// replaced and nothing is recorded.
			if !strings.Contains(lower, term) {
				continue
			}
			replaced, changed := replaceWholeWord(outcome.Text, term, moderation.MaskWord(term))
			if changed {
				outcome.Text = replaced
				outcome.ClassifierWords = append(outcome.ClassifierWords, term)
			}
		}
		outcome.ClassifierChanged = outcome.Text != before
	}

	before := outcome.Text
	for _, word := range dictionary {
		replaced, changed := replaceWholeWord(outcome.Text, word, moderation.MaskWord(word))
		if changed {
			outcome.Text = replaced
			outcome.DictionaryWords = append(outcome.DictionaryWords, word)
		}
	}
	outcome.DictionaryChanged = outcome.Text != before

	return outcome
}
