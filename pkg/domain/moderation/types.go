package moderation

import (
	"strings"
)

const (
	// DefaultThreshold is used when a request does not carry one.
	DefaultThreshold = 0.5
	// MinThreshold and MaxThreshold bound the caller-supplied threshold.
	// Out-of-range values are clamped, not rejected.
	MinThreshold = 0.1
	MaxThreshold = 1.0
)

// Request is the immutable input of the moderation pipeline.
type Request struct {
	Text      string  `json:"text"`
	Threshold float64 `json:"moderation_threshold"`
}

// ClampThreshold forces a threshold into [MinThreshold, MaxThreshold],
// substituting DefaultThreshold for the zero value.
func ClampThreshold(threshold float64) float64 {
	if threshold == 0 {
		return DefaultThreshold
	}
	if threshold < MinThreshold {
		return MinThreshold
	}
	if threshold > MaxThreshold {
		return MaxThreshold
	}
	return threshold
}

// TriggerScore derives the score a category must reach for the
// classifier to trigger lexical moderation. A lower request threshold
// yields a lower trigger score, i.e. stricter moderation.
func TriggerScore(threshold float64) float64 {
	return 1.0 - threshold + 0.1
}

// CategoryScores holds the per-category scores of one evaluated text
// segment, each in [0,1].
type CategoryScores map[string]float64

// Classification is the outcome of the external classification call.
// A failed call carries Err and Triggered=false; the pipeline treats
// that as a non-fatal downgrade.
type Classification struct {
	Triggered bool             `json:"triggered"`
	Scores    []CategoryScores `json:"scores,omitempty"`
	Err       string           `json:"error,omitempty"`
}

// MaxScore returns the highest category score across all segments, or
// 0.0 when no scores are present.
func (c Classification) MaxScore() float64 {
	max := 0.0
	for _, segment := range c.Scores {
		for _, score := range segment {
			if score > max {
				max = score
			}
		}
	}
	return max
}

// Redaction sources, in pipeline order.
const (
	SourceClassifier = "classifier"
	SourceDictionary = "dictionary"
	SourceNames      = "names"
)

// Provenance records which words were redacted by which pipeline pass.
// It is append-only while the pipeline runs and never mutated afterwards.
type Provenance struct {
	ClassifierWords []string `json:"classifier_words"`
	DictionaryWords []string `json:"dictionary_words"`
	Names           []string `json:"proper_names"`
	Sources         []string `json:"sources"`
}

// Touch records that a pass changed the text. Sources keep their first
// insertion order and are never duplicated.
func (p *Provenance) Touch(source string) {
	for _, s := range p.Sources {
		if s == source {
			return
		}
	}
	p.Sources = append(p.Sources, source)
}

// Flag is the binary publish/hold verdict.
type Flag string

const (
	FlagRed   Flag = "RED"
	FlagGreen Flag = "GREEN"
)

// Verdict is the terminal output of the flag engine.
type Verdict struct {
	Flag    Flag     `json:"flag"`
	Reasons []string `json:"reasons"`
}

// Result aggregates everything a moderation request produced. It is
// created once per request and never mutated.
type Result struct {
	OriginalText   string         `json:"original_text"`
	ModeratedText  string         `json:"moderated_text"`
	IsModerated    bool           `json:"is_moderated"`
	Threshold      float64        `json:"moderation_threshold"`
	Classification Classification `json:"classification"`
	Provenance     Provenance     `json:"moderation_details"`
	Verdict        Verdict        `json:"verdict"`
}

// MaskWord builds the substitution token for a redacted word: one
// asterisk per character of the matched word.
func MaskWord(word string) string {
	return strings.Repeat("*", len([]rune(word)))
}

// NameMask is the fixed token substituted for redacted proper names.
// The length is intentionally unrelated to the name's length so the
// mask does not leak it.
const NameMask = "*****"
