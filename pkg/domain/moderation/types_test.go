package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampThreshold(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect float64
	}{
		{"zero uses default", 0, 0.5},
		{"below minimum clamps up", 0.05, 0.1},
		{"above maximum clamps down", 2.0, 1.0},
		{"minimum passes", 0.1, 0.1},
		{"maximum passes", 1.0, 1.0},
		{"in range passes", 0.42, 0.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ClampThreshold(tt.input))
		})
	}
}

func TestTriggerScore(t *testing.T) {
	// Stricter request threshold means lower trigger score.
	assert.InDelta(t, 0.6, TriggerScore(0.5), 1e-9)
	assert.InDelta(t, 0.1, TriggerScore(1.0), 1e-9)
	assert.InDelta(t, 1.0, TriggerScore(0.1), 1e-9)
}

func TestClassification_MaxScore(t *testing.T) {
	assert.Equal(t, 0.0, Classification{}.MaxScore())

	c := Classification{Scores: []CategoryScores{
		{"hate_and_discrimination": 0.2, "violence_and_threats": 0.7},
		{"selfharm": 0.4},
	}}
	assert.Equal(t, 0.7, c.MaxScore())
}

func TestProvenance_Touch(t *testing.T) {
	var p Provenance
	p.Touch(SourceDictionary)
	p.Touch(SourceClassifier)
	p.Touch(SourceDictionary)

	// First insertion order, no duplicates.
	assert.Equal(t, []string{SourceDictionary, SourceClassifier}, p.Sources)
}

func TestMaskWord(t *testing.T) {
	assert.Equal(t, "*****", MaskWord("merde"))
	assert.Equal(t, "***********", MaskWord("trou du cul"))
	// One asterisk per rune, not per byte.
	assert.Equal(t, "******", MaskWord("enculé"))
}
