package moderation

import (
	"fmt"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain/flagcfg"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/moderation"
)

const noIssueReason = "no issue detected"

// FlagEngine turns the pipeline's signals into a RED/GREEN verdict. It
// is a pure function of its inputs: rules are evaluated in a fixed
// order, each appends its own reason, and the verdict is RED iff at
// least one rule fired. Rule 4 restates what rules 1-3 may already have
// said; it is evaluated independently on purpose and not deduplicated.
type FlagEngine struct{}

func NewFlagEngine() FlagEngine {
	return FlagEngine{}
}

func (FlagEngine) Determine(
	classification moderation.Classification,
	provenance moderation.Provenance,
	originalText string,
	redactedText string,
	cfg flagcfg.Config,
) moderation.Verdict {
	var reasons []string

	maxScore := classification.MaxScore()
	if maxScore >= cfg.MistralScoreThreshold {
		reasons = append(reasons, fmt.Sprintf(
			"classification score %.4f reached the configured threshold %.2f",
			maxScore, cfg.MistralScoreThreshold,
		))
	}

	wordCount := len(provenance.DictionaryWords) + len(provenance.ClassifierWords)
	if cfg.ForbiddenWordsTriggerRed && wordCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d forbidden word(s) redacted", wordCount))
	}

	if cfg.ProperNamesTriggerRed && len(provenance.Names) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"%d proper name(s) masked (RGPD)", len(provenance.Names),
		))
	}

	if cfg.TextModificationTriggerRed && originalText != redactedText {
		reasons = append(reasons, "text modified during moderation")
	}

	if len(reasons) == 0 {
		return moderation.Verdict{Flag: moderation.FlagGreen, Reasons: []string{noIssueReason}}
	}
	return moderation.Verdict{Flag: moderation.FlagRed, Reasons: reasons}
}
