package moderation

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/flagcfg"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/moderation"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/wordlist"
	"github.com/surpriz/hospitalidee-moderation/pkg/infra/prometheus"
)

// Classifier is the external content-classification boundary. A failed
// call must come back as an untriggered classification carrying the
// error detail, never as an error.
type Classifier interface {
	Classify(ctx context.Context, text string, threshold float64) moderation.Classification
}

// ConfigProvider yields the current flag configuration snapshot.
type ConfigProvider interface {
	Current() flagcfg.Config
}

// Service sequences the moderation pipeline: classification, lexical
// redaction, name redaction, flag evaluation. Every step runs for every
// request; an upstream classification failure only downgrades the
// classifier signal.
type Service struct {
	classifier Classifier
	lexical    *LexicalRedactor
	names      *NameRedactor
	engine     FlagEngine
	dictionary *wordlist.Dictionary
	flagConfig ConfigProvider
	logger     *logrus.Logger
}

func NewService(
	classifier Classifier,
	vocab *Vocabulary,
	dictionary *wordlist.Dictionary,
	flagConfig ConfigProvider,
	logger *logrus.Logger,
) *Service {
	return &Service{
		classifier: classifier,
		lexical:    NewLexicalRedactor(vocab),
		names:      NewNameRedactor(),
		engine:     NewFlagEngine(),
		dictionary: dictionary,
		flagConfig: flagConfig,
		logger:     logger,
	}
}

// Moderate runs the full pipeline for one request. It fails fast only
// on malformed input; business-level conditions are carried on the
// result.
func (s *Service) Moderate(ctx context.Context, req moderation.Request) (*moderation.Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, domain.NewValidationError("text", "must not be empty")
	}
	threshold := moderation.ClampThreshold(req.Threshold)

	classification := s.classifier.Classify(ctx, req.Text, threshold)

	lexical := s.lexical.Redact(req.Text, classification.Triggered, s.dictionary.Words())

	provenance := moderation.Provenance{
		ClassifierWords: lexical.ClassifierWords,
		DictionaryWords: lexical.DictionaryWords,
	}
	if lexical.ClassifierChanged {
		provenance.Touch(moderation.SourceClassifier)
	}
	if lexical.DictionaryChanged {
		provenance.Touch(moderation.SourceDictionary)
	}

	redacted, names := s.names.Redact(lexical.Text)
	provenance.Names = names
	if redacted != lexical.Text {
		provenance.Touch(moderation.SourceNames)
	}

	verdict := s.engine.Determine(classification, provenance, req.Text, redacted, s.flagConfig.Current())
	prometheus.ModerationVerdictTotal.WithLabelValues(string(verdict.Flag)).Inc()

	s.logger.WithFields(logrus.Fields{
		"flag":             verdict.Flag,
		"is_moderated":     redacted != req.Text,
		"threshold":        threshold,
		"triggered":        classification.Triggered,
		"forbidden_words":  len(provenance.ClassifierWords) + len(provenance.DictionaryWords),
		"proper_names":     len(provenance.Names),
		"classifier_error": classification.Err != "",
	}).Info("moderation completed")

	return &moderation.Result{
		OriginalText:   req.Text,
		ModeratedText:  redacted,
		IsModerated:    redacted != req.Text,
		Threshold:      threshold,
		Classification: classification,
		Provenance:     provenance,
		Verdict:        verdict,
	}, nil
}
