package flagcfg

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/flagcfg"
)

// Service owns the process-wide flag configuration: a consistent
// snapshot for readers, merge-style updates for writers, persisted on
// every change.
type Service struct {
	mu     sync.RWMutex
	cfg    flagcfg.Config
	store  flagcfg.Store
	logger *logrus.Logger
}

func NewService(store flagcfg.Store, logger *logrus.Logger) (*Service, error) {
	cfg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load flag config: %w", err)
	}
	return &Service{cfg: cfg, store: store, logger: logger}, nil
}

// Current returns the active configuration snapshot.
func (s *Service) Current() flagcfg.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update merges the partial update into the active configuration and
// persists it. Validation failures reject the update before any state
// changes; a failed persist keeps the in-memory change and reports a
// degraded outcome.
func (s *Service) Update(update flagcfg.Update) (domain.Outcome, error) {
	if update.MistralScoreThreshold != nil {
		t := *update.MistralScoreThreshold
		if t < 0 || t > 1 {
			return "", domain.NewValidationError("mistral_score_threshold", "must be between 0 and 1")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = update.Apply(s.cfg)

	if err := s.store.Persist(s.cfg); err != nil {
		s.logger.WithError(err).Error("flag config updated but not persisted")
		return domain.OutcomeApplied, nil
	}
	return domain.OutcomeSaved, nil
}
