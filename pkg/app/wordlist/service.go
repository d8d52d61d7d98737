package wordlist

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/wordlist"
)

// Service owns mutations of the shared forbidden word dictionary. Every
// mutation is applied in memory first and then persisted; a failed
// persist keeps the in-memory change and reports a degraded outcome.
// Mutations are serialized so persists cannot interleave.
type Service struct {
	mu         sync.Mutex
	dictionary *wordlist.Dictionary
	store      wordlist.Store
	logger     *logrus.Logger
}

// NewService loads (or seeds) the persisted word list into a shared
// dictionary.
func NewService(store wordlist.Store, logger *logrus.Logger) (*Service, error) {
	words, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load forbidden word list: %w", err)
	}
	return &Service{
		dictionary: wordlist.NewDictionary(words),
		store:      store,
		logger:     logger,
	}, nil
}

// Dictionary exposes the shared dictionary for pipeline readers.
func (s *Service) Dictionary() *wordlist.Dictionary {
	return s.dictionary
}

// Add inserts a word (lowercased) and persists the list.
func (s *Service) Add(word string) (domain.Outcome, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", domain.NewValidationError("word", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dictionary.Add(word)
	return s.persist()
}

// Remove deletes a word and persists the list. A missing word is a
// not-found error and leaves both memory and store untouched.
func (s *Service) Remove(word string) (domain.Outcome, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", domain.NewValidationError("word", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dictionary.Remove(word); err != nil {
		return "", err
	}
	return s.persist()
}

// List returns the word → mask mapping.
func (s *Service) List() map[string]string {
	return s.dictionary.Masks()
}

func (s *Service) persist() (domain.Outcome, error) {
	if err := s.store.Persist(s.dictionary.Words()); err != nil {
		s.logger.WithError(err).Error("word list mutation applied but not persisted")
		return domain.OutcomeApplied, nil
	}
	return domain.OutcomeSaved, nil
}
