package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultForbiddenWords seeds the word list the first time the service
// runs against an empty store.
var DefaultForbiddenWords = []string{
	"merde", "putain", "connard", "con", "pute", "bite", "trou du cul",
}

// WordListFileStore persists the forbidden word list as a flat file,
// one lowercase word per line. Lines starting with '#' and blank lines
// are ignored on load.
type WordListFileStore struct {
	path   string
	logger *logrus.Logger
}

func NewWordListFileStore(path string, logger *logrus.Logger) *WordListFileStore {
	return &WordListFileStore{path: path, logger: logger}
}

func (s *WordListFileStore) Load() ([]string, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		s.logger.WithField("path", s.path).Info("word list file absent, seeding defaults")
		if err := s.Persist(DefaultForbiddenWords); err != nil {
			return nil, fmt.Errorf("failed to seed default word list: %w", err)
		}
		return append([]string(nil), DefaultForbiddenWords...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open word list file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list file: %w", err)
	}
	return words, nil
}

// Persist writes the full list atomically (temp file + rename) so
// concurrent loaders never observe a half-written file.
func (s *WordListFileStore) Persist(words []string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create word list directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wordlist-*")
	if err != nil {
		return fmt.Errorf("failed to create temp word list file: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := bufio.NewWriter(tmp)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp word list file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace word list file: %w", err)
	}
	return nil
}
