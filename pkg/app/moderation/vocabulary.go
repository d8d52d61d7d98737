package moderation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	_ "embed"
)

//go:embed vocabulary.txt
var defaultVocabulary string

// Vocabulary is the curated list of terms redacted when the classifier
// flags a text. It is ordered (pass order is the declared order) and
// indexed for O(1) membership checks. It is data, not code: a deploy
// can override it with its own file.
type Vocabulary struct {
	terms []string
	index map[string]struct{}
}

// LoadVocabulary reads terms from path, or the embedded default list
// when path is empty.
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return parseVocabulary(strings.NewReader(defaultVocabulary))
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer file.Close()
	return parseVocabulary(file)
}

func parseVocabulary(r io.Reader) (*Vocabulary, error) {
	v := &Vocabulary{index: make(map[string]struct{})}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		term := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if term == "" || strings.HasPrefix(term, "#") {
			continue
		}
		if _, ok := v.index[term]; ok {
			continue
		}
		v.terms = append(v.terms, term)
		v.index[term] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}
	if len(v.terms) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return v, nil
}

// Terms returns the terms in declared order.
func (v *Vocabulary) Terms() []string {
	return v.terms
}

// Contains reports membership of the exact lowercase term.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.index[strings.ToLower(term)]
	return ok
}

func (v *Vocabulary) Len() int {
	return len(v.terms)
}
