package wordlist

import (
	"strings"
	"sync"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/moderation"
)

// Store abstracts the durable home of the forbidden word list: a flat
// list of lowercase words.
type Store interface {
	// Load returns all persisted words. Implementations seed a default
	// list when nothing has been persisted yet.
	Load() ([]string, error)
	// Persist durably replaces the stored list.
	Persist(words []string) error
}

// Dictionary is the in-memory forbidden word list shared by concurrent
// moderation requests. Reads observe a consistent snapshot; mutations
// are atomic with respect to readers.
type Dictionary struct {
	mu    sync.RWMutex
	words []string
	index map[string]struct{}
}

func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := d.index[w]; ok {
			continue
		}
		d.words = append(d.words, w)
		d.index[w] = struct{}{}
	}
	return d
}

// Words returns a copy of the word list in insertion order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Masks returns the word → mask mapping used by callers that display
// the dictionary.
func (d *Dictionary) Masks() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.words))
	for _, w := range d.words {
		out[w] = moderation.MaskWord(w)
	}
	return out
}

// Add inserts a word, lowercased. Adding a word that is already present
// is a no-op.
func (d *Dictionary) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.index[word]; ok {
		return
	}
	d.words = append(d.words, word)
	d.index[word] = struct{}{}
}

// Remove deletes a word. Removing a word that is not present returns a
// not-found error and leaves the dictionary untouched.
func (d *Dictionary) Remove(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.index[word]; !ok {
		return domain.NewWordNotFoundError(word)
	}
	delete(d.index, word)
	for i, w := range d.words {
		if w == word {
			d.words = append(d.words[:i], d.words[i+1:]...)
			break
		}
	}
	return nil
}

// Contains reports whether the exact lowercase word is present.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.index[strings.ToLower(word)]
	return ok
}

func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
