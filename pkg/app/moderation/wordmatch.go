package moderation

import (
	"regexp"
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Compiled term patterns, shared across requests. The dictionary is
// mutable so patterns are compiled lazily and cached by term.
var termPatterns sync.Map

func termPattern(term string) *regexp.Regexp {
	if cached, ok := termPatterns.Load(term); ok {
		if re, ok := cached.(*regexp.Regexp); ok {
			return re
		}
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	termPatterns.Store(term, re)
	return re
}

// isWordRune mirrors the \w class for boundary purposes, including
// accented letters the ASCII-only \b of RE2 would miss.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isWholeWordMatch(text string, start, end int) bool {
	if start > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(before) {
			return false
		}
	}
	if end < len(text) {
		after, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(after) {
			return false
		}
	}
	return true
}

// replaceWholeWord masks every whole-word, case-insensitive occurrence
// of term. The term is matched literally; word boundaries are checked
// over the full unicode letter range. Reports whether anything was
// replaced.
func replaceWholeWord(text, term, mask string) (string, bool) {
	matches := termPattern(term).FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text, false
	}

	var spans [][2]int
	for _, m := range matches {
		if isWholeWordMatch(text, m[0], m[1]) {
			spans = append(spans, [2]int{m[0], m[1]})
		}
	}
	if len(spans) == 0 {
		return text, false
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i][0] > spans[j][0] })
	out := text
	for _, span := range spans {
		out = out[:span[0]] + mask + out[span[1]:]
	}
	return out, true
}
