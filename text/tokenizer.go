package text

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// Engine selects the word segmentation strategy used by the boundary hinter.
type Engine uint8

const (
	// EngineNone disables word segmentation. Line breaking falls back to
	// whitespace and cluster boundaries.
	EngineNone Engine = iota
	// EngineLongestMatch segments with a greedy longest-match dictionary
	// scan. This is the default for Thai and related scripts.
	EngineLongestMatch
	// EngineUnicode segments with the UAX #29 default word boundary rules.
	EngineUnicode
)

// String returns the engine name as accepted by ParseEngine.
func (e Engine) String() string {
	switch e {
	case EngineNone:
		return "none"
	case EngineLongestMatch:
		return "longest"
	case EngineUnicode:
		return "unicode"
	}
	return unknownStr
}

// ParseEngine converts an engine name into an Engine value.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return EngineNone, nil
	case "longest", "longest-match", "newmm", "mm":
		return EngineLongestMatch, nil
	case "unicode", "uax29":
		return EngineUnicode, nil
	}
	return EngineNone, fmt.Errorf("unknown tokenizer engine %q", name)
}

// A Tokenizer splits a run of same-script text into words. Returned tokens
// concatenate back to the input exactly: no runes are added, dropped, or
// reordered. Tokenizing a single previously returned token yields that token
// back, which makes boundary hinting idempotent.
type Tokenizer interface {
	Tokenize(s string) ([]string, error)
}

// LongestMatchTokenizer segments text with a greedy longest-match scan over
// a word dictionary. Runes not covered by any dictionary word accumulate
// into a single unknown token until the next dictionary match.
type LongestMatchTokenizer struct {
	dict   map[string]struct{}
	maxLen int // longest dictionary word, in runes
}

// NewLongestMatchTokenizer builds a tokenizer from a word list. Empty
// entries are ignored.
func NewLongestMatchTokenizer(dict []string) *LongestMatchTokenizer {
	t := &LongestMatchTokenizer{dict: make(map[string]struct{}, len(dict))}
	for _, w := range dict {
		if w == "" {
			continue
		}
		t.dict[w] = struct{}{}
		if n := len([]rune(w)); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t
}

// LoadDictionary reads a word list with one word per line. Blank lines and
// lines starting with '#' are skipped.
func LoadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var dict []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dict = append(dict, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return dict, nil
}

// Tokenize splits s into dictionary words. At each position the longest
// matching dictionary word wins; unmatched runes join the pending unknown
// token so garbage input still round-trips.
func (t *LongestMatchTokenizer) Tokenize(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	if len(t.dict) == 0 {
		return []string{s}, nil
	}
	runes := []rune(s)
	var tokens []string
	var unknown []rune
	i := 0
	for i < len(runes) {
		match := 0
		limit := t.maxLen
		if rest := len(runes) - i; rest < limit {
			limit = rest
		}
		for n := limit; n >= 1; n-- {
			if _, ok := t.dict[string(runes[i:i+n])]; ok {
				match = n
				break
			}
		}
		if match == 0 {
			unknown = append(unknown, runes[i])
			i++
			continue
		}
		if len(unknown) > 0 {
			tokens = append(tokens, string(unknown))
			unknown = unknown[:0]
		}
		tokens = append(tokens, string(runes[i:i+match]))
		i += match
	}
	if len(unknown) > 0 {
		tokens = append(tokens, string(unknown))
	}
	return tokens, nil
}

// UnicodeTokenizer segments text with the UAX #29 default word boundary
// rules. It needs no dictionary but cannot find word boundaries inside
// spaceless scripts, so it mainly serves mixed-script fallback.
type UnicodeTokenizer struct{}

// Tokenize splits s at UAX #29 word boundaries. Boundary segments are kept
// verbatim, including whitespace segments, so tokens concatenate back to s.
func (UnicodeTokenizer) Tokenize(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var tokens []string
	iter := words.FromString(s)
	for iter.Next() {
		tokens = append(tokens, iter.Value())
	}
	return tokens, nil
}

// NewTokenizer constructs the tokenizer for an engine. EngineLongestMatch
// requires a dictionary; with an empty one it degrades to the identity
// tokenizer, which disables hinting without failing.
func NewTokenizer(engine Engine, dict []string) Tokenizer {
	switch engine {
	case EngineLongestMatch:
		return NewLongestMatchTokenizer(dict)
	case EngineUnicode:
		return UnicodeTokenizer{}
	}
	return nil
}
