package text

import (
	"strings"

	"golang.org/x/text/language"
)

// Marker is the zero-width space inserted between words in scripts that do
// not separate words with spaces. It is a layout hint only: markers are
// stripped before shaping and never reach the font.
const Marker = '​'

// hintScript maps a language to the script whose word boundaries need
// explicit markers. Languages outside this set either use spaces between
// words or break per character, so hinting is a no-op for them.
func hintScript(lang language.Tag) Script {
	base, conf := lang.Base()
	if conf == language.No {
		return ScriptUnknown
	}
	switch base.String() {
	case "th":
		return ScriptThai
	case "lo":
		return ScriptLao
	case "km":
		return ScriptKhmer
	case "my":
		return ScriptMyanmar
	}
	return ScriptUnknown
}

// NeedsHinting reports whether text in the given language benefits from
// boundary markers before line breaking.
func NeedsHinting(lang language.Tag) bool {
	return hintScript(lang) != ScriptUnknown
}

// A Hinter inserts boundary markers between words of spaceless scripts.
// It fails open: any condition it cannot handle (no tokenizer, unknown
// language, tokenizer error) returns the input unchanged, which degrades
// line breaking but never corrupts text.
type Hinter struct {
	tokenizer Tokenizer
}

// NewHinter returns a Hinter backed by the given tokenizer. A nil tokenizer
// is allowed and produces a Hinter whose Hint is the identity function.
func NewHinter(tok Tokenizer) *Hinter {
	return &Hinter{tokenizer: tok}
}

// Hint returns s with boundary markers inserted between words of the
// language's script. Hint is idempotent: runs already delimited by markers
// are tokenized in isolation, and tokenizing a single word yields that word
// back, so applying Hint twice produces the same string as applying it once.
func (h *Hinter) Hint(s string, lang language.Tag) string {
	if h == nil || h.tokenizer == nil || s == "" {
		return s
	}
	target := hintScript(lang)
	if target == ScriptUnknown {
		return s
	}

	var b strings.Builder
	runes := []rune(s)
	i := 0
	changed := false
	for i < len(runes) {
		if ClassifyRune(runes[i]) != target {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && ClassifyRune(runes[j]) == target {
			j++
		}
		if h.hintRun(&b, string(runes[i:j])) {
			changed = true
		}
		i = j
	}
	if !changed {
		return s
	}
	return b.String()
}

// hintRun tokenizes one same-script run and writes it back with markers
// between tokens. Markers already present in the surrounding text bound the
// run (Marker classifies as Common), so existing boundaries are preserved
// and never doubled.
func (h *Hinter) hintRun(b *strings.Builder, run string) bool {
	tokens, err := h.tokenizer.Tokenize(run)
	if err != nil || len(tokens) <= 1 {
		b.WriteString(run)
		return false
	}
	for k, tok := range tokens {
		if k > 0 {
			b.WriteRune(Marker)
		}
		b.WriteString(tok)
	}
	return true
}

// StripMarkers removes all boundary markers from s. Shaping operates on the
// stripped text so markers never produce glyphs.
func StripMarkers(s string) string {
	if !strings.ContainsRune(s, Marker) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == Marker {
			return -1
		}
		return r
	}, s)
}
