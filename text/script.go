package text

import "sort"

// Script identifies the Unicode script of a code point. Runs of text sharing
// a script (after Common/Inherited resolution) are shaped together.
type Script uint8

const (
	// ScriptCommon is used for punctuation, digits, and symbols shared
	// across scripts, including the zero-width boundary marker.
	ScriptCommon Script = iota
	// ScriptInherited is used for combining marks that take the script of
	// their base character.
	ScriptInherited
	// ScriptLatin covers the Latin blocks (ASCII plus extensions).
	ScriptLatin
	// ScriptCyrillic covers the Cyrillic blocks.
	ScriptCyrillic
	// ScriptGreek covers Greek and Coptic plus Greek Extended.
	ScriptGreek
	// ScriptArabic covers the Arabic blocks and presentation forms.
	ScriptArabic
	// ScriptHebrew covers Hebrew and its presentation forms.
	ScriptHebrew
	// ScriptDevanagari through ScriptSinhala cover the Indic family.
	ScriptDevanagari
	ScriptBengali
	ScriptGurmukhi
	ScriptGujarati
	ScriptOriya
	ScriptTamil
	ScriptTelugu
	ScriptKannada
	ScriptMalayalam
	ScriptSinhala
	// ScriptThai covers U+0E00–U+0E7F.
	ScriptThai
	ScriptLao
	ScriptTibetan
	ScriptMyanmar
	ScriptKhmer
	ScriptMongolian
	// ScriptHan covers the CJK ideograph blocks.
	ScriptHan
	ScriptHiragana
	ScriptKatakana
	ScriptHangul
	// ScriptUnknown is returned for unassigned or unsupported code points.
	ScriptUnknown
)

var scriptNames = [...]string{
	ScriptCommon:     "Common",
	ScriptInherited:  "Inherited",
	ScriptLatin:      "Latin",
	ScriptCyrillic:   "Cyrillic",
	ScriptGreek:      "Greek",
	ScriptArabic:     "Arabic",
	ScriptHebrew:     "Hebrew",
	ScriptDevanagari: "Devanagari",
	ScriptBengali:    "Bengali",
	ScriptGurmukhi:   "Gurmukhi",
	ScriptGujarati:   "Gujarati",
	ScriptOriya:      "Oriya",
	ScriptTamil:      "Tamil",
	ScriptTelugu:     "Telugu",
	ScriptKannada:    "Kannada",
	ScriptMalayalam:  "Malayalam",
	ScriptSinhala:    "Sinhala",
	ScriptThai:       "Thai",
	ScriptLao:        "Lao",
	ScriptTibetan:    "Tibetan",
	ScriptMyanmar:    "Myanmar",
	ScriptKhmer:      "Khmer",
	ScriptMongolian:  "Mongolian",
	ScriptHan:        "Han",
	ScriptHiragana:   "Hiragana",
	ScriptKatakana:   "Katakana",
	ScriptHangul:     "Hangul",
	ScriptUnknown:    "Unknown",
}

// String returns the name of the script.
func (s Script) String() string {
	if int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return unknownStr
}

// IsRTL reports whether the script is written right-to-left.
func (s Script) IsRTL() bool {
	return s == ScriptArabic || s == ScriptHebrew
}

// IsIndic reports whether the script belongs to the Indic family.
func (s Script) IsIndic() bool {
	return s >= ScriptDevanagari && s <= ScriptSinhala
}

// IsCJK reports whether the script belongs to the East Asian family.
func (s Script) IsCJK() bool {
	return s == ScriptHan || s == ScriptHiragana || s == ScriptKatakana || s == ScriptHangul
}

// RequiresComplexShaping reports whether text in this script needs a full
// shaping engine (context-dependent forms, ligatures, mark positioning)
// rather than per-character advances.
func (s Script) RequiresComplexShaping() bool {
	switch {
	case s.IsIndic():
		return true
	case s == ScriptArabic, s == ScriptHebrew:
		return true
	case s == ScriptThai, s == ScriptLao, s == ScriptKhmer, s == ScriptMyanmar,
		s == ScriptTibetan, s == ScriptMongolian:
		return true
	default:
		return false
	}
}

// scriptRange assigns one script to a closed range of code points.
// The table below is sorted by lo and contains no overlaps, so membership
// resolves with a single binary search.
type scriptRange struct {
	lo, hi rune
	script Script
}

var scriptRanges = []scriptRange{
	{0x0080, 0x00BF, ScriptCommon}, // Latin-1 punctuation and symbols
	{0x00C0, 0x00D6, ScriptLatin},
	{0x00D7, 0x00D7, ScriptCommon}, // multiplication sign
	{0x00D8, 0x00F6, ScriptLatin},
	{0x00F7, 0x00F7, ScriptCommon}, // division sign
	{0x00F8, 0x00FF, ScriptLatin},
	{0x0100, 0x024F, ScriptLatin}, // Latin Extended-A/B
	{0x0250, 0x02AF, ScriptLatin}, // IPA Extensions
	{0x0300, 0x036F, ScriptInherited},
	{0x0370, 0x03FF, ScriptGreek},
	{0x0400, 0x04FF, ScriptCyrillic},
	{0x0500, 0x052F, ScriptCyrillic},
	{0x0590, 0x05FF, ScriptHebrew},
	{0x0600, 0x06FF, ScriptArabic},
	{0x0750, 0x077F, ScriptArabic},
	{0x08A0, 0x08FF, ScriptArabic},
	{0x0900, 0x097F, ScriptDevanagari},
	{0x0980, 0x09FF, ScriptBengali},
	{0x0A00, 0x0A7F, ScriptGurmukhi},
	{0x0A80, 0x0AFF, ScriptGujarati},
	{0x0B00, 0x0B7F, ScriptOriya},
	{0x0B80, 0x0BFF, ScriptTamil},
	{0x0C00, 0x0C7F, ScriptTelugu},
	{0x0C80, 0x0CFF, ScriptKannada},
	{0x0D00, 0x0D7F, ScriptMalayalam},
	{0x0D80, 0x0DFF, ScriptSinhala},
	{0x0E00, 0x0E7F, ScriptThai},
	{0x0E80, 0x0EFF, ScriptLao},
	{0x0F00, 0x0FFF, ScriptTibetan},
	{0x1000, 0x109F, ScriptMyanmar},
	{0x1100, 0x11FF, ScriptHangul},
	{0x1780, 0x17FF, ScriptKhmer},
	{0x1800, 0x18AF, ScriptMongolian},
	{0x19E0, 0x19FF, ScriptKhmer}, // Khmer Symbols
	{0x1AB0, 0x1AFF, ScriptInherited},
	{0x1DC0, 0x1DFF, ScriptInherited},
	{0x1E00, 0x1EFF, ScriptLatin}, // Latin Extended Additional
	{0x1F00, 0x1FFF, ScriptGreek},
	{0x2000, 0x20CF, ScriptCommon}, // General Punctuation incl. U+200B, currency
	{0x20D0, 0x20FF, ScriptInherited},
	{0x2100, 0x27BF, ScriptCommon}, // letterlike, arrows, math, symbols
	{0x2C60, 0x2C7F, ScriptLatin},
	{0x2DE0, 0x2DFF, ScriptCyrillic},
	{0x2E80, 0x2FDF, ScriptHan}, // radicals
	{0x3000, 0x303F, ScriptCommon},
	{0x3040, 0x309F, ScriptHiragana},
	{0x30A0, 0x30FF, ScriptKatakana},
	{0x3130, 0x318F, ScriptHangul},
	{0x31F0, 0x31FF, ScriptKatakana},
	{0x3400, 0x4DBF, ScriptHan},
	{0x4E00, 0x9FFF, ScriptHan},
	{0xA640, 0xA69F, ScriptCyrillic},
	{0xA720, 0xA7FF, ScriptLatin},
	{0xA960, 0xA97F, ScriptHangul},
	{0xAA60, 0xAA7F, ScriptMyanmar},
	{0xAC00, 0xD7FF, ScriptHangul},
	{0xF900, 0xFAFF, ScriptHan},
	{0xFB00, 0xFB1C, ScriptLatin}, // fi/fl ligature forms
	{0xFB1D, 0xFB4F, ScriptHebrew},
	{0xFB50, 0xFDFF, ScriptArabic},
	{0xFE20, 0xFE2F, ScriptInherited},
	{0xFE70, 0xFEFF, ScriptArabic},
	{0xFF00, 0xFF64, ScriptCommon}, // fullwidth punctuation
	{0xFF65, 0xFF9F, ScriptKatakana},
	{0xFFA0, 0xFFEF, ScriptCommon},
	{0x1B000, 0x1B0FF, ScriptHiragana},
	{0x20000, 0x2A6DF, ScriptHan},
	{0x2A700, 0x2B81F, ScriptHan},
}

// ClassifyRune returns the Unicode script of a single code point. It is a
// total function: unassigned and unsupported code points map to
// ScriptUnknown. Results outside the ASCII fast path are memoized because
// classification runs once per code point per layout pass.
func ClassifyRune(r rune) Script {
	if r < 0x0080 {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return ScriptLatin
		}
		return ScriptCommon
	}
	if s, ok := classifyMemo.get(r); ok {
		return s
	}
	s := classifySlow(r)
	classifyMemo.set(r, s)
	return s
}

func classifySlow(r rune) Script {
	i := sort.Search(len(scriptRanges), func(i int) bool {
		return scriptRanges[i].hi >= r
	})
	if i < len(scriptRanges) && r >= scriptRanges[i].lo {
		return scriptRanges[i].script
	}
	return ScriptUnknown
}
