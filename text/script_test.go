package text

import "testing"

func TestClassifyRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Script
	}{
		{"ascii letter", 'a', ScriptLatin},
		{"ascii upper", 'Z', ScriptLatin},
		{"ascii digit", '7', ScriptCommon},
		{"ascii space", ' ', ScriptCommon},
		{"latin extended", 'é', ScriptLatin},
		{"cyrillic", 'Ж', ScriptCyrillic},
		{"greek", 'Ω', ScriptGreek},
		{"arabic", 'ب', ScriptArabic},
		{"hebrew", 'א', ScriptHebrew},
		{"devanagari", 'क', ScriptDevanagari},
		{"tamil", 'த', ScriptTamil},
		{"thai", 'ไ', ScriptThai},
		{"thai tone mark", '่', ScriptThai},
		{"lao", 'ກ', ScriptLao},
		{"khmer", 'ក', ScriptKhmer},
		{"myanmar", 'က', ScriptMyanmar},
		{"han", '中', ScriptHan},
		{"hiragana", 'ひ', ScriptHiragana},
		{"katakana", 'カ', ScriptKatakana},
		{"hangul", '한', ScriptHangul},
		{"no-break space", ' ', ScriptCommon},
		{"guillemet", '«', ScriptCommon},
		{"degree sign", '°', ScriptCommon},
		{"section sign", '§', ScriptCommon},
		{"multiplication sign", '×', ScriptCommon},
		{"division sign", '÷', ScriptCommon},
		{"combining acute", '́', ScriptInherited},
		{"boundary marker", Marker, ScriptCommon},
		{"cjk punctuation", '、', ScriptCommon},
		{"unassigned plane", '\U000E0000', ScriptUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyRune(tt.r); got != tt.want {
				t.Errorf("ClassifyRune(%q) = %v, want %v", tt.r, got, tt.want)
			}
			// Second lookup hits the memo and must agree.
			if got := ClassifyRune(tt.r); got != tt.want {
				t.Errorf("memoized ClassifyRune(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRequiresComplexShaping(t *testing.T) {
	complex := []Script{
		ScriptArabic, ScriptHebrew, ScriptDevanagari, ScriptBengali,
		ScriptTamil, ScriptSinhala, ScriptThai, ScriptLao, ScriptKhmer,
		ScriptMyanmar, ScriptTibetan, ScriptMongolian,
	}
	for _, s := range complex {
		if !s.RequiresComplexShaping() {
			t.Errorf("%v.RequiresComplexShaping() = false, want true", s)
		}
	}
	simple := []Script{ScriptLatin, ScriptCyrillic, ScriptGreek, ScriptHan, ScriptHangul, ScriptCommon}
	for _, s := range simple {
		if s.RequiresComplexShaping() {
			t.Errorf("%v.RequiresComplexShaping() = true, want false", s)
		}
	}
}

func TestScriptPredicates(t *testing.T) {
	if !ScriptArabic.IsRTL() || !ScriptHebrew.IsRTL() {
		t.Error("Arabic and Hebrew must be RTL")
	}
	if ScriptLatin.IsRTL() {
		t.Error("Latin must not be RTL")
	}
	if !ScriptDevanagari.IsIndic() || !ScriptSinhala.IsIndic() {
		t.Error("Devanagari and Sinhala must be Indic")
	}
	if ScriptThai.IsIndic() {
		t.Error("Thai must not be Indic")
	}
	if !ScriptHan.IsCJK() || !ScriptHangul.IsCJK() {
		t.Error("Han and Hangul must be CJK")
	}
}

func TestScriptString(t *testing.T) {
	if got := ScriptThai.String(); got != "Thai" {
		t.Errorf("ScriptThai.String() = %q", got)
	}
	if got := Script(200).String(); got != unknownStr {
		t.Errorf("out of range String() = %q", got)
	}
}
