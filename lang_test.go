package typeset

import "testing"

func TestLineHeight(t *testing.T) {
	c := DefaultConfig()
	tests := []struct {
		lang string
		want float64
	}{
		{"th", 1.5},
		{"TH", 1.5},
		{"zh", 1.4},
		{"zh-cn", 1.4},
		{"zh-hk", 1.4}, // falls back to the primary subtag
		{"ja", 1.1},
		{"ko", 1.2},
		{"ar", 1.0},
		{"ru", 0.8},
		{"ta", 0.8},
		{"fr", defaultLineHeight},
		{"", defaultLineHeight},
	}
	for _, tt := range tests {
		if got := c.LineHeight(tt.lang); got != tt.want {
			t.Errorf("LineHeight(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}

func TestLineHeightOverride(t *testing.T) {
	c := DefaultConfig()
	c.LineHeights = map[string]float64{"th": 2.0, "fr": 1.3}
	if got := c.LineHeight("th"); got != 2.0 {
		t.Errorf("LineHeight(th) = %v, want override 2.0", got)
	}
	if got := c.LineHeight("fr"); got != 1.3 {
		t.Errorf("LineHeight(fr) = %v, want override 1.3", got)
	}
	if got := c.LineHeight("ja"); got != 1.1 {
		t.Errorf("LineHeight(ja) = %v, want built-in 1.1", got)
	}
}

func TestFontScale(t *testing.T) {
	c := DefaultConfig()
	if got := c.FontScale("th"); got != 0.7 {
		t.Errorf("FontScale(th) = %v, want 0.7", got)
	}
	if got := c.FontScale("en"); got != 1.0 {
		t.Errorf("FontScale(en) = %v, want 1.0", got)
	}
	c.FontScales = map[string]float64{"th": 0.9}
	if got := c.FontScale("th"); got != 0.9 {
		t.Errorf("FontScale(th) = %v, want override 0.9", got)
	}
}
