package typeset

import "strings"

// defaultLineHeights gives the line height multiplier per target language.
// Scripts with tall mark stacks (Thai) need more leading than dense CJK
// text; Cyrillic translations tend to run long and are packed tighter.
var defaultLineHeights = map[string]float64{
	"th":    1.5,
	"zh":    1.4,
	"zh-cn": 1.4,
	"zh-tw": 1.4,
	"ko":    1.2,
	"en":    1.2,
	"ja":    1.1,
	"ar":    1.0,
	"ru":    0.8,
	"uk":    0.8,
	"ta":    0.8,
}

// defaultLineHeight applies to languages without an entry above.
const defaultLineHeight = 1.1

// defaultFontScales shrinks the font for languages whose glyphs render
// visually larger than Latin at the same nominal size.
var defaultFontScales = map[string]float64{
	"th": 0.7,
}

// LineHeight returns the line height multiplier for a language code,
// honoring config overrides. Lookup tries the full lowercase code first,
// then its primary subtag.
func (c *Config) LineHeight(lang string) float64 {
	if v, ok := langLookup(c.LineHeights, lang); ok {
		return v
	}
	if v, ok := langLookup(defaultLineHeights, lang); ok {
		return v
	}
	return defaultLineHeight
}

// FontScale returns the font size multiplier for a language code, honoring
// config overrides.
func (c *Config) FontScale(lang string) float64 {
	if v, ok := langLookup(c.FontScales, lang); ok {
		return v
	}
	if v, ok := langLookup(defaultFontScales, lang); ok {
		return v
	}
	return 1.0
}

func langLookup(m map[string]float64, lang string) (float64, bool) {
	if len(m) == 0 || lang == "" {
		return 0, false
	}
	key := strings.ToLower(lang)
	if v, ok := m[key]; ok {
		return v, true
	}
	if base, _, ok := strings.Cut(key, "-"); ok {
		if v, ok := m[base]; ok {
			return v, true
		}
	}
	return 0, false
}
