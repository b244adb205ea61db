package typeset

// A Paragraph is one block of translated text to lay out. Coordinates
// follow page conventions: the origin is the baseline start of the first
// line and y decreases toward the bottom of the page.
type Paragraph struct {
	// Text is the translated text. It may contain formula placeholders of
	// the form {v12} and may already carry boundary markers.
	Text string

	// Lang is the target language as a BCP 47 code, for example "th" or
	// "zh-cn". It selects the tokenizer, line height, and font scale.
	Lang string

	// FontSize is the nominal size in text units, before any per-language
	// scale is applied.
	FontSize float64

	// X, Y anchor the first baseline.
	X, Y float64

	// MaxWidth bounds line advances. Zero or negative disables breaking.
	MaxWidth float64

	// Height is the vertical space available below Y. When positive and
	// the laid-out text would not fit, the line height shrinks stepwise
	// toward its floor before the text is allowed to overflow.
	Height float64

	// PlaceholderWidths maps placeholder indices to their advance widths.
	// Placeholders without an entry get an estimated width.
	PlaceholderWidths map[int]float64
}

// A PlacedGlyph is one glyph at an absolute page position.
type PlacedGlyph struct {
	// GID is the glyph index in the layout font. It is zero for glyphs
	// from degraded runs and for placeholder stand-ins.
	GID uint32
	// X, Y is the glyph origin with shaping offsets applied.
	X, Y float64
	// XAdvance is the pen advance that followed this glyph.
	XAdvance float64
	// Placeholder is the placeholder index plus one, or zero for ordinary
	// glyphs. Renderers substitute the original formula at this position.
	Placeholder int
}

// A Line is one laid-out line of a paragraph.
type Line struct {
	// Glyphs in visual order, positioned absolutely.
	Glyphs []PlacedGlyph
	// Text is the stripped text content of the line, without the
	// swallowed break separator.
	Text string
	// X is the pen start and Baseline the y of the line's baseline.
	X, Baseline float64
	// Advance is the total pen movement of the line.
	Advance float64
}

// A Layout is the result of laying out one paragraph.
type Layout struct {
	Lines []Line
	// FontSize is the effective size after the per-language scale.
	FontSize float64
	// LineHeight is the effective multiplier after auto shrink.
	LineHeight float64
	// Degraded is true when any run fell back to estimated advances.
	Degraded bool
}

// Height returns the vertical extent from the first baseline to the last.
func (l *Layout) Height() float64 {
	if len(l.Lines) == 0 {
		return 0
	}
	return float64(len(l.Lines)-1) * l.FontSize * l.LineHeight
}
