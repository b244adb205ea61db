package text

import "github.com/mattn/go-runewidth"

// FallbackAdvanceRatio is the per-cell advance used when a run cannot be
// shaped, as a fraction of the font size. A character occupying one
// terminal cell advances by this fraction of the size, a wide character by
// twice that, and a zero-width combining mark by nothing.
const FallbackAdvanceRatio = 0.6

// FallbackShaper produces one glyph per rune with estimated advances. It
// never fails, so there is always a usable shaping result to lay out, just
// without ligatures, reordering, or mark positioning.
type FallbackShaper struct{}

// Shape shapes the run's stripped text at the given size, recording reason
// as the cause of degradation.
func (FallbackShaper) Shape(run Run, size float64, reason DegradeReason) *ShapedRun {
	runes := []rune(run.Stripped())
	sr := &ShapedRun{
		Run:      run,
		Glyphs:   make([]Glyph, 0, len(runes)),
		Degraded: reason,
	}
	for i, r := range runes {
		adv := float64(runewidth.RuneWidth(r)) * FallbackAdvanceRatio * size
		sr.Glyphs = append(sr.Glyphs, Glyph{
			Cluster:  i,
			XAdvance: adv,
		})
		sr.Advance += adv
	}
	return sr
}
