package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// HarfBuzzShaper shapes runs with go-text/typesetting's HarfBuzz
// implementation. It is safe for concurrent use: the underlying
// shaping.HarfbuzzShaper has mutable buffer state and is pooled, and each
// Shape call wraps the shared read-only *font.Font in its own font.Face.
//
// Shaping never fails outward. Any engine error, panic, or implausible
// cluster output falls back to per-rune estimated advances with the reason
// recorded on the result.
type HarfBuzzShaper struct {
	pool     sync.Pool
	fallback FallbackShaper
}

// NewHarfBuzzShaper returns a ready-to-use shaper.
func NewHarfBuzzShaper() *HarfBuzzShaper {
	return &HarfBuzzShaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes the run's stripped text with fnt at the given size. lang is
// a BCP 47 primary subtag passed to the engine for language-specific forms;
// empty means "en". Cluster values in the result index runes of the
// stripped text.
func (s *HarfBuzzShaper) Shape(run Run, fnt *font.Font, size float64, lang string) *ShapedRun {
	runes := []rune(run.Stripped())
	if len(runes) == 0 {
		return &ShapedRun{Run: run}
	}
	if fnt == nil {
		return s.fallback.Shape(run, size, DegradeNoFontPath)
	}
	if lang == "" {
		lang = "en"
	}

	glyphs, ok := s.shapeRunes(runes, run.Direction, fnt, size, lang)
	if !ok {
		return s.fallback.Shape(run, size, DegradeEngine)
	}
	if !clustersPlausible(glyphs, len(runes), run.Direction) {
		return s.fallback.Shape(run, size, DegradeBadClusters)
	}

	sr := &ShapedRun{Run: run, Glyphs: glyphs}
	for _, g := range glyphs {
		sr.Advance += g.XAdvance
	}
	return sr
}

// shapeRunes drives the engine. The engine is third-party code fed with
// arbitrary document text, so a panic here is converted into a degraded
// result rather than taking down the layout pass.
func (s *HarfBuzzShaper) shapeRunes(runes []rune, dir Direction, fnt *font.Font, size float64, lang string) (glyphs []Glyph, ok bool) {
	defer func() {
		if recover() != nil {
			glyphs, ok = nil, false
		}
	}()

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		// font.Face is not safe for concurrent use, so each call wraps the
		// shared *font.Font in a fresh one.
		Face:     font.NewFace(fnt),
		Size:     floatToFixed(size),
		Script:   detectEngineScript(runes),
		Language: language.NewLanguage(lang),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs), true
}

// convertGlyphs translates engine glyphs into the package glyph model.
// Offsets stay separate from advances so the line compositor can place
// glyphs from a running pen position.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		out[i] = Glyph{
			GID:      uint32(g.GlyphID),
			Cluster:  g.TextIndex(),
			XAdvance: fixedToFloat(g.Advance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
	}
	return out
}

// clustersPlausible checks the engine's cluster values before they drive
// line breaking: every cluster must index a rune of the input, and clusters
// must be monotonic in visual order, non-decreasing for LTR and
// non-increasing for RTL.
func clustersPlausible(glyphs []Glyph, runeLen int, dir Direction) bool {
	prev := -1
	if dir == DirectionRTL {
		prev = runeLen
	}
	for _, g := range glyphs {
		if g.Cluster < 0 || g.Cluster >= runeLen {
			return false
		}
		if dir == DirectionRTL {
			if g.Cluster > prev {
				return false
			}
		} else if g.Cluster < prev {
			return false
		}
		prev = g.Cluster
	}
	return true
}

func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectEngineScript returns the engine script of the first non-space rune.
// Runs are already split by script, so the first strong rune is
// representative.
func detectEngineScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a font size to 26.6 fixed point, 64 units per unit.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
