// Package text implements the text-processing core used when re-flowing
// translated paragraphs into their original page geometry: script
// classification, word-boundary hinting for scripts without inter-word
// spaces, run building, and complex-script glyph shaping.
//
// The pieces mirror the order in which a paragraph is processed:
//
//	translated text → Hinter → RunBuilder → Shaper → positioned glyphs
//
// Line composition consumes the positioned glyphs and lives in the root
// typeset package; this package stops at glyphs.
//
// Complex-script shaping is delegated to go-text/typesetting's HarfBuzz
// implementation. When shaping is disabled, no font is configured, or the
// engine rejects a run, shaping degrades to a per-character advance model
// (see FallbackShaper) instead of failing the paragraph.
package text
