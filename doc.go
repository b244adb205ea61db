// Package typeset lays out translated paragraph text for paginated
// documents. It breaks lines at word boundaries, including in scripts that
// write words without spaces, and positions glyphs through a shaping
// engine so complex scripts keep their ligatures, reordering, and mark
// placement.
//
// The pipeline for one paragraph is:
//
//	text → boundary hinting → run building → shaping → line composition
//
// Boundary hinting inserts zero-width markers between words of spaceless
// scripts using a dictionary tokenizer. Run building splits the text by
// script, direction, and formula placeholders. Shaping turns each run into
// positioned glyphs, falling back to estimated advances when a font or
// engine is unavailable. Line composition fills lines greedily, breaking
// at markers, spaces, and ideograph boundaries, and then assigns baselines
// using per-language line heights.
//
// The text and text/cache sub-packages hold the script classifier,
// tokenizers, shaping adapter, and shaping cache; this package ties them
// together behind Engine.
package typeset
