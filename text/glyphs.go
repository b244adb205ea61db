package text

import "sort"

// A Glyph is one positioned glyph produced by shaping. Offsets displace the
// glyph from the pen position without consuming advance, which is how marks
// attach to their base. All distances are in text units at the shaping size.
type Glyph struct {
	// GID is the glyph index in the font, not a code point.
	GID uint32
	// Cluster is the rune offset into the run's stripped text of the first
	// rune this glyph belongs to. Several glyphs may share a cluster, and a
	// cluster may cover several runes.
	Cluster int
	// XAdvance moves the pen after the glyph is placed. Layout is
	// horizontal, so there is no vertical advance.
	XAdvance float64
	// XOffset and YOffset displace the glyph visually.
	XOffset float64
	YOffset float64
}

// DegradeReason explains why a run was shaped with the per-rune fallback
// instead of the full shaping engine.
type DegradeReason uint8

const (
	// DegradeNone means full shaping succeeded.
	DegradeNone DegradeReason = iota
	// DegradeDisabled means shaping was switched off in configuration.
	DegradeDisabled
	// DegradeNoFontPath means no font file was configured.
	DegradeNoFontPath
	// DegradeFontLoad means the configured font failed to parse.
	DegradeFontLoad
	// DegradeEngine means the shaping engine returned an error or panicked.
	DegradeEngine
	// DegradeBadClusters means the engine produced cluster values that were
	// out of range or non-monotonic, so its output cannot be trusted.
	DegradeBadClusters
)

func (d DegradeReason) String() string {
	switch d {
	case DegradeNone:
		return "none"
	case DegradeDisabled:
		return "shaping-disabled"
	case DegradeNoFontPath:
		return "no-font-path"
	case DegradeFontLoad:
		return "font-load-failed"
	case DegradeEngine:
		return "engine-error"
	case DegradeBadClusters:
		return "bad-clusters"
	}
	return unknownStr
}

// A ShapedRun is the result of shaping one run: its glyphs in visual order
// plus the cluster structure needed for line breaking.
type ShapedRun struct {
	Run    Run
	Glyphs []Glyph
	// Advance is the sum of glyph X advances.
	Advance float64
	// Degraded is DegradeNone when the engine shaped the run, otherwise the
	// reason the fallback was used.
	Degraded DegradeReason
}

// Clusters returns the distinct cluster start offsets of the run in
// ascending rune order, always beginning with 0 for a non-empty run. Line
// breaks inside a run may only occur at these offsets.
func (sr *ShapedRun) Clusters() []int {
	if len(sr.Glyphs) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(sr.Glyphs))
	var clusters []int
	for _, g := range sr.Glyphs {
		if !seen[g.Cluster] {
			seen[g.Cluster] = true
			clusters = append(clusters, g.Cluster)
		}
	}
	sort.Ints(clusters)
	return clusters
}

// CoversEntireRun reports whether the glyphs are true engine output for the
// whole run. Degraded runs carry per-rune estimates instead of real glyphs.
func (sr *ShapedRun) CoversEntireRun() bool {
	return sr.Degraded == DegradeNone
}

// ClusterMap returns, per cluster start offset, the indices into Glyphs that
// belong to that cluster, preserving visual order within each cluster. It
// captures both many-to-one fan-in (ligatures) and one-to-many fan-out
// (split marks).
func (sr *ShapedRun) ClusterMap() map[int][]int {
	if len(sr.Glyphs) == 0 {
		return nil
	}
	m := make(map[int][]int, len(sr.Glyphs))
	for i, g := range sr.Glyphs {
		m[g.Cluster] = append(m[g.Cluster], i)
	}
	return m
}

// ClusterAdvance returns the summed X advance of all glyphs whose cluster
// lies in [start, end).
func (sr *ShapedRun) ClusterAdvance(start, end int) float64 {
	var total float64
	for _, g := range sr.Glyphs {
		if g.Cluster >= start && g.Cluster < end {
			total += g.XAdvance
		}
	}
	return total
}
