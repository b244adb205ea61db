package typeset

import (
	"strings"
	"unicode"

	"github.com/mozeal/PDFMathTranslate/text"
)

// breakUnit is the smallest span the compositor will place as a whole: one
// shaper cluster, widened to a full grapheme cluster, or one placeholder.
// Lines are sequences of units; breaks happen only between units.
type breakUnit struct {
	run        int // index into the shaped run slice
	start, end int // cluster offsets in the run's stripped runes
	text       string
	advance    float64
	atomic     bool // placeholder, no break inside and width is fixed
	space      bool // all runes are whitespace
	marker     bool // a boundary marker sat immediately before this unit
	cjkEdge    bool // starts or is preceded by an ideograph
}

// composedLine is one line of units before vertical placement.
type composedLine struct {
	units   []breakUnit
	advance float64
}

func (l *composedLine) text() string {
	var b strings.Builder
	for _, u := range l.units {
		b.WriteString(u.text)
	}
	return b.String()
}

// composer holds the horizontal breaking parameters for one paragraph.
type composer struct {
	maxWidth float64
	slack    float64 // overflow tolerance before a break is forced
	minUsage float64 // fraction of maxWidth a break must fill to qualify
	wordWrap bool    // false breaks at any unit boundary
}

// compose splits the shaped runs into lines. maxWidth <= 0 yields a single
// line containing everything.
func (c *composer) compose(shaped []*text.ShapedRun) []composedLine {
	units := buildUnits(shaped)
	if len(units) == 0 {
		return nil
	}
	if c.maxWidth <= 0 {
		line := composedLine{units: units}
		for _, u := range units {
			line.advance += u.advance
		}
		return []composedLine{line}
	}

	var lines []composedLine
	start := 0
	for start < len(units) {
		end := c.lineEnd(units, start)
		lineUnits := units[start:end]
		// The space separating the last word of the line from the first
		// word of the next is swallowed by the break. Only one: further
		// trailing spaces are content.
		if n := len(lineUnits); n > 0 && end < len(units) && lineUnits[n-1].space {
			lineUnits = lineUnits[:n-1]
		}
		line := composedLine{units: lineUnits}
		for _, u := range line.units {
			line.advance += u.advance
		}
		if len(line.units) > 0 {
			lines = append(lines, line)
		}
		start = end
	}
	return lines
}

// lineEnd returns the unit index ending the line that starts at start,
// using greedy fill with a minimum usage threshold. Space units never
// trigger overflow themselves: a space at the line edge hangs into the
// margin and is swallowed by the following break.
func (c *composer) lineEnd(units []breakUnit, start int) int {
	width := 0.0
	lastFit := -1 // last break candidate filling at least minUsage
	lastAny := -1 // last break candidate of any width
	for i := start; i < len(units); i++ {
		u := units[i]
		if i > start && c.canBreakBefore(units, i) {
			lastAny = i
			if lineWidthAt(units, start, i) >= c.minUsage*c.maxWidth {
				lastFit = i
			}
		}
		if !u.space && width+u.advance > c.maxWidth+c.slack && i > start {
			switch {
			case lastFit > start:
				return lastFit
			case lastAny > start:
				return lastAny
			default:
				// No word boundary on the line: break before the unit that
				// overflowed. Units never split, so a single oversized unit
				// still overflows its own line.
				return i
			}
		}
		width += u.advance
	}
	return len(units)
}

// lineWidthAt measures the line from start up to a break before i,
// excluding the trailing separator space that the break would swallow.
func lineWidthAt(units []breakUnit, start, i int) float64 {
	end := i
	if end > start && units[end-1].space {
		end--
	}
	var w float64
	for j := start; j < end; j++ {
		w += units[j].advance
	}
	return w
}

// canBreakBefore reports whether a line may end just before unit i.
func (c *composer) canBreakBefore(units []breakUnit, i int) bool {
	if !c.wordWrap {
		return true
	}
	u := units[i]
	prev := units[i-1]
	switch {
	case u.marker:
		return true
	case prev.space:
		return true
	case u.atomic || prev.atomic:
		return true
	case u.cjkEdge:
		return true
	case endsWithHyphen(prev.text):
		return true
	}
	return false
}

func endsWithHyphen(s string) bool {
	r, ok := lastRune(s)
	if !ok {
		return false
	}
	switch r {
	case '-', '‐', '‑', '–', '—':
		return true
	}
	return false
}

func lastRune(s string) (rune, bool) {
	var r rune
	found := false
	for _, c := range s {
		r = c
		found = true
	}
	return r, found
}

// buildUnits flattens shaped runs into break units. Cluster starts that
// fall inside a grapheme cluster are merged into the preceding unit, which
// matters for degraded runs whose clusters are single runes.
func buildUnits(shaped []*text.ShapedRun) []breakUnit {
	var units []breakUnit
	for runIdx, sr := range shaped {
		if sr.Run.Kind == text.RunPlaceholder {
			units = append(units, breakUnit{
				run:     runIdx,
				start:   0,
				end:     len([]rune(sr.Run.Text)),
				text:    sr.Run.Text,
				advance: sr.Advance,
				atomic:  true,
			})
			continue
		}
		units = append(units, runUnits(runIdx, sr)...)
	}
	return units
}

func runUnits(runIdx int, sr *text.ShapedRun) []breakUnit {
	stripped := []rune(sr.Run.Stripped())
	if len(stripped) == 0 {
		return nil
	}
	clusters := sr.Clusters()
	clusters = alignToGraphemes(clusters, string(stripped))

	markers := make(map[int]bool, len(sr.Run.BreakOffsets()))
	for _, off := range sr.Run.BreakOffsets() {
		markers[off] = true
	}

	units := make([]breakUnit, 0, len(clusters))
	for k, start := range clusters {
		end := len(stripped)
		if k+1 < len(clusters) {
			end = clusters[k+1]
		}
		u := breakUnit{
			run:     runIdx,
			start:   start,
			end:     end,
			text:    string(stripped[start:end]),
			advance: sr.ClusterAdvance(start, end),
			space:   allSpace(stripped[start:end]),
			marker:  markers[start],
			cjkEdge: text.ClassifyRune(stripped[start]).IsCJK() ||
				(start > 0 && text.ClassifyRune(stripped[start-1]).IsCJK()),
		}
		units = append(units, u)
	}
	return units
}

// alignToGraphemes drops cluster starts that would split a grapheme
// cluster. Shaper clusters normally respect graphemes already; degraded
// runs are per rune and need the filter.
func alignToGraphemes(clusters []int, stripped string) []int {
	boundaries := text.GraphemeBoundaries(stripped)
	allowed := make(map[int]bool, len(boundaries)+1)
	allowed[0] = true
	for _, b := range boundaries {
		allowed[b] = true
	}
	out := clusters[:0]
	for _, c := range clusters {
		if allowed[c] {
			out = append(out, c)
		}
	}
	return out
}

func allSpace(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(runes) > 0
}
