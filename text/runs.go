package text

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// RunKind distinguishes shapeable text from protected placeholder tokens.
type RunKind uint8

const (
	// RunText is ordinary text that goes through the shaper.
	RunText RunKind = iota
	// RunPlaceholder is a formula placeholder token. It is never shaped,
	// never split across lines, and advances by a fixed width.
	RunPlaceholder
)

// placeholderPattern matches formula placeholder tokens of the form {v12}.
// Translated text carries these in place of math content that must survive
// layout byte for byte.
var placeholderPattern = regexp.MustCompile(`\{v(\d+)\}`)

// A Run is a maximal span of paragraph text sharing one script, one bidi
// level, and one kind. Start and End are rune offsets into the hinted
// paragraph text; Text is the corresponding slice, boundary markers
// included.
type Run struct {
	Text      string
	Start     int
	End       int
	Script    Script
	Direction Direction
	Level     int
	Kind      RunKind

	// Index is the placeholder number for RunPlaceholder runs.
	Index int
	// FixedAdvance is the placeholder width in text units. Negative means
	// the caller supplied no width and the layout engine must estimate one.
	FixedAdvance float64
}

// RuneLen returns the length of the run in runes, markers included.
func (r *Run) RuneLen() int {
	return r.End - r.Start
}

// Stripped returns the run text with boundary markers removed. This is the
// string handed to the shaper.
func (r *Run) Stripped() string {
	return StripMarkers(r.Text)
}

// BreakOffsets returns the positions of boundary markers as offsets into
// the stripped rune sequence: offset k means a line may break before the
// k-th stripped rune. Offsets at the very start of the run are dropped
// since breaking there is a no-op.
func (r *Run) BreakOffsets() []int {
	if !strings.ContainsRune(r.Text, Marker) {
		return nil
	}
	var offsets []int
	stripped := 0
	for _, c := range r.Text {
		if c == Marker {
			if stripped > 0 {
				offsets = append(offsets, stripped)
			}
			continue
		}
		stripped++
	}
	return offsets
}

// A RunBuilder splits hinted paragraph text into shapeable runs. Splitting
// happens at placeholder boundaries, script changes, and bidi level changes.
// Boundary markers classify as Common and inherit the surrounding script, so
// they never split a run on their own.
type RunBuilder struct {
	BaseDirection Direction
}

// NewRunBuilder returns a RunBuilder with a left-to-right base direction.
func NewRunBuilder() *RunBuilder {
	return &RunBuilder{BaseDirection: DirectionLTR}
}

// Build splits s into runs. widths supplies advances for placeholder tokens
// by index; a placeholder without an entry gets FixedAdvance -1.
func (b *RunBuilder) Build(s string, widths map[int]float64) []Run {
	if s == "" {
		return nil
	}
	var runs []Run
	byteToRune := runeOffsetIndex(s)
	prev := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(s, -1) {
		start, end := byteToRune[m[0]], byteToRune[m[1]]
		runs = append(runs, b.buildTextRuns(s[prevByte(s, prev):m[0]], prev)...)
		idx, _ := strconv.Atoi(s[m[2]:m[3]])
		adv := -1.0
		if w, ok := widths[idx]; ok {
			adv = w
		}
		runs = append(runs, Run{
			Text:         s[m[0]:m[1]],
			Start:        start,
			End:          end,
			Script:       ScriptCommon,
			Direction:    DirectionLTR,
			Kind:         RunPlaceholder,
			Index:        idx,
			FixedAdvance: adv,
		})
		prev = end
	}
	runs = append(runs, b.buildTextRuns(s[prevByte(s, prev):], prev)...)
	return runs
}

// runeOffsetIndex maps each byte offset in s (plus len(s)) to its rune
// offset, for translating regexp match positions.
func runeOffsetIndex(s string) map[int]int {
	idx := make(map[int]int, len(s)+1)
	n := 0
	for i := range s {
		idx[i] = n
		n++
	}
	idx[len(s)] = n
	return idx
}

// prevByte returns the byte offset of the runeOffset-th rune in s.
func prevByte(s string, runeOffset int) int {
	n := 0
	for i := range s {
		if n == runeOffset {
			return i
		}
		n++
	}
	return len(s)
}

// buildTextRuns segments one placeholder-free span. startRune is the span's
// rune offset within the full paragraph text.
func (b *RunBuilder) buildTextRuns(s string, startRune int) []Run {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	levels := b.bidiLevels(s, len(runes))
	scripts := make([]Script, len(runes))
	for i, r := range runes {
		scripts[i] = ClassifyRune(r)
	}
	scripts = resolveNeutralScripts(scripts)

	var runs []Run
	runStart := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && levels[i] == levels[runStart] && scripts[i] == scripts[runStart] {
			continue
		}
		dir := DirectionLTR
		if levels[runStart]%2 == 1 {
			dir = DirectionRTL
		}
		runs = append(runs, Run{
			Text:      string(runes[runStart:i]),
			Start:     startRune + runStart,
			End:       startRune + i,
			Script:    scripts[runStart],
			Direction: dir,
			Level:     levels[runStart],
			Kind:      RunText,
		})
		runStart = i
	}
	return runs
}

// bidiLevels computes one embedding level per rune using the Unicode bidi
// algorithm. On failure all runes fall back to the base direction's level.
func (b *RunBuilder) bidiLevels(s string, n int) []int {
	levels := make([]int, n)
	base := bidi.Neutral
	if b.BaseDirection == DirectionRTL {
		base = bidi.RightToLeft
		for i := range levels {
			levels[i] = 1
		}
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(base)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}
	// run.Pos returns rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < n; j++ {
			levels[j] = level
		}
	}
	return levels
}

// resolveNeutralScripts replaces Inherited and Common classifications with
// the script of surrounding strong characters, so combining marks and
// punctuation shape together with their neighbors.
func resolveNeutralScripts(scripts []Script) []Script {
	resolved := make([]Script, len(scripts))
	copy(resolved, scripts)

	last := ScriptCommon
	for i := range resolved {
		if resolved[i] == ScriptInherited {
			resolved[i] = last
		} else if resolved[i] != ScriptCommon {
			last = resolved[i]
		}
	}

	last = ScriptCommon
	for i := range resolved {
		if resolved[i] != ScriptCommon {
			last = resolved[i]
			continue
		}
		resolved[i] = resolveCommon(last, nextStrongScript(resolved, i+1))
	}
	return resolved
}

func nextStrongScript(scripts []Script, start int) Script {
	for j := start; j < len(scripts); j++ {
		if scripts[j] != ScriptCommon {
			return scripts[j]
		}
	}
	return ScriptCommon
}

func resolveCommon(prev, next Script) Script {
	switch {
	case prev != ScriptCommon:
		return prev
	case next != ScriptCommon:
		return next
	default:
		return ScriptCommon
	}
}
