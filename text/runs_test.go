package text

import "testing"

func TestBuildRunsSplitsByScript(t *testing.T) {
	b := NewRunBuilder()
	runs := b.Build("abcไก่", nil)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(runs), runs)
	}
	if runs[0].Text != "abc" || runs[0].Script != ScriptLatin {
		t.Errorf("run 0 = %+v, want Latin abc", runs[0])
	}
	if runs[1].Text != "ไก่" || runs[1].Script != ScriptThai {
		t.Errorf("run 1 = %+v, want Thai", runs[1])
	}
	if runs[0].Start != 0 || runs[0].End != 3 || runs[1].Start != 3 || runs[1].End != 6 {
		t.Errorf("rune offsets wrong: %+v", runs)
	}
}

func TestBuildRunsMarkersDoNotSplit(t *testing.T) {
	b := NewRunBuilder()
	hinted := "ไก่" + string(Marker) + "ที่"
	runs := b.Build(hinted, nil)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %+v", len(runs), runs)
	}
	r := runs[0]
	if r.Script != ScriptThai {
		t.Errorf("script = %v, want Thai", r.Script)
	}
	if got := r.Stripped(); got != "ไก่ที่" {
		t.Errorf("Stripped() = %q", got)
	}
	offs := r.BreakOffsets()
	if len(offs) != 1 || offs[0] != 3 {
		t.Errorf("BreakOffsets() = %v, want [3]", offs)
	}
}

func TestBuildRunsPlaceholders(t *testing.T) {
	b := NewRunBuilder()
	runs := b.Build("x {v1} y {v23}", map[int]float64{1: 40})
	if len(runs) != 4 {
		t.Fatalf("got %d runs, want 4: %+v", len(runs), runs)
	}
	p1 := runs[1]
	if p1.Kind != RunPlaceholder || p1.Index != 1 || p1.FixedAdvance != 40 {
		t.Errorf("placeholder 1 = %+v", p1)
	}
	if p1.Start != 2 || p1.End != 6 {
		t.Errorf("placeholder 1 offsets = %d..%d, want 2..6", p1.Start, p1.End)
	}
	p23 := runs[3]
	if p23.Kind != RunPlaceholder || p23.Index != 23 {
		t.Errorf("placeholder 23 = %+v", p23)
	}
	if p23.FixedAdvance >= 0 {
		t.Errorf("placeholder without width should have negative FixedAdvance, got %v", p23.FixedAdvance)
	}
}

func TestBuildRunsPlaceholderOnly(t *testing.T) {
	b := NewRunBuilder()
	runs := b.Build("{v7}", nil)
	if len(runs) != 1 || runs[0].Kind != RunPlaceholder || runs[0].Index != 7 {
		t.Fatalf("runs = %+v", runs)
	}
}

func TestBuildRunsBidi(t *testing.T) {
	b := NewRunBuilder()
	runs := b.Build("abc شبكة xyz", nil)
	var rtl *Run
	for i := range runs {
		if runs[i].Direction == DirectionRTL {
			rtl = &runs[i]
			break
		}
	}
	if rtl == nil {
		t.Fatalf("no RTL run in %+v", runs)
	}
	if rtl.Script != ScriptArabic {
		t.Errorf("RTL run script = %v, want Arabic", rtl.Script)
	}
	if rtl.Text != "شبكة" {
		t.Errorf("RTL run text = %q", rtl.Text)
	}
	if runs[0].Direction != DirectionLTR {
		t.Errorf("Latin run direction = %v, want LTR", runs[0].Direction)
	}
}

func TestBuildRunsEmpty(t *testing.T) {
	if runs := NewRunBuilder().Build("", nil); runs != nil {
		t.Errorf("Build(\"\") = %+v, want nil", runs)
	}
}

func TestBuildRunsCombiningMarksStayWithBase(t *testing.T) {
	b := NewRunBuilder()
	// e with a combining acute must not split off into its own run.
	runs := b.Build("abécd", nil)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %+v", len(runs), runs)
	}
	if runs[0].Script != ScriptLatin {
		t.Errorf("script = %v, want Latin", runs[0].Script)
	}
}
