package typeset

import (
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/mozeal/PDFMathTranslate/text"
	"github.com/mozeal/PDFMathTranslate/text/cache"
)

// lineHeightStep and lineHeightFloor bound the automatic line height
// shrink applied when a paragraph does not fit its vertical space.
const (
	lineHeightStep  = 0.05
	lineHeightFloor = 1.0
)

// widthSlackRatio is the overflow tolerance of the right line boundary as a
// fraction of the font size, absorbing rounding in measured advances.
const widthSlackRatio = 0.1

// Engine lays out translated paragraphs. It owns the tokenizer, the
// shaping engine, and the caches, and is safe for concurrent use.
type Engine struct {
	cfg      Config
	hinter   *text.Hinter
	builder  *text.RunBuilder
	shaper   *text.HarfBuzzShaper
	fallback text.FallbackShaper
	fonts    *text.FontCache
	cache    *cache.ShapingCache

	fontWarn sync.Once
}

// Option customizes an Engine beyond what Config expresses.
type Option func(*Engine)

// WithTokenizer replaces the tokenizer built from the config. Useful for
// supplying a dictionary loaded from somewhere other than a file.
func WithTokenizer(tok text.Tokenizer) Option {
	return func(e *Engine) {
		e.hinter = text.NewHinter(tok)
	}
}

// WithFontCache shares a font cache between engines.
func WithFontCache(fc *text.FontCache) Option {
	return func(e *Engine) {
		e.fonts = fc
	}
}

// WithShapingCache shares a shaping cache between engines.
func WithShapingCache(c *cache.ShapingCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// NewEngine builds an engine from cfg. Configuration problems that can be
// worked around (unknown tokenizer engine, unreadable dictionary) are
// logged and degrade to no hinting rather than failing construction.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		hinter:  text.NewHinter(buildTokenizer(cfg)),
		builder: text.NewRunBuilder(),
		shaper:  text.NewHarfBuzzShaper(),
		fonts:   text.NewFontCache(),
	}
	if cfg.CacheCapacity >= 0 {
		e.cache = cache.NewShapingCache(cfg.CacheCapacity)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func buildTokenizer(cfg Config) text.Tokenizer {
	engine, err := text.ParseEngine(cfg.TokenizerEngine)
	if err != nil {
		Logger().Warn("unknown tokenizer engine, hinting disabled",
			slog.String("engine", cfg.TokenizerEngine))
		return nil
	}
	var dict []string
	if engine == text.EngineLongestMatch && cfg.TokenizerDictPath != "" {
		dict, err = text.LoadDictionary(cfg.TokenizerDictPath)
		if err != nil {
			Logger().Warn("dictionary load failed, hinting disabled",
				slog.String("path", cfg.TokenizerDictPath),
				slog.Any("error", err))
			return nil
		}
	}
	if engine == text.EngineLongestMatch && len(dict) == 0 {
		return nil
	}
	return text.NewTokenizer(engine, dict)
}

// LayoutParagraph lays out one paragraph into positioned lines. It never
// fails: every problem along the way degrades to estimated metrics and is
// reflected in the Layout's Degraded flag.
func (e *Engine) LayoutParagraph(p Paragraph) *Layout {
	size := p.FontSize * e.cfg.FontScale(p.Lang)
	layout := &Layout{
		FontSize:   size,
		LineHeight: e.cfg.LineHeight(p.Lang),
	}
	if p.Text == "" || size <= 0 {
		return layout
	}

	hinted := p.Text
	if e.cfg.WordWrapEnabled {
		tag, err := language.Parse(p.Lang)
		if err == nil {
			hinted = e.hinter.Hint(p.Text, tag)
		}
	}

	runs := e.builder.Build(hinted, p.PlaceholderWidths)
	shaped := make([]*text.ShapedRun, 0, len(runs))
	for _, run := range runs {
		sr := e.shapeRun(run, size, p.Lang)
		if sr.Degraded != text.DegradeNone {
			layout.Degraded = true
			Logger().Debug("run degraded",
				slog.String("reason", sr.Degraded.String()),
				slog.String("script", run.Script.String()))
		}
		shaped = append(shaped, sr)
	}

	comp := composer{
		maxWidth: p.MaxWidth,
		slack:    widthSlackRatio * size,
		minUsage: e.cfg.MinLineUsage,
		wordWrap: e.cfg.WordWrapEnabled,
	}
	lines := comp.compose(shaped)

	layout.LineHeight = e.fitLineHeight(layout.LineHeight, size, len(lines), p.Height)
	e.placeLines(layout, lines, shaped, p)
	return layout
}

// shapeRun produces a shaping result for one run, consulting the cache and
// degrading as configured.
func (e *Engine) shapeRun(run text.Run, size float64, lang string) *text.ShapedRun {
	if run.Kind == text.RunPlaceholder {
		adv := run.FixedAdvance
		if adv < 0 {
			adv = float64(run.RuneLen()) * text.FallbackAdvanceRatio * size
		}
		return &text.ShapedRun{
			Run:     run,
			Glyphs:  []text.Glyph{{Cluster: 0, XAdvance: adv}},
			Advance: adv,
		}
	}
	if !e.cfg.ShapingEnabled {
		return e.fallback.Shape(run, size, text.DegradeDisabled)
	}
	if e.cfg.FontPath == "" {
		e.warnFontOnce("no font path configured, using estimated advances", nil)
		return e.fallback.Shape(run, size, text.DegradeNoFontPath)
	}
	fnt, err := e.fonts.Load(e.cfg.FontPath)
	if err != nil {
		e.warnFontOnce("font load failed, using estimated advances", err)
		return e.fallback.Shape(run, size, text.DegradeFontLoad)
	}

	subtag := langSubtag(lang)
	if e.cache == nil {
		return e.shaper.Shape(run, fnt, size, subtag)
	}
	key := cache.NewKey(run.Stripped(), e.cfg.FontPath, subtag, size, run.Direction, run.Script)
	cached := e.cache.GetOrCreate(key, func() *text.ShapedRun {
		return e.shaper.Shape(run, fnt, size, subtag)
	})
	return rebindRun(cached, run)
}

// rebindRun returns sr bound to the given run. The cache key covers only
// the stripped text, so a hit may carry the run of the first occurrence,
// whose paragraph offsets and marker positions can differ from the current
// run's even though the glyphs are identical.
func rebindRun(sr *text.ShapedRun, run text.Run) *text.ShapedRun {
	return &text.ShapedRun{
		Run:      run,
		Glyphs:   sr.Glyphs,
		Advance:  sr.Advance,
		Degraded: sr.Degraded,
	}
}

func (e *Engine) warnFontOnce(msg string, err error) {
	e.fontWarn.Do(func() {
		if err != nil {
			Logger().Warn(msg, slog.String("path", e.cfg.FontPath), slog.Any("error", err))
		} else {
			Logger().Warn(msg)
		}
	})
}

// fitLineHeight shrinks the line height in steps until the paragraph fits
// its vertical space or hits the floor. Languages whose line height starts
// below the floor keep it.
func (e *Engine) fitLineHeight(lh, size float64, lineCount int, height float64) float64 {
	if height <= 0 || lineCount <= 1 {
		return lh
	}
	floor := lineHeightFloor
	if lh < floor {
		floor = lh
	}
	for lh > floor && float64(lineCount-1)*size*lh > height {
		lh -= lineHeightStep
	}
	if lh < floor {
		lh = floor
	}
	return lh
}

// placeLines assigns baselines top down and places glyphs along each line.
func (e *Engine) placeLines(layout *Layout, lines []composedLine, shaped []*text.ShapedRun, p Paragraph) {
	size := layout.FontSize
	for i, cl := range lines {
		line := Line{
			Text:     cl.text(),
			X:        p.X,
			Baseline: p.Y - float64(i)*size*layout.LineHeight,
			Advance:  cl.advance,
		}
		pen := p.X
		for _, idx := range placementOrder(cl.units, shaped) {
			u := cl.units[idx]
			sr := shaped[u.run]
			if u.atomic {
				line.Glyphs = append(line.Glyphs, PlacedGlyph{
					X:           pen,
					Y:           line.Baseline,
					XAdvance:    u.advance,
					Placeholder: sr.Run.Index + 1,
				})
				pen += u.advance
				continue
			}
			for _, g := range sr.Glyphs {
				if g.Cluster < u.start || g.Cluster >= u.end {
					continue
				}
				line.Glyphs = append(line.Glyphs, PlacedGlyph{
					GID:      g.GID,
					X:        pen + g.XOffset,
					Y:        line.Baseline + g.YOffset,
					XAdvance: g.XAdvance,
				})
				pen += g.XAdvance
			}
		}
		layout.Lines = append(layout.Lines, line)
	}
}

// placementOrder returns unit indices in visual order. Units arrive in
// logical order; maximal sequences of units from right-to-left runs are
// reversed so their glyphs advance leftward across the line. Glyphs inside
// each unit are already in visual order from the shaper.
func placementOrder(units []breakUnit, shaped []*text.ShapedRun) []int {
	order := make([]int, 0, len(units))
	for i := 0; i < len(units); {
		if shaped[units[i].run].Run.Direction != text.DirectionRTL {
			order = append(order, i)
			i++
			continue
		}
		j := i
		for j < len(units) && shaped[units[j].run].Run.Direction == text.DirectionRTL {
			j++
		}
		for k := j - 1; k >= i; k-- {
			order = append(order, k)
		}
		i = j
	}
	return order
}

func langSubtag(lang string) string {
	base, _, _ := strings.Cut(strings.ToLower(lang), "-")
	return base
}
