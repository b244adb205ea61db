// Command layouttrace lays out a paragraph and prints the resulting lines,
// for inspecting break positions and shaping degradation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	typeset "github.com/mozeal/PDFMathTranslate"
)

func main() {
	var (
		lang    = flag.String("lang", "en", "target language code")
		size    = flag.Float64("size", 12, "font size in text units")
		width   = flag.Float64("width", 200, "maximum line width")
		height  = flag.Float64("height", 0, "available vertical space, 0 for unlimited")
		font    = flag.String("font", os.Getenv("NOTO_FONT_PATH"), "font file for shaping")
		dict    = flag.String("dict", "", "word dictionary for the longest-match tokenizer")
		engine  = flag.String("engine", "longest", "tokenizer engine: longest, unicode, none")
		cfgFile = flag.String("config", "", "JSON config file, overridden by other flags")
		verbose = flag.Bool("v", false, "log shaping decisions to stderr")
	)
	flag.Parse()

	if *verbose {
		typeset.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := typeset.ConfigFromEnv()
	if *cfgFile != "" {
		var err error
		cfg, err = typeset.LoadConfigFile(*cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg.FontPath = *font
	cfg.TokenizerEngine = *engine
	cfg.TokenizerDictPath = *dict

	input, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	eng := typeset.NewEngine(cfg)
	layout := eng.LayoutParagraph(typeset.Paragraph{
		Text:     input,
		Lang:     *lang,
		FontSize: *size,
		MaxWidth: *width,
		Height:   *height,
	})

	fmt.Printf("size=%.2f lineheight=%.2f lines=%d degraded=%v\n",
		layout.FontSize, layout.LineHeight, len(layout.Lines), layout.Degraded)
	for i, line := range layout.Lines {
		fmt.Printf("%3d  y=%8.2f  adv=%7.2f  %q\n",
			i, line.Baseline, line.Advance, line.Text)
	}
}

// readInput takes the paragraph from the arguments, or from stdin when no
// arguments are given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, " "), nil
}
