package typeset

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names recognized by ConfigFromEnv. Per-language
// overrides append an uppercase language code, for example
// LANG_LINEHEIGHT_TH=1.6.
const (
	envShapingEnabled  = "TEXT_SHAPING_ENABLED"
	envFontPath        = "NOTO_FONT_PATH"
	envWordWrap        = "WORD_WRAP_ENABLED"
	envMinLineUsage    = "MIN_LINE_USAGE_FRACTION"
	envTokenizerEngine = "TOKENIZER_ENGINE"
	envTokenizerDict   = "TOKENIZER_DICT_PATH"
	envLineHeight      = "LANG_LINEHEIGHT_"
	envFontScale       = "LANG_FONTSIZE_SCALE_"
)

// Config carries all layout tunables. The zero value is not useful; start
// from DefaultConfig or ConfigFromEnv.
type Config struct {
	// ShapingEnabled turns the shaping engine on. When false every run
	// uses estimated per-character advances.
	ShapingEnabled bool `json:"shaping_enabled"`

	// FontPath is the font file used for shaping. Empty degrades shaping.
	FontPath string `json:"font_path"`

	// WordWrapEnabled turns boundary-aware line breaking on. When false
	// lines break at cluster boundaries only.
	WordWrapEnabled bool `json:"word_wrap_enabled"`

	// MinLineUsage is the fraction of the line width a break candidate
	// must fill before it is taken in preference to a later one.
	MinLineUsage float64 `json:"min_line_usage"`

	// TokenizerEngine selects word segmentation for spaceless scripts:
	// "longest", "unicode", or "none".
	TokenizerEngine string `json:"tokenizer_engine"`

	// TokenizerDictPath is the word list for the longest-match engine.
	TokenizerDictPath string `json:"tokenizer_dict_path"`

	// LineHeights and FontScales override the built-in per-language
	// metrics, keyed by lowercase language code.
	LineHeights map[string]float64 `json:"line_heights,omitempty"`
	FontScales  map[string]float64 `json:"font_scales,omitempty"`

	// CacheCapacity is the shaping cache capacity per shard. Zero selects
	// the cache default; negative disables caching.
	CacheCapacity int `json:"cache_capacity"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		ShapingEnabled:  true,
		WordWrapEnabled: true,
		MinLineUsage:    0.3,
		TokenizerEngine: "longest",
	}
}

// ConfigFromEnv returns DefaultConfig with environment overrides applied.
// Unset or malformed variables keep their defaults.
func ConfigFromEnv() Config {
	c := DefaultConfig()
	if v, ok := envBool(envShapingEnabled); ok {
		c.ShapingEnabled = v
	}
	if v := os.Getenv(envFontPath); v != "" {
		c.FontPath = v
	}
	if v, ok := envBool(envWordWrap); ok {
		c.WordWrapEnabled = v
	}
	if v, ok := envFloat(envMinLineUsage); ok && v >= 0 && v <= 1 {
		c.MinLineUsage = v
	}
	if v := os.Getenv(envTokenizerEngine); v != "" {
		c.TokenizerEngine = v
	}
	if v := os.Getenv(envTokenizerDict); v != "" {
		c.TokenizerDictPath = v
	}
	c.LineHeights = envLangOverrides(envLineHeight)
	c.FontScales = envLangOverrides(envFontScale)
	return c
}

// LoadConfigFile reads a JSON config file on top of the defaults, so a
// partial file only overrides the keys it names.
func LoadConfigFile(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// envLangOverrides collects variables with the given prefix into a map
// keyed by lowercase language code. Unparsable values are skipped.
func envLangOverrides(prefix string) map[string]float64 {
	var m map[string]float64
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		lang := strings.ToLower(strings.TrimPrefix(name, prefix))
		if lang == "" {
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			continue
		}
		if m == nil {
			m = make(map[string]float64)
		}
		m[lang] = f
	}
	return m
}
