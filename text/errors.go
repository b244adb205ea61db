package text

import "errors"

var (
	// ErrNoFontPath is returned when shaping is requested but no font file
	// has been configured.
	ErrNoFontPath = errors.New("text: no font path configured")

	// ErrFontLoad is returned when the configured font file cannot be read
	// or parsed.
	ErrFontLoad = errors.New("text: font load failed")
)
