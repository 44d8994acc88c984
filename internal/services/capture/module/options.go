package module

import "later/internal/platform/config"

// Options holds configuration settings for the capture module
type Options struct {
	Version       int
	Workers       int
	MinConfidence float64
	TitleRunes    int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CAPTURE_")
	return Options{
		Version:       cf.MayInt("VERSION", 1),
		Workers:       cf.MayInt("WORKERS", 2),
		MinConfidence: cf.MayFloat64("MIN_CONFIDENCE", 0.4),
		TitleRunes:    cf.MayInt("TITLE_RUNES", 80),
	}
}
