package appconfig

import "log/slog"

// SetSummarize replaces the config-summary builder in tests.
func (e *Extractor) SetSummarize(f func(*AppConfig) []slog.Attr) {
	e.summarize = f
}
