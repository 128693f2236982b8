package appconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/saleorbridge/saleorbridge/internal/infra/errtrack"
	"github.com/saleorbridge/saleorbridge/internal/infra/logger"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
)

// Extractor turns a tenant's raw metadata into a typed AppConfig.
type Extractor struct {
	reporter errtrack.Reporter

	// summarize builds the attrs for the best-effort config summary log.
	// Overridable in tests; a failure here must never fail extraction.
	summarize func(*AppConfig) []slog.Attr
}

func NewExtractor(reporter errtrack.Reporter) *Extractor {
	return &Extractor{
		reporter:  reporter,
		summarize: summarizeConfig,
	}
}

// Extract parses the metadata entries into an AppConfig. On failure the
// returned error is a *ConfigError, or a *InvalidAddressError when the
// config decodes but its ship-from address is unusable.
func (e *Extractor) Extract(
	ctx context.Context,
	entries []saleor.MetadataEntry,
) (*AppConfig, error) {
	if len(entries) == 0 {
		return nil, &ConfigError{Reason: "private metadata is empty"}
	}

	raw := saleor.MetadataValue(entries, MetadataKey)
	if raw == "" {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("private metadata does not contain %q", MetadataKey),
		}
	}

	var cfg AppConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, &ConfigError{Reason: "configuration is not valid JSON", Cause: err}
	}

	if err := validate.Struct(&cfg); err != nil {
		if addrErr := classifyAddressError(err); addrErr != nil {
			return nil, addrErr
		}
		return nil, &ConfigError{Reason: "configuration is structurally invalid", Cause: err}
	}

	e.logSummary(ctx, &cfg)

	return &cfg, nil
}

// logSummary logs an obfuscated configuration summary. Best effort: a
// panic or error while building the summary is reported as a non-fatal
// observability failure and never aborts extraction.
func (e *Extractor) logSummary(ctx context.Context, cfg *AppConfig) {
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("appconfig: config summary panicked: %v", rec)
			}
			e.reporter.CaptureException(ctx, err)
		}
	}()

	logger.FromContext(ctx).Debug("extracted app configuration", slog.Group("config", anyAttrs(e.summarize(cfg))...))
}

func anyAttrs(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = a
	}
	return out
}

func summarizeConfig(cfg *AppConfig) []slog.Attr {
	return []slog.Attr{
		slog.String("username", obfuscate(cfg.Credentials.Username)),
		slog.String("company_code", cfg.CompanyCode),
		slog.Bool("sandbox", cfg.IsSandbox),
		slog.Bool("autocommit", cfg.IsAutocommit),
		slog.String("country", cfg.Address.Country),
	}
}

func obfuscate(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}

// classifyAddressError returns an *InvalidAddressError when the only
// problem with a structurally decoded config is its ship-from address.
func classifyAddressError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	for _, fe := range verrs {
		if !strings.HasPrefix(fe.Namespace(), "AppConfig.Address") {
			return nil
		}
	}
	if len(verrs) == 0 {
		return nil
	}
	return &InvalidAddressError{Field: verrs[0].Field()}
}
