package taxes

import (
	"context"
	"errors"
	"time"

	"github.com/saleorbridge/saleorbridge/internal/appconfig"
	"github.com/saleorbridge/saleorbridge/internal/infra/errtrack"
	"github.com/saleorbridge/saleorbridge/internal/infra/metrics"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
)

// Computation is the tax breakdown returned on success.
type Computation struct {
	ShippingGross   float64
	ShippingNet     float64
	ShippingTaxRate float64
	Lines           []LineComputation
}

type LineComputation struct {
	TotalGross float64
	TotalNet   float64
	TaxRate    float64
}

// ConfigExtractor resolves tenant configuration from raw metadata.
type ConfigExtractor interface {
	Extract(ctx context.Context, entries []saleor.MetadataEntry) (*appconfig.AppConfig, error)
}

// TaxProvider performs the external tax calculation.
type TaxProvider interface {
	CalculateTaxes(ctx context.Context, cfg *appconfig.AppConfig, base *saleor.TaxBase) (*Computation, error)
}

// UseCase orchestrates config resolution and the provider call for one
// checkout-calculate-taxes request.
type UseCase struct {
	extractor ConfigExtractor
	provider  TaxProvider
	reporter  errtrack.Reporter
}

func NewUseCase(
	extractor ConfigExtractor,
	provider TaxProvider,
	reporter errtrack.Reporter,
) *UseCase {
	return &UseCase{
		extractor: extractor,
		provider:  provider,
		reporter:  reporter,
	}
}

// Calculate returns the tax breakdown for the payload or exactly one of
// the TaxError variants. No retries: a provider failure is terminal for
// the request.
func (uc *UseCase) Calculate(
	ctx context.Context,
	payload *saleor.TaxBasePayload,
	auth saleor.AuthData,
) (*Computation, TaxError) {
	if missing := missingPayloadField(&payload.TaxBase); missing != "" {
		return nil, &ExpectedIncompletePayloadError{Missing: missing}
	}

	entries, ok := saleor.RecipientMetadataFromContext(ctx)
	if !ok && payload.Recipient != nil {
		entries = payload.Recipient.PrivateMetadata
	}

	cfg, err := uc.extractor.Extract(ctx, entries)
	if err != nil {
		return nil, &ConfigBrokenError{Cause: err}
	}

	start := time.Now()
	computation, err := uc.provider.CalculateTaxes(ctx, cfg, &payload.TaxBase)
	metrics.RecordTaxProviderCall(err == nil, time.Since(start))
	if err != nil {
		var rejected *CalculationRejectedError
		if errors.As(err, &rejected) {
			return nil, &FailedCalculatingTaxesError{Cause: err}
		}
		var creds *CredentialsError
		if errors.As(err, &creds) {
			return nil, &ConfigBrokenError{Cause: err}
		}
		uc.reporter.CaptureException(ctx, err)
		return nil, &UnhandledError{Cause: err}
	}

	return computation, nil
}

// missingPayloadField returns the name of the first field the payload
// needs for a tax calculation but lacks, or "".
func missingPayloadField(base *saleor.TaxBase) string {
	switch {
	case base.Address == nil:
		return "address"
	case base.Address.Country == "":
		return "address.country"
	case base.Address.PostalCode == "":
		return "address.postalCode"
	case base.Currency == "":
		return "currency"
	case len(base.Lines) == 0:
		return "lines"
	}
	for _, line := range base.Lines {
		if line.Quantity <= 0 {
			return "lines.quantity"
		}
	}
	return ""
}
