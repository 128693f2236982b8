package taxes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saleorbridge/saleorbridge/internal/appconfig"
	errtrackmocks "github.com/saleorbridge/saleorbridge/internal/infra/errtrack/mocks"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
	"github.com/saleorbridge/saleorbridge/internal/taxes"
	"github.com/saleorbridge/saleorbridge/internal/taxes/mocks"
)

func validTaxBasePayload() *saleor.TaxBasePayload {
	return &saleor.TaxBasePayload{
		Version: "3.20",
		TaxBase: saleor.TaxBase{
			Channel:      saleor.Channel{Slug: "default-channel"},
			SourceObject: saleor.SourceObject{ID: "Q2hlY2tvdXQ6MTIz"},
			Address: &saleor.Address{
				StreetAddress1: "1 Market St",
				City:           "San Francisco",
				CountryArea:    "CA",
				PostalCode:     "94105",
				Country:        "US",
			},
			ShippingPrice: saleor.Money{Amount: 10},
			Lines: []saleor.TaxBaseLine{
				{
					SourceLine: saleor.SourceLine{ID: "Q2hlY2tvdXRMaW5lOjE="},
					Quantity:   2,
					UnitPrice:  saleor.Money{Amount: 25},
					TotalPrice: saleor.Money{Amount: 50},
					ProductSKU: "SKU-1",
				},
			},
			Currency: "USD",
		},
		Recipient: &saleor.Recipient{
			PrivateMetadata: []saleor.MetadataEntry{
				{Key: appconfig.MetadataKey, Value: "{}"},
			},
		},
	}
}

func validAppConfig() *appconfig.AppConfig {
	return &appconfig.AppConfig{
		Credentials: appconfig.Credentials{Username: "u", Password: "p"},
		CompanyCode: "DEFAULT",
		Address: appconfig.FromAddress{
			Street:  "600 Montgomery St",
			City:    "San Francisco",
			State:   "CA",
			Zip:     "94111",
			Country: "US",
		},
	}
}

func TestUseCase_Calculate_Success(t *testing.T) {
	payload := validTaxBasePayload()
	cfg := validAppConfig()
	want := &taxes.Computation{
		ShippingGross:   10.85,
		ShippingNet:     10,
		ShippingTaxRate: 0.085,
		Lines: []taxes.LineComputation{
			{TotalGross: 54.25, TotalNet: 50, TaxRate: 0.085},
		},
	}

	extractor := mocks.NewMockConfigExtractor(t)
	extractor.EXPECT().
		Extract(mock.Anything, payload.Recipient.PrivateMetadata).
		Return(cfg, nil)

	provider := mocks.NewMockTaxProvider(t)
	provider.EXPECT().
		CalculateTaxes(mock.Anything, cfg, &payload.TaxBase).
		Return(want, nil)

	reporter := errtrackmocks.NewMockReporter(t)

	uc := taxes.NewUseCase(extractor, provider, reporter)
	got, taxErr := uc.Calculate(context.Background(), payload, saleor.AuthData{})

	require.Nil(t, taxErr)
	assert.Equal(t, want, got)
}

func TestUseCase_Calculate_MetadataFromContextWins(t *testing.T) {
	payload := validTaxBasePayload()
	entries := []saleor.MetadataEntry{{Key: appconfig.MetadataKey, Value: `{"isSandbox":true}`}}
	ctx := saleor.WithRecipientMetadata(context.Background(), entries)

	extractor := mocks.NewMockConfigExtractor(t)
	extractor.EXPECT().
		Extract(mock.Anything, entries).
		Return(validAppConfig(), nil)

	provider := mocks.NewMockTaxProvider(t)
	provider.EXPECT().
		CalculateTaxes(mock.Anything, mock.Anything, mock.Anything).
		Return(&taxes.Computation{}, nil)

	reporter := errtrackmocks.NewMockReporter(t)

	uc := taxes.NewUseCase(extractor, provider, reporter)
	_, taxErr := uc.Calculate(ctx, payload, saleor.AuthData{})

	assert.Nil(t, taxErr)
}

func TestUseCase_Calculate_IncompletePayload(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*saleor.TaxBasePayload)
		missing string
	}{
		{
			name:    "no address",
			mutate:  func(p *saleor.TaxBasePayload) { p.TaxBase.Address = nil },
			missing: "address",
		},
		{
			name:    "no country",
			mutate:  func(p *saleor.TaxBasePayload) { p.TaxBase.Address.Country = "" },
			missing: "address.country",
		},
		{
			name:    "no postal code",
			mutate:  func(p *saleor.TaxBasePayload) { p.TaxBase.Address.PostalCode = "" },
			missing: "address.postalCode",
		},
		{
			name:    "no currency",
			mutate:  func(p *saleor.TaxBasePayload) { p.TaxBase.Currency = "" },
			missing: "currency",
		},
		{
			name:    "no lines",
			mutate:  func(p *saleor.TaxBasePayload) { p.TaxBase.Lines = nil },
			missing: "lines",
		},
		{
			name:    "zero quantity",
			mutate:  func(p *saleor.TaxBasePayload) { p.TaxBase.Lines[0].Quantity = 0 },
			missing: "lines.quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validTaxBasePayload()
			tt.mutate(payload)

			// Neither dependency may be touched on an incomplete payload.
			extractor := mocks.NewMockConfigExtractor(t)
			provider := mocks.NewMockTaxProvider(t)
			reporter := errtrackmocks.NewMockReporter(t)

			uc := taxes.NewUseCase(extractor, provider, reporter)
			got, taxErr := uc.Calculate(context.Background(), payload, saleor.AuthData{})

			assert.Nil(t, got)
			var incomplete *taxes.ExpectedIncompletePayloadError
			require.ErrorAs(t, taxErr, &incomplete)
			assert.Equal(t, tt.missing, incomplete.Missing)
		})
	}
}

func TestUseCase_Calculate_ConfigBroken(t *testing.T) {
	payload := validTaxBasePayload()

	extractor := mocks.NewMockConfigExtractor(t)
	extractor.EXPECT().
		Extract(mock.Anything, mock.Anything).
		Return(nil, &appconfig.ConfigError{Reason: "metadata key missing"})

	provider := mocks.NewMockTaxProvider(t)
	reporter := errtrackmocks.NewMockReporter(t)

	uc := taxes.NewUseCase(extractor, provider, reporter)
	got, taxErr := uc.Calculate(context.Background(), payload, saleor.AuthData{})

	assert.Nil(t, got)
	var broken *taxes.ConfigBrokenError
	require.ErrorAs(t, taxErr, &broken)
	var cfgErr *appconfig.ConfigError
	assert.True(t, errors.As(broken.Cause, &cfgErr))
}

func TestUseCase_Calculate_CredentialsRejected(t *testing.T) {
	payload := validTaxBasePayload()

	extractor := mocks.NewMockConfigExtractor(t)
	extractor.EXPECT().
		Extract(mock.Anything, mock.Anything).
		Return(validAppConfig(), nil)

	provider := mocks.NewMockTaxProvider(t)
	provider.EXPECT().
		CalculateTaxes(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &taxes.CredentialsError{Status: 401})

	reporter := errtrackmocks.NewMockReporter(t)

	uc := taxes.NewUseCase(extractor, provider, reporter)
	got, taxErr := uc.Calculate(context.Background(), payload, saleor.AuthData{})

	assert.Nil(t, got)
	var broken *taxes.ConfigBrokenError
	require.ErrorAs(t, taxErr, &broken)
}

func TestUseCase_Calculate_ProviderRejection(t *testing.T) {
	payload := validTaxBasePayload()

	extractor := mocks.NewMockConfigExtractor(t)
	extractor.EXPECT().
		Extract(mock.Anything, mock.Anything).
		Return(validAppConfig(), nil)

	provider := mocks.NewMockTaxProvider(t)
	provider.EXPECT().
		CalculateTaxes(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &taxes.CalculationRejectedError{Code: "TaxRegionError", Message: "no region"})

	reporter := errtrackmocks.NewMockReporter(t)

	uc := taxes.NewUseCase(extractor, provider, reporter)
	got, taxErr := uc.Calculate(context.Background(), payload, saleor.AuthData{})

	assert.Nil(t, got)
	var failed *taxes.FailedCalculatingTaxesError
	require.ErrorAs(t, taxErr, &failed)
}

func TestUseCase_Calculate_UnhandledReportedOnce(t *testing.T) {
	payload := validTaxBasePayload()

	extractor := mocks.NewMockConfigExtractor(t)
	extractor.EXPECT().
		Extract(mock.Anything, mock.Anything).
		Return(validAppConfig(), nil)

	provider := mocks.NewMockTaxProvider(t)
	provider.EXPECT().
		CalculateTaxes(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	reporter := errtrackmocks.NewMockReporter(t)
	reporter.EXPECT().CaptureException(mock.Anything, assert.AnError).Once()

	uc := taxes.NewUseCase(extractor, provider, reporter)
	got, taxErr := uc.Calculate(context.Background(), payload, saleor.AuthData{})

	assert.Nil(t, got)
	var unhandled *taxes.UnhandledError
	require.ErrorAs(t, taxErr, &unhandled)
	assert.ErrorIs(t, unhandled.Cause, assert.AnError)
}
