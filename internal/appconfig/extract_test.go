package appconfig_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saleorbridge/saleorbridge/internal/appconfig"
	"github.com/saleorbridge/saleorbridge/internal/infra/errtrack/mocks"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
)

const validConfigJSON = `{
	"credentials": {"username": "avatax-user", "password": "avatax-pass"},
	"companyCode": "DEFAULT",
	"isSandbox": true,
	"isAutocommit": false,
	"shippingTaxCode": "FR000000",
	"address": {
		"street": "600 Montgomery St",
		"city": "San Francisco",
		"state": "CA",
		"zip": "94111",
		"country": "US"
	}
}`

func validMetadata() []saleor.MetadataEntry {
	return []saleor.MetadataEntry{{Key: appconfig.MetadataKey, Value: validConfigJSON}}
}

func TestExtract_Valid(t *testing.T) {
	extractor := appconfig.NewExtractor(mocks.NewMockReporter(t))

	cfg, err := extractor.Extract(context.Background(), validMetadata())
	require.NoError(t, err)

	assert.Equal(t, "avatax-user", cfg.Credentials.Username)
	assert.Equal(t, "DEFAULT", cfg.CompanyCode)
	assert.True(t, cfg.IsSandbox)
	assert.Equal(t, "US", cfg.Address.Country)
}

func TestExtract_EmptyMetadata(t *testing.T) {
	extractor := appconfig.NewExtractor(mocks.NewMockReporter(t))

	_, err := extractor.Extract(context.Background(), nil)

	var cfgErr *appconfig.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "empty")
}

func TestExtract_MissingConfigKey(t *testing.T) {
	extractor := appconfig.NewExtractor(mocks.NewMockReporter(t))

	_, err := extractor.Extract(context.Background(), []saleor.MetadataEntry{
		{Key: "unrelated", Value: "whatever"},
	})

	var cfgErr *appconfig.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, appconfig.MetadataKey)
}

func TestExtract_MalformedJSON(t *testing.T) {
	extractor := appconfig.NewExtractor(mocks.NewMockReporter(t))

	_, err := extractor.Extract(context.Background(), []saleor.MetadataEntry{
		{Key: appconfig.MetadataKey, Value: "{not json"},
	})

	var cfgErr *appconfig.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "JSON")
}

func TestExtract_MissingCredentials(t *testing.T) {
	extractor := appconfig.NewExtractor(mocks.NewMockReporter(t))

	_, err := extractor.Extract(context.Background(), []saleor.MetadataEntry{
		{Key: appconfig.MetadataKey, Value: `{
			"credentials": {"username": "", "password": ""},
			"address": {"street": "s", "city": "c", "zip": "z", "country": "US"}
		}`},
	})

	var cfgErr *appconfig.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	var addrErr *appconfig.InvalidAddressError
	assert.False(t, errors.As(err, &addrErr))
}

func TestExtract_InvalidAddress_DistinctError(t *testing.T) {
	extractor := appconfig.NewExtractor(mocks.NewMockReporter(t))

	_, err := extractor.Extract(context.Background(), []saleor.MetadataEntry{
		{Key: appconfig.MetadataKey, Value: `{
			"credentials": {"username": "u", "password": "p"},
			"address": {"street": "600 Montgomery St", "city": "San Francisco", "zip": "94111", "country": "usa"}
		}`},
	})

	var addrErr *appconfig.InvalidAddressError
	require.ErrorAs(t, err, &addrErr)

	var cfgErr *appconfig.ConfigError
	assert.False(t, errors.As(err, &cfgErr))
}

func TestExtract_SummaryPanic_DoesNotFailExtraction(t *testing.T) {
	reporter := mocks.NewMockReporter(t)
	reporter.EXPECT().CaptureException(mock.Anything, mock.Anything).Once()

	extractor := appconfig.NewExtractor(reporter)
	extractor.SetSummarize(func(*appconfig.AppConfig) []slog.Attr {
		panic("summary exploded")
	})

	cfg, err := extractor.Extract(context.Background(), validMetadata())
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
