package taxes_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleorbridge/saleorbridge/internal/infra/config"
	"github.com/saleorbridge/saleorbridge/internal/taxes"
)

func avataxProvider(url string) *taxes.AvataxProvider {
	return taxes.NewAvataxProvider(config.AvataxConfig{
		BaseURL:        url,
		SandboxBaseURL: url,
		TimeoutSeconds: 5,
	})
}

func TestAvataxProvider_Success(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"lines": []map[string]any{
				{
					"itemCode":      "SKU-1",
					"taxableAmount": 50.0,
					"tax":           4.25,
					"details":       []map[string]any{{"rate": 0.06}, {"rate": 0.025}},
				},
				{
					"itemCode":      "Shipping",
					"taxableAmount": 10.0,
					"tax":           0.85,
					"details":       []map[string]any{{"rate": 0.085}},
				},
			},
		})
	}))
	defer srv.Close()

	payload := validTaxBasePayload()
	cfg := validAppConfig()
	cfg.ShippingTaxCode = "FR000000"

	computation, err := avataxProvider(srv.URL).CalculateTaxes(context.Background(), cfg, &payload.TaxBase)
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/transactions/create", gotPath)
	assert.Equal(t, "u", gotUser)
	assert.Equal(t, "p", gotPass)

	// Estimates only: never a committed SalesInvoice.
	assert.Equal(t, "SalesOrder", gotReq["type"])
	assert.Equal(t, false, gotReq["commit"])
	assert.Equal(t, "USD", gotReq["currencyCode"])

	lines, ok := gotReq["lines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 2)
	shipping := lines[1].(map[string]any)
	assert.Equal(t, "Shipping", shipping["itemCode"])
	assert.Equal(t, "FR000000", shipping["taxCode"])
	assert.Equal(t, 10.0, shipping["amount"])

	assert.Equal(t, 10.0, computation.ShippingNet)
	assert.Equal(t, 10.85, computation.ShippingGross)
	assert.Equal(t, 0.085, computation.ShippingTaxRate)
	require.Len(t, computation.Lines, 1)
	assert.Equal(t, 50.0, computation.Lines[0].TotalNet)
	assert.Equal(t, 54.25, computation.Lines[0].TotalGross)
	assert.InDelta(t, 0.085, computation.Lines[0].TaxRate, 1e-9)
}

func TestAvataxProvider_SandboxEndpoint(t *testing.T) {
	prod := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("production endpoint must not be called for a sandbox tenant")
	}))
	defer prod.Close()

	sandbox := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"lines": []any{}})
	}))
	defer sandbox.Close()

	provider := taxes.NewAvataxProvider(config.AvataxConfig{
		BaseURL:        prod.URL,
		SandboxBaseURL: sandbox.URL,
		TimeoutSeconds: 5,
	})

	payload := validTaxBasePayload()
	cfg := validAppConfig()
	cfg.IsSandbox = true

	_, err := provider.CalculateTaxes(context.Background(), cfg, &payload.TaxBase)
	assert.NoError(t, err)
}

func TestAvataxProvider_CredentialsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	payload := validTaxBasePayload()

	_, err := avataxProvider(srv.URL).CalculateTaxes(context.Background(), validAppConfig(), &payload.TaxBase)

	var creds *taxes.CredentialsError
	require.ErrorAs(t, err, &creds)
	assert.Equal(t, http.StatusUnauthorized, creds.Status)
}

func TestAvataxProvider_KnownRejectionCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    "TaxRegionError",
				"message": "no tax region matches the address",
			},
		})
	}))
	defer srv.Close()

	payload := validTaxBasePayload()

	_, err := avataxProvider(srv.URL).CalculateTaxes(context.Background(), validAppConfig(), &payload.TaxBase)

	var rejected *taxes.CalculationRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "TaxRegionError", rejected.Code)
}

func TestAvataxProvider_UnknownErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    "SomethingElseEntirely",
				"message": "boom",
			},
		})
	}))
	defer srv.Close()

	payload := validTaxBasePayload()

	_, err := avataxProvider(srv.URL).CalculateTaxes(context.Background(), validAppConfig(), &payload.TaxBase)

	require.Error(t, err)
	var rejected *taxes.CalculationRejectedError
	assert.False(t, errors.As(err, &rejected))
	assert.Contains(t, err.Error(), "SomethingElseEntirely")
}

func TestAvataxProvider_UndecodableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	payload := validTaxBasePayload()

	_, err := avataxProvider(srv.URL).CalculateTaxes(context.Background(), validAppConfig(), &payload.TaxBase)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
