package taxes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-http-utils/headers"

	"github.com/saleorbridge/saleorbridge/internal/appconfig"
	"github.com/saleorbridge/saleorbridge/internal/infra/config"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
)

const shippingItemCode = "Shipping"

// CredentialsError: the provider rejected the tenant's credentials.
type CredentialsError struct {
	Status int
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("avatax: credentials rejected with status %d", e.Status)
}

// CalculationRejectedError: the provider refused to compute the
// transaction with a known domain error code (bad address, unmapped tax
// region, ...).
type CalculationRejectedError struct {
	Code    string
	Message string
}

func (e *CalculationRejectedError) Error() string {
	return fmt.Sprintf("avatax: calculation rejected: %s: %s", e.Code, e.Message)
}

// domain error codes the provider may legitimately answer with; anything
// else is treated as unexpected.
var rejectionCodes = map[string]struct{}{
	"InvalidAddress":    {},
	"AddressRangeError": {},
	"TaxRegionError":    {},
	"GetTaxError":       {},
	"InvalidPostalCode": {},
}

// AvataxProvider consolidates all AvaTax REST usage. Tenant credentials
// arrive per call inside the AppConfig; only service-level settings
// (endpoints, timeout) live on the provider.
type AvataxProvider struct {
	baseURL    string
	sandboxURL string
	client     *http.Client
}

func NewAvataxProvider(cfg config.AvataxConfig) *AvataxProvider {
	return &AvataxProvider{
		baseURL:    cfg.BaseURL,
		sandboxURL: cfg.SandboxBaseURL,
		client:     &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

type createTransactionRequest struct {
	Type         string               `json:"type"`
	CompanyCode  string               `json:"companyCode,omitempty"`
	Date         string               `json:"date"`
	CustomerCode string               `json:"customerCode"`
	Commit       bool                 `json:"commit"`
	CurrencyCode string               `json:"currencyCode"`
	Addresses    transactionAddresses `json:"addresses"`
	Lines        []transactionLine    `json:"lines"`
}

type transactionAddresses struct {
	ShipFrom transactionAddress `json:"shipFrom"`
	ShipTo   transactionAddress `json:"shipTo"`
}

type transactionAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type transactionLine struct {
	Number      string  `json:"number"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
	ItemCode    string  `json:"itemCode,omitempty"`
	TaxCode     string  `json:"taxCode,omitempty"`
	TaxIncluded bool    `json:"taxIncluded"`
}

type transactionResponse struct {
	Lines []struct {
		ItemCode       string  `json:"itemCode"`
		Tax            float64 `json:"tax"`
		TaxableAmount  float64 `json:"taxableAmount"`
		LineAmount     float64 `json:"lineAmount"`
		Details        []struct {
			Rate float64 `json:"rate"`
		} `json:"details"`
	} `json:"lines"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CalculateTaxes creates a SalesOrder transaction (an estimate, never
// committed) and maps the result to a Computation.
func (p *AvataxProvider) CalculateTaxes(
	ctx context.Context,
	cfg *appconfig.AppConfig,
	base *saleor.TaxBase,
) (*Computation, error) {
	reqBody := p.buildRequest(cfg, base)

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("avatax: failed to marshal transaction: %w", err)
	}

	url := p.baseURL
	if cfg.IsSandbox {
		url = p.sandboxURL
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url+"/api/v2/transactions/create",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("avatax: failed to create request: %w", err)
	}
	req.SetBasicAuth(cfg.Credentials.Username, cfg.Credentials.Password)
	req.Header.Set(headers.ContentType, "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("avatax: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("avatax: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &CredentialsError{Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyError(resp.StatusCode, respBody)
	}

	var tx transactionResponse
	if err := json.Unmarshal(respBody, &tx); err != nil {
		return nil, fmt.Errorf("avatax: failed to unmarshal response: %w", err)
	}

	return mapTransaction(&tx), nil
}

func (p *AvataxProvider) buildRequest(
	cfg *appconfig.AppConfig,
	base *saleor.TaxBase,
) *createTransactionRequest {
	lines := make([]transactionLine, 0, len(base.Lines)+1)
	for _, l := range base.Lines {
		lines = append(lines, transactionLine{
			Number:      l.SourceLine.ID,
			Quantity:    l.Quantity,
			Amount:      l.TotalPrice.Amount,
			ItemCode:    l.ProductSKU,
			TaxIncluded: base.PricesEnteredWithTax,
		})
	}
	lines = append(lines, transactionLine{
		Number:      shippingItemCode,
		Quantity:    1,
		Amount:      base.ShippingPrice.Amount,
		ItemCode:    shippingItemCode,
		TaxCode:     cfg.ShippingTaxCode,
		TaxIncluded: base.PricesEnteredWithTax,
	})

	return &createTransactionRequest{
		Type:         "SalesOrder",
		CompanyCode:  cfg.CompanyCode,
		Date:         time.Now().UTC().Format("2006-01-02"),
		CustomerCode: "0",
		Commit:       false,
		CurrencyCode: base.Currency,
		Addresses: transactionAddresses{
			ShipFrom: transactionAddress{
				Line1:      cfg.Address.Street,
				City:       cfg.Address.City,
				Region:     cfg.Address.State,
				PostalCode: cfg.Address.Zip,
				Country:    cfg.Address.Country,
			},
			ShipTo: transactionAddress{
				Line1:      base.Address.StreetAddress1,
				Line2:      base.Address.StreetAddress2,
				City:       base.Address.City,
				Region:     base.Address.CountryArea,
				PostalCode: base.Address.PostalCode,
				Country:    base.Address.Country,
			},
		},
		Lines: lines,
	}
}

func classifyError(status int, body []byte) error {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Code != "" {
		if _, known := rejectionCodes[e.Error.Code]; known {
			return &CalculationRejectedError{Code: e.Error.Code, Message: e.Error.Message}
		}
		return fmt.Errorf("avatax: unexpected error %s (status %d): %s", e.Error.Code, status, e.Error.Message)
	}
	return fmt.Errorf("avatax: unexpected status %d", status)
}

func mapTransaction(tx *transactionResponse) *Computation {
	computation := &Computation{}
	for _, line := range tx.Lines {
		var rate float64
		for _, d := range line.Details {
			rate += d.Rate
		}
		net := line.TaxableAmount
		gross := line.TaxableAmount + line.Tax

		if line.ItemCode == shippingItemCode {
			computation.ShippingNet = net
			computation.ShippingGross = gross
			computation.ShippingTaxRate = rate
			continue
		}
		computation.Lines = append(computation.Lines, LineComputation{
			TotalNet:   net,
			TotalGross: gross,
			TaxRate:    rate,
		})
	}
	return computation
}
