package saleor

import (
	"encoding/json"
	"fmt"
)

// TaxBasePayload is the checkout-calculate-taxes webhook body. Immutable
// once decoded; lives for one request.
type TaxBasePayload struct {
	TaxBase   TaxBase    `json:"taxBase"`
	Recipient *Recipient `json:"recipient"`
	Version   string     `json:"version"`
}

// Recipient carries the app installation the webhook targets, including
// the tenant's private metadata.
type Recipient struct {
	PrivateMetadata []MetadataEntry `json:"privateMetadata"`
}

// TaxBase describes the object taxes are calculated for.
type TaxBase struct {
	Channel              Channel       `json:"channel"`
	SourceObject         SourceObject  `json:"sourceObject"`
	Address              *Address      `json:"address"`
	ShippingPrice        Money         `json:"shippingPrice"`
	Lines                []TaxBaseLine `json:"lines"`
	Currency             string        `json:"currency"`
	PricesEnteredWithTax bool          `json:"pricesEnteredWithTax"`
	Discounts            []Discount    `json:"discounts"`
}

type Channel struct {
	Slug string `json:"slug"`
}

type SourceObject struct {
	ID string `json:"id"`
}

type Address struct {
	StreetAddress1 string `json:"streetAddress1"`
	StreetAddress2 string `json:"streetAddress2"`
	City           string `json:"city"`
	CountryArea    string `json:"countryArea"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country"`
}

type Money struct {
	Amount float64 `json:"amount"`
}

type TaxBaseLine struct {
	SourceLine  SourceLine `json:"sourceLine"`
	Quantity    int        `json:"quantity"`
	UnitPrice   Money      `json:"unitPrice"`
	TotalPrice  Money      `json:"totalPrice"`
	ProductSKU  string     `json:"productSku"`
	ChargeTaxes bool       `json:"chargeTaxes"`
}

type SourceLine struct {
	ID string `json:"id"`
}

type Discount struct {
	Amount Money `json:"amount"`
}

// ParseTaxBasePayload decodes the webhook body.
func ParseTaxBasePayload(body []byte) (*TaxBasePayload, error) {
	var payload TaxBasePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("saleor: failed to unmarshal tax base payload: %w", err)
	}
	return &payload, nil
}

// CheckoutID returns the source object id, the value every webhook error
// message has to mention.
func (p *TaxBasePayload) CheckoutID() string {
	return p.TaxBase.SourceObject.ID
}
