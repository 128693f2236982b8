package saleor

// CalculatedTaxesResponse is the body the platform expects on a successful
// checkout-calculate-taxes webhook. Field names follow the platform's
// response-building contract.
type CalculatedTaxesResponse struct {
	ShippingPriceGrossAmount float64               `json:"shipping_price_gross_amount"`
	ShippingPriceNetAmount   float64               `json:"shipping_price_net_amount"`
	ShippingTaxRate          float64               `json:"shipping_tax_rate"`
	Lines                    []CalculatedTaxesLine `json:"lines"`
}

type CalculatedTaxesLine struct {
	TotalGrossAmount float64 `json:"total_gross_amount"`
	TotalNetAmount   float64 `json:"total_net_amount"`
	TaxRate          float64 `json:"tax_rate"`
}
