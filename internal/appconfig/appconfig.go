// Package appconfig decodes a tenant's AvaTax configuration from the
// platform's private metadata store.
package appconfig

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MetadataKey is the private-metadata key holding the serialized config.
const MetadataKey = "app-config-v2"

// AppConfig is the tenant-specific provider configuration. Reconstructed
// per request from metadata; never persisted in-process.
type AppConfig struct {
	Credentials     Credentials `json:"credentials"     validate:"required"`
	CompanyCode     string      `json:"companyCode"`
	IsSandbox       bool        `json:"isSandbox"`
	IsAutocommit    bool        `json:"isAutocommit"`
	ShippingTaxCode string      `json:"shippingTaxCode"`
	Address         FromAddress `json:"address"         validate:"required"`
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// FromAddress is the tenant's ship-from address.
type FromAddress struct {
	Street  string `json:"street"  validate:"required"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"`
	Zip     string `json:"zip"     validate:"required"`
	Country string `json:"country" validate:"required,len=2,uppercase"`
}

var validate = validator.New()

// ConfigError reports missing or malformed tenant configuration.
type ConfigError struct {
	Reason string
	Cause  error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("appconfig: %s: %v", e.Reason, e.Cause)
	}
	return "appconfig: " + e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// InvalidAddressError reports a ship-from address that cannot be used for
// tax calculation. Distinct from ConfigError: the handler maps it to 400
// with a fixed address-configuration message.
type InvalidAddressError struct {
	Field string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("appconfig: invalid ship-from address: %s", e.Field)
}
