package saleor

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/saleorbridge/saleorbridge/internal/infra/config"
)

// HeaderAPIURL carries the tenant's GraphQL endpoint on every webhook.
const HeaderAPIURL = "Saleor-Api-Url"

// TenantRegistry resolves platform auth data for installed tenants,
// keyed by API URL.
type TenantRegistry struct {
	appID   string
	tenants map[string]config.TenantConfig
}

func NewTenantRegistry(cfg *config.SaleorConfig) *TenantRegistry {
	tenants := make(map[string]config.TenantConfig, len(cfg.Tenants))
	for _, t := range cfg.Tenants {
		tenants[normalizeAPIURL(t.APIURL)] = t
	}
	return &TenantRegistry{appID: cfg.AppID, tenants: tenants}
}

// Resolve returns the auth data for the given API URL.
func (reg *TenantRegistry) Resolve(apiURL string) (AuthData, error) {
	t, ok := reg.tenants[normalizeAPIURL(apiURL)]
	if !ok {
		return AuthData{}, fmt.Errorf("saleor: unknown tenant: %s", apiURL)
	}
	return AuthData{APIURL: t.APIURL, Token: t.Token, AppID: reg.appID}, nil
}

// ResolveRequest resolves the tenant from the webhook's API URL header.
func (reg *TenantRegistry) ResolveRequest(r *http.Request) (AuthData, error) {
	apiURL := r.Header.Get(HeaderAPIURL)
	if apiURL == "" {
		return AuthData{}, fmt.Errorf("saleor: missing %s header", HeaderAPIURL)
	}
	return reg.Resolve(apiURL)
}

func normalizeAPIURL(u string) string {
	return strings.TrimSuffix(strings.ToLower(u), "/")
}
