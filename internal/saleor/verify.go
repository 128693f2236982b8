package saleor

import (
	"fmt"
	"net/http"

	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"
)

// Verifier checks inbound webhook signatures against the app's signing
// secret shared with the platform.
type Verifier struct {
	wh *standardwebhooks.Webhook
}

func NewVerifier(secret string) (*Verifier, error) {
	wh, err := standardwebhooks.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("saleor: failed to create webhook verifier: %w", err)
	}
	return &Verifier{wh: wh}, nil
}

// VerifyWebhook reports whether body matches the signature headers.
func (v *Verifier) VerifyWebhook(headers http.Header, body []byte) bool {
	return v.wh.Verify(body, headers) == nil
}
