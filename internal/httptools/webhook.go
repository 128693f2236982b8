package httptools

import (
	"encoding/json"
	"net/http"
)

// WebhookMessage is the body shape Saleor expects on non-200 webhook
// responses. Webhook endpoints never use the management API envelope.
type WebhookMessage struct {
	Message string `json:"message"`
}

// WebhookJSON writes a raw JSON body without the management API envelope.
// Saleor parses webhook responses against its own schema.
func WebhookJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WebhookError writes a `{"message": ...}` body with the given status.
func WebhookError(w http.ResponseWriter, status int, message string) {
	WebhookJSON(w, status, WebhookMessage{Message: message})
}
