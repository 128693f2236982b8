package search

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/swaggest/openapi-go/openapi3"

	"github.com/saleorbridge/saleorbridge/internal/httptools"
	"github.com/saleorbridge/saleorbridge/internal/infra/logger"
	"github.com/saleorbridge/saleorbridge/internal/infra/metrics"
)

// WebhookVerifier verifies incoming webhook signatures.
type WebhookVerifier interface {
	VerifyWebhook(headers http.Header, body []byte) bool
}

// productEventPayload is the body of the product-updated and
// product-deleted webhooks. Deletions only carry the id.
type productEventPayload struct {
	Product struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Category    *struct {
			Name string `json:"name"`
		} `json:"category"`
	} `json:"product"`
}

// RouteWebhook receives incremental product events and mirrors them into
// the index one document at a time.
type RouteWebhook struct {
	verifier WebhookVerifier
	index    Index
}

func NewRouteWebhook(verifier WebhookVerifier, index Index) *RouteWebhook {
	return &RouteWebhook{verifier: verifier, index: index}
}

func (route *RouteWebhook) Register(mux *http.ServeMux, _ *openapi3.Reflector) {
	mux.Handle("POST /v1/webhook/product-updated", route.UpdatedHandler())
	mux.Handle("POST /v1/webhook/product-deleted", route.DeletedHandler())
	// Webhooks intentionally excluded from OpenAPI documentation
}

func (route *RouteWebhook) UpdatedHandler() http.Handler {
	return route.handler("upsert", func(r *http.Request, payload *productEventPayload) error {
		doc := Document{
			ID:          payload.Product.ID,
			Name:        payload.Product.Name,
			Slug:        payload.Product.Slug,
			Description: payload.Product.Description,
		}
		if payload.Product.Category != nil {
			doc.Category = payload.Product.Category.Name
		}
		return route.index.UpsertDocument(r.Context(), doc)
	})
}

func (route *RouteWebhook) DeletedHandler() http.Handler {
	return route.handler("delete", func(r *http.Request, payload *productEventPayload) error {
		return route.index.DeleteDocument(r.Context(), payload.Product.ID)
	})
}

func (route *RouteWebhook) handler(
	operation string,
	apply func(r *http.Request, payload *productEventPayload) error,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Info("failed to read webhook payload", "error", err)
			httptools.WebhookError(w, http.StatusBadRequest, "failed to read payload")
			return
		}

		if !route.verifier.VerifyWebhook(r.Header, body) {
			log.Info("failed to validate webhook signature")
			httptools.WebhookError(w, http.StatusBadRequest, "invalid webhook signature")
			return
		}

		var payload productEventPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Info("failed to unmarshal webhook payload", "error", err)
			httptools.WebhookError(w, http.StatusBadRequest, "malformed payload")
			return
		}
		if payload.Product.ID == "" {
			httptools.WebhookError(w, http.StatusBadRequest, "payload has no product id")
			return
		}

		if err := apply(r, &payload); err != nil {
			log.Error("failed to apply product event",
				"operation", operation,
				"product_id", payload.Product.ID,
				"error", err,
			)
			httptools.WebhookError(w, http.StatusInternalServerError,
				fmt.Sprintf("failed to index product: %s", payload.Product.ID))
			return
		}

		metrics.RecordDocumentIndexed(operation)
		log.Debug("product event indexed",
			"operation", operation,
			"product_id", payload.Product.ID,
		)
		httptools.WriteStatus(w, http.StatusOK)
	})
}
