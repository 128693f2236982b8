package taxes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/swaggest/openapi-go/openapi3"
	"go.opentelemetry.io/otel/attribute"

	"github.com/saleorbridge/saleorbridge/internal/appconfig"
	"github.com/saleorbridge/saleorbridge/internal/httptools"
	"github.com/saleorbridge/saleorbridge/internal/infra/logger"
	"github.com/saleorbridge/saleorbridge/internal/infra/metrics"
	"github.com/saleorbridge/saleorbridge/internal/infra/tracing"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
)

// WebhookVerifier verifies incoming webhook signatures.
type WebhookVerifier interface {
	VerifyWebhook(headers http.Header, body []byte) bool
}

// TenantResolver resolves the tenant auth data a webhook targets.
type TenantResolver interface {
	ResolveRequest(r *http.Request) (saleor.AuthData, error)
}

// Calculator runs the calculate-taxes use case.
type Calculator interface {
	Calculate(ctx context.Context, payload *saleor.TaxBasePayload, auth saleor.AuthData) (*Computation, TaxError)
}

type RouteWebhook struct {
	verifier  WebhookVerifier
	tenants   TenantResolver
	extractor ConfigExtractor
	usecase   Calculator
}

func NewRouteWebhook(
	verifier WebhookVerifier,
	tenants TenantResolver,
	extractor ConfigExtractor,
	usecase Calculator,
) *RouteWebhook {
	return &RouteWebhook{
		verifier:  verifier,
		tenants:   tenants,
		extractor: extractor,
		usecase:   usecase,
	}
}

func (route *RouteWebhook) Register(mux *http.ServeMux, _ *openapi3.Reflector) {
	mux.Handle("POST /v1/webhook/checkout-calculate-taxes", route.Handler())
	// Webhook intentionally excluded from OpenAPI documentation
}

func (route *RouteWebhook) Handler() http.Handler {
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

		payload, err := saleor.ParseTaxBasePayload(body)
		if err != nil {
			log.Info("failed to unmarshal webhook payload", "error", err)
			httptools.WebhookError(w, http.StatusBadRequest, "malformed payload")
			return
		}

		checkoutID := payload.CheckoutID()
		channel := payload.TaxBase.Channel.Slug

		ctx, span := tracing.Tracer().Start(r.Context(), "checkout-calculate-taxes")
		defer span.End()
		span.SetAttributes(
			attribute.String("saleor.version", payload.Version),
			attribute.String("saleor.channel_slug", channel),
			attribute.String("checkout.id", checkoutID),
		)

		auth, err := route.tenants.ResolveRequest(r)
		if err != nil {
			log.Info("failed to resolve tenant", "error", err)
			metrics.RecordTaxCalculation(channel, "unknown_tenant")
			httptools.WebhookError(w, http.StatusBadRequest,
				fmt.Sprintf("unknown tenant for checkout: %s", checkoutID))
			return
		}

		var entries []saleor.MetadataEntry
		if payload.Recipient != nil {
			entries = payload.Recipient.PrivateMetadata
		}

		// First extraction happens here: absent or malformed metadata is
		// answered before the use case ever runs.
		if _, err := route.extractor.Extract(ctx, entries); err != nil {
			var addrErr *appconfig.InvalidAddressError
			if errors.As(err, &addrErr) {
				log.Info("ship-from address configuration is invalid", "error", err)
				metrics.RecordTaxCalculation(channel, "invalid_address")
				httptools.WebhookError(w, http.StatusBadRequest,
					"Invalid address configuration: verify the ship-from address in the app settings")
				return
			}
			log.Info("app configuration is broken", "error", err)
			metrics.RecordTaxCalculation(channel, "config_broken")
			httptools.WebhookError(w, http.StatusBadRequest,
				fmt.Sprintf("app configuration is broken for checkout: %s", checkoutID))
			return
		}

		ctx = saleor.WithRecipientMetadata(ctx, entries)

		computation, taxErr := route.usecase.Calculate(ctx, payload, auth)

		// Exhaustive over the TaxError set. A variant without a mapping is
		// a bug and must fail loudly instead of producing an implicit
		// empty response.
		switch e := taxErr.(type) {
		case nil:
			metrics.RecordTaxCalculation(channel, "success")
			httptools.WebhookJSON(w, http.StatusOK, mapComputation(computation))

		case *ExpectedIncompletePayloadError:
			log.Info("payload incomplete", "missing", e.Missing)
			metrics.RecordTaxCalculation(channel, "incomplete_payload")
			httptools.WebhookError(w, http.StatusBadRequest,
				fmt.Sprintf("taxes cannot be calculated for checkout: %s: missing %s", checkoutID, e.Missing))

		case *ConfigBrokenError:
			log.Error("tenant configuration is broken", "error", e)
			metrics.RecordTaxCalculation(channel, "config_broken")
			httptools.WebhookError(w, http.StatusInternalServerError,
				fmt.Sprintf("app configuration is broken for checkout: %s", checkoutID))

		case *FailedCalculatingTaxesError:
			log.Error("provider failed to calculate taxes", "error", e)
			metrics.RecordTaxCalculation(channel, "calculation_failed")
			httptools.WebhookError(w, http.StatusInternalServerError,
				fmt.Sprintf("failed to calculate taxes for checkout: %s", checkoutID))

		case *UnhandledError:
			log.Error("unhandled error while calculating taxes", "error", e)
			metrics.RecordTaxCalculation(channel, "unhandled")
			httptools.WebhookError(w, http.StatusInternalServerError,
				fmt.Sprintf("unhandled error while calculating taxes for checkout: %s", checkoutID))

		default:
			panic(fmt.Sprintf("taxes: no response mapping for error variant %T", taxErr))
		}
	})
}

func mapComputation(c *Computation) saleor.CalculatedTaxesResponse {
	resp := saleor.CalculatedTaxesResponse{
		ShippingPriceGrossAmount: c.ShippingGross,
		ShippingPriceNetAmount:   c.ShippingNet,
		ShippingTaxRate:          c.ShippingTaxRate,
		Lines:                    make([]saleor.CalculatedTaxesLine, 0, len(c.Lines)),
	}
	for _, line := range c.Lines {
		resp.Lines = append(resp.Lines, saleor.CalculatedTaxesLine{
			TotalGrossAmount: line.TotalGross,
			TotalNetAmount:   line.TotalNet,
			TaxRate:          line.TaxRate,
		})
	}
	return resp
}
