package search

import (
	"net/http"

	"github.com/iamolegga/valmid"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/saleorbridge/saleorbridge/internal/httptools"
	"github.com/saleorbridge/saleorbridge/internal/infra/logger"
	oa "github.com/saleorbridge/saleorbridge/internal/openapi"
)

type StatusRequest struct {
	SaleorAPIURL string `in:"query=saleor_api_url" query:"saleor_api_url" validate:"required,url" description:"Tenant API URL to evaluate"`
}

type StatusResponse struct {
	Healthy          bool     `json:"healthy"                     description:"Whether the search engine answered the health probe"`
	DisabledWebhooks []string `json:"disabled_webhooks,omitempty" description:"Product webhooks turned off because the engine is unreachable"`
}

// RouteStatus exposes the webhook-status flow: probing it on an
// unhealthy engine disables the tenant's product webhooks.
type RouteStatus struct {
	tenants TenantLookup
	service *Service
}

func NewRouteStatus(tenants TenantLookup, service *Service) *RouteStatus {
	return &RouteStatus{tenants: tenants, service: service}
}

func (route *RouteStatus) Register(mux *http.ServeMux, r *openapi3.Reflector) {
	mux.Handle("GET /v1/search/status",
		valmid.Middleware[StatusRequest]()(route.Handler()),
	)
	RegisterStatusSchema(r)
}

func RegisterStatusSchema(r *openapi3.Reflector) {
	op, _ := r.NewOperationContext(http.MethodGet, "/v1/search/status")
	op.AddReqStructure(new(StatusRequest))
	op.AddRespStructure(oa.WrappedResponse[StatusResponse]{}, func(cu *openapi.ContentUnit) {
		cu.HTTPStatus = http.StatusOK
		cu.Description = "Search engine status for the tenant"
	})
	oa.AddErrorResponses(op)
	op.SetSummary("Check search engine status")
	op.SetDescription(
		"Probe the search engine. When it is unreachable the tenant's product webhooks are disabled so the platform stops delivering events that cannot be indexed.",
	)
	op.SetTags("Search")
	op.AddSecurity("ApiKeyAuth")
	r.AddOperation(op)
}

func (route *RouteStatus) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input := valmid.Get[StatusRequest](r)
		log := logger.FromContext(r.Context())

		auth, err := route.tenants.Resolve(input.SaleorAPIURL)
		if err != nil {
			log.Info("status check for unknown tenant", "tenant", input.SaleorAPIURL)
			httptools.BadRequest(w, r, "unknown tenant")
			return
		}

		status, err := route.service.CheckStatus(r.Context(), auth)
		if err != nil {
			log.Error("status flow failed", "error", err)
			httptools.InternalError(w, r)
			return
		}

		httptools.JSON(w, r, http.StatusOK, StatusResponse{
			Healthy:          status.Healthy,
			DisabledWebhooks: status.DisabledWebhooks,
		})
	})
}
