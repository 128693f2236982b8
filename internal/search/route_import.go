package search

import (
	"errors"
	"net/http"

	"github.com/iamolegga/valmid"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/saleorbridge/saleorbridge/internal/httptools"
	"github.com/saleorbridge/saleorbridge/internal/infra/logger"
	oa "github.com/saleorbridge/saleorbridge/internal/openapi"
)

type ImportRequest struct {
	SaleorAPIURL string `in:"query=saleor_api_url" query:"saleor_api_url" validate:"required,url" description:"Tenant whose catalog should be imported"`
}

type ImportAcceptedResponse struct {
	RunID string `json:"run_id" description:"Identifier for polling the import run"`
}

type ImportRunRequest struct {
	RunID string `in:"query=run_id" query:"run_id" validate:"required,uuid" description:"Import run to look up"`
}

type ImportRunResponse struct {
	RunID      string `json:"run_id"`
	Status     string `json:"status"                enum:"queued,running,completed,failed"`
	Pages      int    `json:"pages"                 description:"Catalog pages processed so far"`
	Documents  int    `json:"documents"             description:"Documents accepted by the engine"`
	Errors     int    `json:"errors"                description:"Documents the engine rejected"`
	StartedAt  int64  `json:"started_at"`
	FinishedAt *int64 `json:"finished_at,omitempty"`
}

// RouteImport triggers and inspects full catalog imports. The trigger
// only enqueues: the job runner does the paging so this endpoint returns
// immediately.
type RouteImport struct {
	tenants  TenantLookup
	importer *Importer
	repo     *Repo
}

func NewRouteImport(tenants TenantLookup, importer *Importer, repo *Repo) *RouteImport {
	return &RouteImport{tenants: tenants, importer: importer, repo: repo}
}

func (route *RouteImport) Register(mux *http.ServeMux, r *openapi3.Reflector) {
	mux.Handle("POST /v1/search/import",
		valmid.Middleware[ImportRequest]()(route.TriggerHandler()),
	)
	mux.Handle("GET /v1/search/import",
		valmid.Middleware[ImportRunRequest]()(route.RunHandler()),
	)
	RegisterImportSchema(r)
}

func RegisterImportSchema(r *openapi3.Reflector) {
	trigger, _ := r.NewOperationContext(http.MethodPost, "/v1/search/import")
	trigger.AddReqStructure(new(ImportRequest))
	trigger.AddRespStructure(oa.WrappedResponse[ImportAcceptedResponse]{}, func(cu *openapi.ContentUnit) {
		cu.HTTPStatus = http.StatusAccepted
		cu.Description = "Import accepted and queued"
	})
	oa.AddErrorResponses(trigger)
	trigger.SetSummary("Trigger full catalog import")
	trigger.SetDescription(
		"Queue a full import of the tenant's product catalog into the search engine. Returns a run_id to poll.",
	)
	trigger.SetTags("Search")
	trigger.AddSecurity("ApiKeyAuth")
	r.AddOperation(trigger)

	run, _ := r.NewOperationContext(http.MethodGet, "/v1/search/import")
	run.AddReqStructure(new(ImportRunRequest))
	run.AddRespStructure(oa.WrappedResponse[ImportRunResponse]{}, func(cu *openapi.ContentUnit) {
		cu.HTTPStatus = http.StatusOK
		cu.Description = "Import run progress"
	})
	oa.AddErrorResponses(run)
	run.SetSummary("Get import run progress")
	run.SetTags("Search")
	run.AddSecurity("ApiKeyAuth")
	r.AddOperation(run)
}

func (route *RouteImport) TriggerHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input := valmid.Get[ImportRequest](r)
		log := logger.FromContext(r.Context())

		auth, err := route.tenants.Resolve(input.SaleorAPIURL)
		if err != nil {
			log.Info("import trigger for unknown tenant", "tenant", input.SaleorAPIURL)
			httptools.BadRequest(w, r, "unknown tenant")
			return
		}

		runID, err := route.importer.Enqueue(r.Context(), auth.APIURL)
		if err != nil {
			log.Error("failed to enqueue import", "error", err)
			httptools.InternalError(w, r)
			return
		}

		log.Info("import queued", "run_id", runID, "tenant", auth.APIURL)
		httptools.JSON(w, r, http.StatusAccepted, ImportAcceptedResponse{RunID: runID})
	})
}

func (route *RouteImport) RunHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input := valmid.Get[ImportRunRequest](r)
		log := logger.FromContext(r.Context())

		run, err := route.repo.GetRun(r.Context(), input.RunID)
		if errors.Is(err, ErrRunNotFound) {
			httptools.Error(w, r, http.StatusNotFound,
				httptools.ErrTypeNotFound, "Not Found", "import run not found")
			return
		}
		if err != nil {
			log.Error("failed to load import run", "error", err)
			httptools.InternalError(w, r)
			return
		}

		httptools.JSON(w, r, http.StatusOK, ImportRunResponse{
			RunID:      run.ID,
			Status:     run.Status,
			Pages:      run.Pages,
			Documents:  run.Documents,
			Errors:     run.Errors,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
		})
	})
}
