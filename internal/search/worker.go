package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/saleorbridge/saleorbridge/internal/infra/metrics"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
	"maragu.dev/goqite/jobs"
)

// TenantLookup resolves auth data for a tenant API URL.
type TenantLookup interface {
	Resolve(apiURL string) (saleor.AuthData, error)
}

// Worker executes queued import jobs: paginate the tenant's catalog over
// the relay cursor, map each page to documents, and batch-import them.
type Worker struct {
	repo     *Repo
	tenants  TenantLookup
	client   PlatformClient
	index    Index
	notifier Notifier
	pageSize int
}

func NewWorker(
	repo *Repo,
	tenants TenantLookup,
	client PlatformClient,
	index Index,
	notifier Notifier,
	pageSize int,
) *Worker {
	return &Worker{
		repo:     repo,
		tenants:  tenants,
		client:   client,
		index:    index,
		notifier: notifier,
		pageSize: pageSize,
	}
}

// Register attaches the worker to the job runner.
func (w *Worker) Register(r interface {
	Register(name string, fn jobs.Func)
}) {
	r.Register(importJobName, w.Handle)
}

// Handle processes one import job from the queue. A returned error makes
// the queue redeliver the job, so only failures before the run starts
// propagate; a failing run is finished as failed instead.
func (w *Worker) Handle(ctx context.Context, body []byte) error {
	var job importJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("search: failed to unmarshal import job: %w", err)
	}

	auth, err := w.tenants.Resolve(job.TenantAPIURL)
	if err != nil {
		slog.Warn("import job for unknown tenant, skipping",
			"run_id", job.RunID,
			"tenant", job.TenantAPIURL,
		)
		return w.repo.FinishRun(ctx, job.RunID, RunStatusFailed)
	}

	if err := w.repo.MarkRunning(ctx, job.RunID); err != nil {
		return err
	}

	if err := w.runImport(ctx, job.RunID, auth); err != nil {
		slog.Error("import run failed",
			"run_id", job.RunID,
			"tenant", job.TenantAPIURL,
			"error", err,
		)
		return w.repo.FinishRun(ctx, job.RunID, RunStatusFailed)
	}
	return nil
}

func (w *Worker) runImport(ctx context.Context, runID string, auth saleor.AuthData) error {
	log := slog.With("run_id", runID, "tenant", auth.APIURL)

	var (
		cursor    string
		pages     int
		documents int
		errCount  int
	)

	for {
		page, err := w.client.FetchProductPage(ctx, auth, cursor, w.pageSize)
		if err != nil {
			return err
		}

		docs := make([]Document, 0, len(page.Products))
		for _, p := range page.Products {
			docs = append(docs, mapProduct(p))
		}

		failed, err := w.index.ImportBatch(ctx, docs)
		if err != nil {
			return err
		}

		pages++
		documents += len(docs) - failed
		errCount += failed
		metrics.RecordDocumentsIndexed("import", len(docs)-failed)
		metrics.SetImportProgress(auth.APIURL, float64(pages))
		if failed > 0 {
			metrics.RecordImportErrors(auth.APIURL, failed)
		}

		if err := w.repo.RecordProgress(ctx, runID, pages, documents, errCount); err != nil {
			return err
		}

		log.Debug("imported catalog page",
			"page", pages,
			"documents", documents,
			"errors", errCount,
		)

		if !page.HasNextPage {
			break
		}
		cursor = page.EndCursor
	}

	if err := w.repo.FinishRun(ctx, runID, RunStatusCompleted); err != nil {
		return err
	}

	log.Info("import run completed",
		"pages", pages,
		"documents", documents,
		"errors", errCount,
	)
	w.notifier.ImportCompleted(ctx, auth.APIURL, pages, documents, errCount)
	return nil
}
