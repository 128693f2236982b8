package search

import (
	"context"
	"encoding/json"
	"fmt"

	"maragu.dev/goqite"
	"maragu.dev/goqite/jobs"
)

const importJobName = "search-import"

// importJob is the queue message driving one full catalog import.
type importJob struct {
	RunID        string `json:"run_id"`
	TenantAPIURL string `json:"tenant_api_url"`
}

// Importer queues full catalog imports. Execution happens on the job
// runner so webhook latency is never affected by a running import.
type Importer struct {
	queue *goqite.Queue
	repo  *Repo
}

func NewImporter(queue *goqite.Queue, repo *Repo) *Importer {
	return &Importer{queue: queue, repo: repo}
}

// Enqueue records a queued run and hands it to the job runner. Returns
// the run id the caller can poll.
func (i *Importer) Enqueue(ctx context.Context, tenantAPIURL string) (string, error) {
	runID, err := i.repo.CreateRun(ctx, tenantAPIURL)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(importJob{RunID: runID, TenantAPIURL: tenantAPIURL})
	if err != nil {
		return "", fmt.Errorf("search: failed to marshal import job: %w", err)
	}

	if _, err := jobs.Create(ctx, i.queue, importJobName, goqite.Message{Body: body}); err != nil {
		return "", fmt.Errorf("search: failed to enqueue import job: %w", err)
	}
	return runID, nil
}
