package search

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saleorbridge/saleorbridge/internal/infra/db"
)

// Import run states. Queued runs wait for the job runner; a run leaves
// running for exactly one of the terminal states.
const (
	RunStatusQueued    = "queued"
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// ImportRun tracks one full catalog import.
type ImportRun struct {
	ID           string
	TenantAPIURL string
	Status       string
	Pages        int
	Documents    int
	Errors       int
	StartedAt    int64
	FinishedAt   *int64
}

var ErrRunNotFound = errors.New("search: import run not found")

type Repo struct {
	db *db.DB
}

func NewRepo(database *db.DB) *Repo {
	return &Repo{db: database}
}

// CreateRun inserts a queued run and returns its id.
func (r *Repo) CreateRun(ctx context.Context, tenantAPIURL string) (string, error) {
	id := uuid.New().String()
	query := r.db.Rebind(`
		INSERT INTO import_runs (id, tenant_api_url, status, started_at)
		VALUES ($1, $2, $3, $4)`)

	_, err := r.db.ExecContext(ctx, query, id, tenantAPIURL, RunStatusQueued, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("search: failed to create import run: %w", err)
	}
	return id, nil
}

// MarkRunning flips a queued run to running.
func (r *Repo) MarkRunning(ctx context.Context, id string) error {
	query := r.db.Rebind(`
		UPDATE import_runs SET status = $1, started_at = $2 WHERE id = $3`)

	if _, err := r.db.ExecContext(ctx, query, RunStatusRunning, time.Now().Unix(), id); err != nil {
		return fmt.Errorf("search: failed to mark run running: %w", err)
	}
	return nil
}

// RecordProgress stores cumulative page/document/error counts for a run.
func (r *Repo) RecordProgress(ctx context.Context, id string, pages, documents, errCount int) error {
	query := r.db.Rebind(`
		UPDATE import_runs SET pages = $1, documents = $2, errors = $3 WHERE id = $4`)

	if _, err := r.db.ExecContext(ctx, query, pages, documents, errCount, id); err != nil {
		return fmt.Errorf("search: failed to record run progress: %w", err)
	}
	return nil
}

// FinishRun moves a run to a terminal state.
func (r *Repo) FinishRun(ctx context.Context, id, status string) error {
	query := r.db.Rebind(`
		UPDATE import_runs SET status = $1, finished_at = $2 WHERE id = $3`)

	if _, err := r.db.ExecContext(ctx, query, status, time.Now().Unix(), id); err != nil {
		return fmt.Errorf("search: failed to finish run: %w", err)
	}
	return nil
}

// GetRun returns a run by id.
func (r *Repo) GetRun(ctx context.Context, id string) (*ImportRun, error) {
	query := r.db.Rebind(`
		SELECT id, tenant_api_url, status, pages, documents, errors, started_at, finished_at
		FROM import_runs WHERE id = $1`)

	var run ImportRun
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.TenantAPIURL,
		&run.Status,
		&run.Pages,
		&run.Documents,
		&run.Errors,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("search: failed to get run: %w", err)
	}
	return &run, nil
}

// LatestRun returns the most recent run for a tenant, or ErrRunNotFound.
func (r *Repo) LatestRun(ctx context.Context, tenantAPIURL string) (*ImportRun, error) {
	query := r.db.Rebind(`
		SELECT id, tenant_api_url, status, pages, documents, errors, started_at, finished_at
		FROM import_runs WHERE tenant_api_url = $1
		ORDER BY started_at DESC LIMIT 1`)

	var run ImportRun
	err := r.db.QueryRowContext(ctx, query, tenantAPIURL).Scan(
		&run.ID,
		&run.TenantAPIURL,
		&run.Status,
		&run.Pages,
		&run.Documents,
		&run.Errors,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("search: failed to get latest run: %w", err)
	}
	return &run, nil
}
