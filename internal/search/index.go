// Package search keeps a Typesense product index in sync with tenant
// catalogs: incremental updates driven by product webhooks, full imports
// driven by a queued job, and a status flow that disables the webhooks
// when the engine is unreachable.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/saleorbridge/saleorbridge/internal/infra/config"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
)

// Document is the indexed shape of a product.
type Document struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Index is the slice of the search engine this package needs.
type Index interface {
	Ping(ctx context.Context) error
	UpsertDocument(ctx context.Context, doc Document) error
	DeleteDocument(ctx context.Context, id string) error
	ImportBatch(ctx context.Context, docs []Document) (failed int, err error)
}

// TypesenseIndex consolidates all Typesense usage behind the Index
// interface.
type TypesenseIndex struct {
	client        *typesense.Client
	collection    string
	healthTimeout time.Duration
}

func NewTypesenseIndex(cfg config.TypesenseConfig) *TypesenseIndex {
	return &TypesenseIndex{
		client: typesense.NewClient(
			typesense.WithServer(cfg.URL),
			typesense.WithAPIKey(cfg.APIKey),
		),
		collection:    cfg.Collection,
		healthTimeout: time.Duration(cfg.HealthTimeoutSeconds) * time.Second,
	}
}

// Ping checks the engine's health endpoint.
func (t *TypesenseIndex) Ping(ctx context.Context) error {
	ok, err := t.client.Health(ctx, t.healthTimeout)
	if err != nil {
		return fmt.Errorf("search: engine health check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("search: engine reported unhealthy")
	}
	return nil
}

// EnsureCollection creates the product collection when it does not exist
// yet. Called once at startup.
func (t *TypesenseIndex) EnsureCollection(ctx context.Context) error {
	if _, err := t.client.Collection(t.collection).Retrieve(ctx); err == nil {
		return nil
	}

	_, err := t.client.Collections().Create(ctx, &api.CollectionSchema{
		Name: t.collection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "slug", Type: "string"},
			{Name: "description", Type: "string", Optional: pointer.True()},
			{Name: "category", Type: "string", Optional: pointer.True(), Facet: pointer.True()},
		},
	})
	if err != nil {
		return fmt.Errorf("search: failed to create collection %s: %w", t.collection, err)
	}
	return nil
}

func (t *TypesenseIndex) UpsertDocument(ctx context.Context, doc Document) error {
	if _, err := t.client.Collection(t.collection).Documents().Upsert(ctx, doc); err != nil {
		return fmt.Errorf("search: failed to upsert document %s: %w", doc.ID, err)
	}
	return nil
}

func (t *TypesenseIndex) DeleteDocument(ctx context.Context, id string) error {
	if _, err := t.client.Collection(t.collection).Document(id).Delete(ctx); err != nil {
		return fmt.Errorf("search: failed to delete document %s: %w", id, err)
	}
	return nil
}

// ImportBatch upserts a page of documents in one request and returns how
// many of them the engine rejected.
func (t *TypesenseIndex) ImportBatch(ctx context.Context, docs []Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	batch := make([]any, 0, len(docs))
	for _, doc := range docs {
		batch = append(batch, doc)
	}

	results, err := t.client.Collection(t.collection).Documents().Import(ctx, batch, &api.ImportDocumentsParams{
		Action:    pointer.String(string(api.Upsert)),
		BatchSize: pointer.Int(len(batch)),
	})
	if err != nil {
		return len(docs), fmt.Errorf("search: batch import failed: %w", err)
	}

	failed := 0
	for _, res := range results {
		if !res.Success {
			failed++
		}
	}
	return failed, nil
}

// mapProduct converts a catalog product to its indexed shape.
func mapProduct(p saleor.Product) Document {
	return Document{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    p.Category,
	}
}
