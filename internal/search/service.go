package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/saleorbridge/saleorbridge/internal/infra/metrics"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
)

// productWebhookNames are the app's incremental-indexing registrations on
// the platform. Only these get disabled by the status flow; unrelated
// registrations stay untouched.
var productWebhookNames = map[string]struct{}{
	"product-updated": {},
	"product-deleted": {},
}

// PlatformClient is the slice of the GraphQL client the status flow and
// the importer need.
type PlatformClient interface {
	FetchProductPage(ctx context.Context, auth saleor.AuthData, after string, first int) (*saleor.ProductPage, error)
	ListAppWebhooks(ctx context.Context, auth saleor.AuthData) ([]saleor.Webhook, error)
	SetWebhookActive(ctx context.Context, auth saleor.AuthData, webhookID string, active bool) error
}

// Notifier is the operational-alerts collaborator.
type Notifier interface {
	ImportCompleted(ctx context.Context, tenant string, pages, documents, errCount int)
	WebhooksDisabled(ctx context.Context, tenant string, webhooks []string)
}

// Status is the outcome of one health evaluation.
type Status struct {
	Healthy          bool
	DisabledWebhooks []string
}

// Service runs the webhook-status flow: ping the engine, and when it is
// unreachable turn off the product webhooks so the platform stops
// delivering events nobody can index.
type Service struct {
	index    Index
	client   PlatformClient
	notifier Notifier
}

func NewService(index Index, client PlatformClient, notifier Notifier) *Service {
	return &Service{index: index, client: client, notifier: notifier}
}

// CheckStatus evaluates engine health for one tenant. A healthy engine is
// a no-op; an unreachable one disables the tenant's active product
// webhooks and reports which ones were turned off.
func (s *Service) CheckStatus(ctx context.Context, auth saleor.AuthData) (*Status, error) {
	log := slog.With("tenant", auth.APIURL)

	pingErr := s.index.Ping(ctx)
	if pingErr == nil {
		return &Status{Healthy: true}, nil
	}
	log.Warn("search engine is unreachable", "error", pingErr)

	webhooks, err := s.client.ListAppWebhooks(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("search: failed to list webhooks: %w", err)
	}

	disabled := make([]string, 0, len(webhooks))
	for _, wh := range webhooks {
		if _, managed := productWebhookNames[wh.Name]; !managed || !wh.IsActive {
			continue
		}
		if err := s.client.SetWebhookActive(ctx, auth, wh.ID, false); err != nil {
			return nil, fmt.Errorf("search: failed to disable webhook %s: %w", wh.Name, err)
		}
		disabled = append(disabled, wh.Name)
		log.Info("disabled product webhook", "webhook", wh.Name)
	}

	if len(disabled) > 0 {
		metrics.RecordWebhooksDisabled(auth.APIURL)
		s.notifier.WebhooksDisabled(ctx, auth.APIURL, disabled)
	}

	return &Status{Healthy: false, DisabledWebhooks: disabled}, nil
}
