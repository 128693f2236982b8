// Package notify sends operational email alerts through Resend. Every
// send is fire-and-forget: a failed notification is logged and counted,
// never propagated to the caller.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/saleorbridge/saleorbridge/internal/infra/config"
	"github.com/saleorbridge/saleorbridge/internal/infra/metrics"
)

// EmailSender is the slice of the Resend client this package needs.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Notifier sends the operational alerts. A disabled notifier is valid
// and drops every send silently, so callers never branch on config.
type Notifier struct {
	sender  EmailSender
	from    string
	to      []string
	enabled bool
}

func New(cfg config.NotifyConfig) *Notifier {
	n := &Notifier{
		from:    cfg.From,
		to:      cfg.To,
		enabled: cfg.Enable,
	}
	if cfg.Enable {
		n.sender = resend.NewClient(cfg.APIKey).Emails
	}
	return n
}

// NewWithSender wires a custom sender. Used by tests.
func NewWithSender(sender EmailSender, from string, to []string) *Notifier {
	return &Notifier{sender: sender, from: from, to: to, enabled: true}
}

// ImportCompleted reports the outcome of a full catalog import.
func (n *Notifier) ImportCompleted(ctx context.Context, tenant string, pages, documents, errCount int) {
	subject := fmt.Sprintf("Search import finished for %s", tenant)
	body := fmt.Sprintf(
		"Full catalog import finished for %s.\n\nPages: %d\nDocuments indexed: %d\nErrors: %d\n",
		tenant, pages, documents, errCount,
	)
	n.send(ctx, "import_completed", subject, body)
}

// WebhooksDisabled reports that the status flow turned off the tenant's
// search webhooks because the search engine is unreachable.
func (n *Notifier) WebhooksDisabled(ctx context.Context, tenant string, webhooks []string) {
	subject := fmt.Sprintf("Search webhooks disabled for %s", tenant)
	body := fmt.Sprintf(
		"The search engine is unreachable. The following webhooks were disabled for %s:\n\n%s\n\nRe-enable them once the engine is healthy again.",
		tenant, strings.Join(webhooks, "\n"),
	)
	n.send(ctx, "webhooks_disabled", subject, body)
}

func (n *Notifier) send(ctx context.Context, kind, subject, body string) {
	if !n.enabled {
		return
	}

	_, err := n.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		Subject: subject,
		Text:    body,
	})
	metrics.RecordNotification(kind, err == nil)
	if err != nil {
		slog.Error("failed to send notification",
			"kind", kind,
			"subject", subject,
			"error", err,
		)
		return
	}
	slog.Debug("notification sent", "kind", kind, "subject", subject)
}
