package saleor

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
)

// Client makes the handful of GraphQL calls this app needs against a
// tenant's API: catalog pagination for the search import and webhook
// activation toggling for the status flow.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ProductPage is one relay page of the catalog.
type ProductPage struct {
	Products    []Product
	EndCursor   string
	HasNextPage bool
}

type Product struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Category    string
}

// Webhook is a webhook registration on the tenant's app installation.
type Webhook struct {
	ID       string
	Name     string
	IsActive bool
}

const productsQuery = `
query Products($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    pageInfo {
      hasNextPage
      endCursor
    }
    edges {
      node {
        id
        name
        slug
        description
        category {
          name
        }
      }
    }
  }
}`

const appWebhooksQuery = `
query AppWebhooks {
  app {
    webhooks {
      id
      name
      isActive
    }
  }
}`

const webhookUpdateMutation = `
mutation WebhookUpdate($id: ID!, $active: Boolean!) {
  webhookUpdate(id: $id, input: {isActive: $active}) {
    errors {
      field
      message
    }
  }
}`

func (c *Client) gql(auth AuthData) *graphql.Client {
	return graphql.NewClient(auth.APIURL, graphql.WithHTTPClient(c.httpClient))
}

// FetchProductPage returns one page of the catalog starting after the
// given cursor. An empty cursor starts from the beginning.
func (c *Client) FetchProductPage(
	ctx context.Context,
	auth AuthData,
	after string,
	first int,
) (*ProductPage, error) {
	req := graphql.NewRequest(productsQuery)
	req.Var("first", first)
	if after == "" {
		req.Var("after", nil)
	} else {
		req.Var("after", after)
	}
	req.Header.Set("Authorization", "Bearer "+auth.Token)

	var resp struct {
		Products struct {
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
			Edges []struct {
				Node struct {
					ID          string `json:"id"`
					Name        string `json:"name"`
					Slug        string `json:"slug"`
					Description string `json:"description"`
					Category    *struct {
						Name string `json:"name"`
					} `json:"category"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}

	if err := c.gql(auth).Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("saleor: failed to fetch product page: %w", err)
	}

	page := &ProductPage{
		EndCursor:   resp.Products.PageInfo.EndCursor,
		HasNextPage: resp.Products.PageInfo.HasNextPage,
		Products:    make([]Product, 0, len(resp.Products.Edges)),
	}
	for _, edge := range resp.Products.Edges {
		p := Product{
			ID:          edge.Node.ID,
			Name:        edge.Node.Name,
			Slug:        edge.Node.Slug,
			Description: edge.Node.Description,
		}
		if edge.Node.Category != nil {
			p.Category = edge.Node.Category.Name
		}
		page.Products = append(page.Products, p)
	}

	return page, nil
}

// ListAppWebhooks returns the webhooks registered for this app on the
// tenant.
func (c *Client) ListAppWebhooks(ctx context.Context, auth AuthData) ([]Webhook, error) {
	req := graphql.NewRequest(appWebhooksQuery)
	req.Header.Set("Authorization", "Bearer "+auth.Token)

	var resp struct {
		App struct {
			Webhooks []struct {
				ID       string `json:"id"`
				Name     string `json:"name"`
				IsActive bool   `json:"isActive"`
			} `json:"webhooks"`
		} `json:"app"`
	}

	if err := c.gql(auth).Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("saleor: failed to list app webhooks: %w", err)
	}

	webhooks := make([]Webhook, 0, len(resp.App.Webhooks))
	for _, wh := range resp.App.Webhooks {
		webhooks = append(webhooks, Webhook{ID: wh.ID, Name: wh.Name, IsActive: wh.IsActive})
	}
	return webhooks, nil
}

// SetWebhookActive toggles a webhook registration on or off.
func (c *Client) SetWebhookActive(
	ctx context.Context,
	auth AuthData,
	webhookID string,
	active bool,
) error {
	req := graphql.NewRequest(webhookUpdateMutation)
	req.Var("id", webhookID)
	req.Var("active", active)
	req.Header.Set("Authorization", "Bearer "+auth.Token)

	var resp struct {
		WebhookUpdate struct {
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"webhookUpdate"`
	}

	if err := c.gql(auth).Run(ctx, req, &resp); err != nil {
		return fmt.Errorf("saleor: failed to update webhook %s: %w", webhookID, err)
	}
	if len(resp.WebhookUpdate.Errors) > 0 {
		first := resp.WebhookUpdate.Errors[0]
		return fmt.Errorf("saleor: webhook update rejected: %s: %s", first.Field, first.Message)
	}
	return nil
}
