package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saleorbridge/saleorbridge/internal/saleor"
	"github.com/saleorbridge/saleorbridge/internal/search"
	"github.com/saleorbridge/saleorbridge/internal/search/mocks"
)

var testAuth = saleor.AuthData{
	APIURL: "https://demo.saleor.cloud/graphql/",
	Token:  "app-token",
	AppID:  "app-id",
}

func TestCheckStatus_Healthy(t *testing.T) {
	index := mocks.NewMockIndex(t)
	index.EXPECT().Ping(mock.Anything).Return(nil)

	// Healthy engine: the platform must not be touched.
	client := mocks.NewMockPlatformClient(t)
	notifier := mocks.NewMockNotifier(t)

	svc := search.NewService(index, client, notifier)
	status, err := svc.CheckStatus(context.Background(), testAuth)

	require.NoError(t, err)
	assert.True(t, status.Healthy)
	assert.Empty(t, status.DisabledWebhooks)
}

func TestCheckStatus_UnhealthyDisablesProductWebhooks(t *testing.T) {
	index := mocks.NewMockIndex(t)
	index.EXPECT().Ping(mock.Anything).Return(assert.AnError)

	client := mocks.NewMockPlatformClient(t)
	client.EXPECT().ListAppWebhooks(mock.Anything, testAuth).Return([]saleor.Webhook{
		{ID: "wh-1", Name: "product-updated", IsActive: true},
		{ID: "wh-2", Name: "product-deleted", IsActive: true},
		{ID: "wh-3", Name: "order-created", IsActive: true},
		{ID: "wh-4", Name: "product-updated", IsActive: false},
	}, nil)
	client.EXPECT().SetWebhookActive(mock.Anything, testAuth, "wh-1", false).Return(nil)
	client.EXPECT().SetWebhookActive(mock.Anything, testAuth, "wh-2", false).Return(nil)

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().
		WebhooksDisabled(mock.Anything, testAuth.APIURL, []string{"product-updated", "product-deleted"}).
		Once()

	svc := search.NewService(index, client, notifier)
	status, err := svc.CheckStatus(context.Background(), testAuth)

	require.NoError(t, err)
	assert.False(t, status.Healthy)
	assert.Equal(t, []string{"product-updated", "product-deleted"}, status.DisabledWebhooks)
}

func TestCheckStatus_UnhealthyNothingToDisable(t *testing.T) {
	index := mocks.NewMockIndex(t)
	index.EXPECT().Ping(mock.Anything).Return(assert.AnError)

	client := mocks.NewMockPlatformClient(t)
	client.EXPECT().ListAppWebhooks(mock.Anything, testAuth).Return([]saleor.Webhook{
		{ID: "wh-1", Name: "product-updated", IsActive: false},
	}, nil)

	// Nothing disabled, nothing to announce.
	notifier := mocks.NewMockNotifier(t)

	svc := search.NewService(index, client, notifier)
	status, err := svc.CheckStatus(context.Background(), testAuth)

	require.NoError(t, err)
	assert.False(t, status.Healthy)
	assert.Empty(t, status.DisabledWebhooks)
}

func TestCheckStatus_ListWebhooksFails(t *testing.T) {
	index := mocks.NewMockIndex(t)
	index.EXPECT().Ping(mock.Anything).Return(assert.AnError)

	client := mocks.NewMockPlatformClient(t)
	client.EXPECT().ListAppWebhooks(mock.Anything, testAuth).Return(nil, assert.AnError)

	notifier := mocks.NewMockNotifier(t)

	svc := search.NewService(index, client, notifier)
	_, err := svc.CheckStatus(context.Background(), testAuth)

	assert.Error(t, err)
}

func TestCheckStatus_DisableFails(t *testing.T) {
	index := mocks.NewMockIndex(t)
	index.EXPECT().Ping(mock.Anything).Return(assert.AnError)

	client := mocks.NewMockPlatformClient(t)
	client.EXPECT().ListAppWebhooks(mock.Anything, testAuth).Return([]saleor.Webhook{
		{ID: "wh-1", Name: "product-updated", IsActive: true},
	}, nil)
	client.EXPECT().SetWebhookActive(mock.Anything, testAuth, "wh-1", false).Return(assert.AnError)

	notifier := mocks.NewMockNotifier(t)

	svc := search.NewService(index, client, notifier)
	_, err := svc.CheckStatus(context.Background(), testAuth)

	assert.Error(t, err)
}
