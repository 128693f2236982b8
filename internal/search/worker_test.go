package search_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saleorbridge/saleorbridge/internal/saleor"
	"github.com/saleorbridge/saleorbridge/internal/search"
	"github.com/saleorbridge/saleorbridge/internal/search/mocks"
)

func importJobBody(t *testing.T, runID, tenant string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"run_id":         runID,
		"tenant_api_url": tenant,
	})
	require.NoError(t, err)
	return body
}

func productPage(n int, cursor string, hasNext bool) *saleor.ProductPage {
	page := &saleor.ProductPage{EndCursor: cursor, HasNextPage: hasNext}
	for i := 0; i < n; i++ {
		page.Products = append(page.Products, saleor.Product{
			ID:   cursor + "-product-" + string(rune('a'+i)),
			Name: "Product",
			Slug: "product",
		})
	}
	return page
}

func TestWorker_Handle_TwoPages(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	runID, err := repo.CreateRun(ctx, testAuth.APIURL)
	require.NoError(t, err)

	tenants := mocks.NewMockTenantLookup(t)
	tenants.EXPECT().Resolve(testAuth.APIURL).Return(testAuth, nil)

	client := mocks.NewMockPlatformClient(t)
	client.EXPECT().
		FetchProductPage(mock.Anything, testAuth, "", 2).
		Return(productPage(2, "cursor-1", true), nil)
	client.EXPECT().
		FetchProductPage(mock.Anything, testAuth, "cursor-1", 2).
		Return(productPage(1, "cursor-2", false), nil)

	index := mocks.NewMockIndex(t)
	index.EXPECT().
		ImportBatch(mock.Anything, mock.MatchedBy(func(docs []search.Document) bool { return len(docs) == 2 })).
		Return(0, nil)
	index.EXPECT().
		ImportBatch(mock.Anything, mock.MatchedBy(func(docs []search.Document) bool { return len(docs) == 1 })).
		Return(1, nil)

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().ImportCompleted(mock.Anything, testAuth.APIURL, 2, 2, 1).Once()

	worker := search.NewWorker(repo, tenants, client, index, notifier, 2)
	require.NoError(t, worker.Handle(ctx, importJobBody(t, runID, testAuth.APIURL)))

	run, err := repo.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, search.RunStatusCompleted, run.Status)
	assert.Equal(t, 2, run.Pages)
	assert.Equal(t, 2, run.Documents)
	assert.Equal(t, 1, run.Errors)
}

func TestWorker_Handle_UnknownTenant(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	runID, err := repo.CreateRun(ctx, "https://gone.saleor.cloud/graphql/")
	require.NoError(t, err)

	tenants := mocks.NewMockTenantLookup(t)
	tenants.EXPECT().Resolve("https://gone.saleor.cloud/graphql/").Return(saleor.AuthData{}, assert.AnError)

	client := mocks.NewMockPlatformClient(t)
	index := mocks.NewMockIndex(t)
	notifier := mocks.NewMockNotifier(t)

	worker := search.NewWorker(repo, tenants, client, index, notifier, 2)

	// No error: an unknown tenant cannot be fixed by redelivery.
	require.NoError(t, worker.Handle(ctx, importJobBody(t, runID, "https://gone.saleor.cloud/graphql/")))

	run, err := repo.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, search.RunStatusFailed, run.Status)
}

func TestWorker_Handle_PageFetchFails(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	runID, err := repo.CreateRun(ctx, testAuth.APIURL)
	require.NoError(t, err)

	tenants := mocks.NewMockTenantLookup(t)
	tenants.EXPECT().Resolve(testAuth.APIURL).Return(testAuth, nil)

	client := mocks.NewMockPlatformClient(t)
	client.EXPECT().
		FetchProductPage(mock.Anything, testAuth, "", 2).
		Return(nil, assert.AnError)

	index := mocks.NewMockIndex(t)
	notifier := mocks.NewMockNotifier(t)

	worker := search.NewWorker(repo, tenants, client, index, notifier, 2)
	require.NoError(t, worker.Handle(ctx, importJobBody(t, runID, testAuth.APIURL)))

	run, err := repo.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, search.RunStatusFailed, run.Status)
}

func TestWorker_Handle_MalformedJob(t *testing.T) {
	repo := newSQLiteRepo(t)
	tenants := mocks.NewMockTenantLookup(t)
	client := mocks.NewMockPlatformClient(t)
	index := mocks.NewMockIndex(t)
	notifier := mocks.NewMockNotifier(t)

	worker := search.NewWorker(repo, tenants, client, index, notifier, 2)
	assert.Error(t, worker.Handle(context.Background(), []byte("not-json")))
}
