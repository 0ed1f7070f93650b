package impl

import (
	"context"
	"fmt"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/persistence/blobstore"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemoryStorage(t *testing.T) *blobstore.Storage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return blobstore.NewStorage(bucket, newTestLogger())
}

func newTestSearchHistory(t *testing.T, storage *blobstore.Storage, limit int) usecase.SearchHistoryUsecase {
	t.Helper()

	cfg := &config.Config{Persistence: &config.PersistenceConfig{RecentSearchLimit: limit}}

	return NewSearchHistoryService(storage, newTestStore(t), cfg)
}

func TestSearchHistory_MostRecentFirstCaseInsensitive(t *testing.T) {
	history := newTestSearchHistory(t, newMemoryStorage(t), 10)
	ctx := context.Background()

	for _, q := range []string{"shoes", "Hats", "bags"} {
		_, err := history.Add(ctx, q)
		require.NoError(t, err)
	}

	got, err := history.Add(ctx, "SHOES")
	require.NoError(t, err)
	assert.Equal(t, []string{"SHOES", "bags", "Hats"}, got)
}

func TestSearchHistory_Capped(t *testing.T) {
	history := newTestSearchHistory(t, newMemoryStorage(t), 3)
	ctx := context.Background()

	var got []string
	for i := range 5 {
		var err error
		got, err = history.Add(ctx, fmt.Sprintf("query %d", i))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"query 4", "query 3", "query 2"}, got)
}

func TestSearchHistory_BlankIgnored(t *testing.T) {
	history := newTestSearchHistory(t, newMemoryStorage(t), 10)

	got, err := history.Add(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchHistory_SurvivesRestart(t *testing.T) {
	storage := newMemoryStorage(t)
	ctx := context.Background()

	first := newTestSearchHistory(t, storage, 10)
	_, err := first.Add(ctx, "lamp")
	require.NoError(t, err)
	_, err = first.Add(ctx, "desk")
	require.NoError(t, err)

	second := newTestSearchHistory(t, storage, 10)
	got, err := second.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"desk", "lamp"}, got)

	got, err = second.Remove(ctx, "LAMP")
	require.NoError(t, err)
	assert.Equal(t, []string{"desk"}, got)

	require.NoError(t, second.Clear(ctx))
	got, err = newTestSearchHistory(t, storage, 10).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchHistory_StorageFailure(t *testing.T) {
	storage := mockService.NewMockStateStorage(t)
	history := NewSearchHistoryService(storage, newTestStore(t), &config.Config{})

	storage.EXPECT().Load(mock.Anything, RecentSearchesKey, mock.Anything).Return(false, errors.New("disk full"))

	_, err := history.List(context.Background())
	assert.ErrorContains(t, err, "disk full")
}

func TestProductService_SearchRecordsQuery(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	searches := mockUsecase.NewMockSearchHistoryUsecase(t)
	state := newTestStore(t)
	srv := NewProductService(productRepo, searches, state, newTestLogger())
	ctx := context.Background()

	searches.EXPECT().Add(ctx, "red shoes").Return([]string{"red shoes"}, nil)
	productRepo.EXPECT().Search(ctx, "red shoes", 1, 20).
		Return([]entity.Product{{ID: "p1", Name: "Red Shoe"}}, &entity.Pagination{Page: 1, Limit: 20, Total: 1}, nil)

	products, err := srv.Search(ctx, "  red shoes ", 1, 20)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Len(t, state.Products.Items(), 1)
}

func TestProductService_EmptyQueryNotRecorded(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	searches := mockUsecase.NewMockSearchHistoryUsecase(t)
	srv := NewProductService(productRepo, searches, newTestStore(t), newTestLogger())
	ctx := context.Background()

	productRepo.EXPECT().Search(ctx, "", 1, 20).Return([]entity.Product{}, nil, nil)

	_, err := srv.Search(ctx, "", 1, 20)
	require.NoError(t, err)
	searches.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCategoryService_Load(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	state := newTestStore(t)
	srv := NewCategoryService(categoryRepo, state, newTestLogger())
	ctx := context.Background()

	categoryRepo.EXPECT().ListCategories(ctx).Return([]entity.Category{{ID: "c1", Name: "Clothing"}}, nil)
	categoryRepo.EXPECT().ListSubcategories(ctx).Return([]entity.Subcategory{{ID: "s1", CategoryID: "c1", Name: "Shoes"}}, nil)
	categoryRepo.EXPECT().ListAttributes(ctx).Return([]entity.Attribute{}, nil)
	categoryRepo.EXPECT().ListProductTypes(ctx).Return([]entity.ProductType{}, nil)

	taxonomy, err := srv.Load(ctx)
	require.NoError(t, err)
	require.Len(t, taxonomy.Categories, 1)
	require.Len(t, taxonomy.Categories[0].Subcategories, 1)
	assert.Equal(t, "Shoes", taxonomy.Categories[0].Subcategories[0].Name)
	assert.NotNil(t, state.Categories.Get())
}

func TestCategoryService_Load_Failure(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	state := newTestStore(t)
	srv := NewCategoryService(categoryRepo, state, newTestLogger())
	ctx := context.Background()

	categoryRepo.EXPECT().ListCategories(ctx).Return(nil, errors.New("timeout"))

	_, err := srv.Load(ctx)
	require.Error(t, err)
	assert.Equal(t, "timeout", state.Categories.Snapshot().Error)
}
