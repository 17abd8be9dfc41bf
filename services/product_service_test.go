package services

import (
	"context"
	"testing"

	"shopper-backend/libs"
	"shopper-backend/models"
	"shopper-backend/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProducts() *ProductService {
	return NewProductService(repositories.NewMemoryProductRepository(), nil)
}

func add(t *testing.T, s *ProductService, name, category string) *models.Product {
	t.Helper()
	p, err := s.AddProduct(context.Background(), models.CreateProductRequest{
		Name:     name,
		Category: category,
		NewPrice: 50,
		OldPrice: 80.5,
	})
	require.NoError(t, err)
	return p
}

func ids(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestAddProductAssignsIDs(t *testing.T) {
	s := newTestProducts()

	first := add(t, s, "first", "men")
	assert.Equal(t, 0, first.ID)
	assert.True(t, first.Available)
	assert.False(t, first.Date.IsZero())

	assert.Equal(t, 1, add(t, s, "second", "men").ID)
	assert.Equal(t, 2, add(t, s, "third", "kid").ID)

	_, err := s.RemoveProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, add(t, s, "fourth", "kid").ID)
}

func TestAddProductAvailability(t *testing.T) {
	s := newTestProducts()
	unavailable := false

	p, err := s.AddProduct(context.Background(), models.CreateProductRequest{
		Name:      "hidden",
		Category:  "men",
		Available: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, p.Available)
}

func TestRemoveProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestProducts()
	add(t, s, "a", "men")
	add(t, s, "b", "women")

	name, err := s.RemoveProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", name)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ids(all))

	name, err = s.RemoveProduct(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestListNewCollections(t *testing.T) {
	ctx := context.Background()
	s := newTestProducts()

	empty, err := s.ListNewCollections(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i := 0; i < 5; i++ {
		add(t, s, "p", "men")
	}
	few, err := s.ListNewCollections(ctx)
	require.NoError(t, err)
	assert.Len(t, few, 5)

	for i := 0; i < 7; i++ {
		add(t, s, "p", "men")
	}
	latest, err := s.ListNewCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10, 11}, ids(latest))
}

func TestListPopularInWomen(t *testing.T) {
	ctx := context.Background()
	s := newTestProducts()
	for _, c := range []string{"men", "women", "women", "kid", "women", "women", "women"} {
		add(t, s, c, c)
	}

	popular, err := s.ListPopularInWomen(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5}, ids(popular))

	related, err := s.ListRelated(ctx, "kid")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(related))
}

type removeDuringList struct {
	*repositories.MemoryProductRepository
	hook func()
}

func (r *removeDuringList) FindAll(ctx context.Context) ([]models.Product, error) {
	products, err := r.MemoryProductRepository.FindAll(ctx)
	if r.hook != nil {
		hook := r.hook
		r.hook = nil
		hook()
	}
	return products, err
}

func newCachedTestProducts(t *testing.T, store ProductStore) *ProductService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewProductService(store, libs.NewProductCache(client, testLogger()))
}

func TestCachedListingsFollowWrites(t *testing.T) {
	ctx := context.Background()
	s := newCachedTestProducts(t, repositories.NewMemoryProductRepository())
	add(t, s, "a", "women")

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ids(all))

	add(t, s, "b", "women")
	all, err = s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ids(all))

	_, err = s.RemoveProduct(ctx, 0)
	require.NoError(t, err)
	popular, err := s.ListPopularInWomen(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(popular))
}

func TestCachedListingIgnoresLoadRacingRemove(t *testing.T) {
	ctx := context.Background()
	store := &removeDuringList{MemoryProductRepository: repositories.NewMemoryProductRepository()}
	s := newCachedTestProducts(t, store)
	add(t, s, "a", "men")
	add(t, s, "b", "men")

	store.hook = func() {
		_, err := s.RemoveProduct(ctx, 1)
		require.NoError(t, err)
	}

	stale, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ids(stale))

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ids(all))
}
