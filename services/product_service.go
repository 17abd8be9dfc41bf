package services

import (
	"context"
	"errors"

	"shopper-backend/libs"
	"shopper-backend/models"
	"shopper-backend/repositories"
)

const (
	NewCollectionsLimit = 8
	PopularLimit        = 4
	CategoryWomen       = "women"
)

type ProductService struct {
	products ProductStore
	cache    *libs.ProductCache
}

// NewProductService accepts a nil cache.
func NewProductService(products ProductStore, cache *libs.ProductCache) *ProductService {
	return &ProductService{products: products, cache: cache}
}

func (s *ProductService) AddProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := &models.Product{
		Name:      req.Name,
		Image:     req.Image,
		Category:  req.Category,
		NewPrice:  req.NewPrice,
		OldPrice:  req.OldPrice,
		Available: available,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

// RemoveProduct returns the removed product's name, or "" when nothing
// matched. A missing id is not an error.
func (s *ProductService) RemoveProduct(ctx context.Context, id int) (string, error) {
	removed, err := s.products.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	s.cache.Invalidate(ctx)
	return removed.Name, nil
}

func (s *ProductService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.cached(ctx, "all", func() ([]models.Product, error) {
		return s.products.FindAll(ctx)
	})
}

func (s *ProductService) ListNewCollections(ctx context.Context) ([]models.Product, error) {
	return s.cached(ctx, "newcollections", func() ([]models.Product, error) {
		return s.products.FindLatest(ctx, NewCollectionsLimit)
	})
}

func (s *ProductService) ListPopularInWomen(ctx context.Context) ([]models.Product, error) {
	return s.ListRelated(ctx, CategoryWomen)
}

func (s *ProductService) ListRelated(ctx context.Context, category string) ([]models.Product, error) {
	return s.cached(ctx, "category:"+category, func() ([]models.Product, error) {
		return s.products.FindByCategory(ctx, category, PopularLimit)
	})
}

func (s *ProductService) cached(ctx context.Context, key string, load func() ([]models.Product, error)) ([]models.Product, error) {
	gen, ok := s.cache.Generation(ctx)
	if !ok {
		return load()
	}

	var products []models.Product
	if s.cache.Get(ctx, gen, key, &products) {
		return products, nil
	}

	products, err := load()
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, gen, key, products)
	return products, nil
}
