package repositories

import (
	"context"
	"sync"
	"time"

	"shopper-backend/models"

	"github.com/google/uuid"
)

// MemoryUserRepository backs DB_DRIVER=memory and the test suites.
type MemoryUserRepository struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    map[string]*models.User{},
		byEmail: map[string]string{},
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return ErrEmailTaken
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CartData == nil {
		user.CartData = models.NewCart()
	}
	user.CreatedAt = time.Now()

	stored := *user
	stored.CartData = copyCart(user.CartData)
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID
	return nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return r.snapshot(id), nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil, ErrNotFound
	}
	return r.snapshot(id), nil
}

func (r *MemoryUserRepository) GetCart(_ context.Context, id string) (models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyCart(user.CartData), nil
}

func (r *MemoryUserRepository) IncrementCartItem(_ context.Context, id, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	user.CartData[itemID]++
	return nil
}

func (r *MemoryUserRepository) DecrementCartItem(_ context.Context, id, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if user.CartData[itemID] > 0 {
		user.CartData[itemID]--
	}
	return nil
}

func (r *MemoryUserRepository) snapshot(id string) *models.User {
	u := *r.byID[id]
	u.CartData = copyCart(u.CartData)
	return &u
}

func copyCart(cart models.Cart) models.Cart {
	out := make(models.Cart, len(cart))
	for k, v := range cart {
		out[k] = v
	}
	return out
}

// MemoryProductRepository keeps products in insertion order.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := 0
	for _, p := range r.products {
		if p.ID+1 > nextID {
			nextID = p.ID + 1
		}
	}

	product.ID = nextID
	product.Date = time.Now()
	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i:i], r.products[i+1:]...)
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Product{}, r.products...), nil
}

func (r *MemoryProductRepository) FindLatest(_ context.Context, n int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := len(r.products) - n
	if start < 0 {
		start = 0
	}
	return append([]models.Product{}, r.products[start:]...), nil
}

func (r *MemoryProductRepository) FindByCategory(_ context.Context, category string, n int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.products {
		if len(products) == n {
			break
		}
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}
