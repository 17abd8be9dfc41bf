package services

import (
	"context"
	"mime/multipart"

	"shopper-backend/models"
)

// UserStore is implemented by repositories.UserRepository and
// repositories.MemoryUserRepository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	GetCart(ctx context.Context, id string) (models.Cart, error)
	IncrementCartItem(ctx context.Context, id, itemID string) error
	DecrementCartItem(ctx context.Context, id, itemID string) error
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindLatest(ctx context.Context, n int) ([]models.Product, error)
	FindByCategory(ctx context.Context, category string, n int) ([]models.Product, error)
}

type ImageStore interface {
	Save(ctx context.Context, header *multipart.FileHeader) (string, error)
}

type WelcomeMailer interface {
	SendWelcome(toEmail, name string) error
}
