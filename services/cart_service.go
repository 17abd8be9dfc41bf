package services

import (
	"context"
	"errors"

	"shopper-backend/models"
	"shopper-backend/repositories"
)

type CartService struct {
	users UserStore
}

func NewCartService(users UserStore) *CartService {
	return &CartService{users: users}
}

func (s *CartService) AddItem(ctx context.Context, userID, itemID string) error {
	return userErr(s.users.IncrementCartItem(ctx, userID, itemID))
}

// RemoveItem never takes a slot below zero; an empty or missing slot is left alone.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	return userErr(s.users.DecrementCartItem(ctx, userID, itemID))
}

func (s *CartService) GetCart(ctx context.Context, userID string) (models.Cart, error) {
	cart, err := s.users.GetCart(ctx, userID)
	if err != nil {
		return nil, userErr(err)
	}
	return cart, nil
}

func userErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
