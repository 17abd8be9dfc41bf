package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopper-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CartData == nil {
		user.CartData = models.NewCart()
	}

	query := `
		INSERT INTO users (id, name, email, password, cart_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		user.CartData,
		time.Now(),
	).Scan(&user.CreatedAt)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, password, cart_data, created_at FROM users WHERE email = $1`
	return r.scanOne(ctx, query, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	query := `SELECT id, name, email, password, cart_data, created_at FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *UserRepository) GetCart(ctx context.Context, id string) (models.Cart, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var cart models.Cart
	err := r.db.QueryRow(ctx, `SELECT cart_data FROM users WHERE id = $1`, id).Scan(&cart)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select cart: %w", err)
	}
	return cart, nil
}

// IncrementCartItem bumps one slot in a single statement, so concurrent
// requests for the same user never overwrite each other.
func (r *UserRepository) IncrementCartItem(ctx context.Context, id, itemID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	query := `
		UPDATE users
		SET cart_data = jsonb_set(
			cart_data,
			ARRAY[$2::text],
			to_jsonb(COALESCE((cart_data->>$2::text)::int, 0) + 1),
			true
		)
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, itemID)
	if err != nil {
		return fmt.Errorf("increment cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementCartItem lowers a slot only while it is positive.
func (r *UserRepository) DecrementCartItem(ctx context.Context, id, itemID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	query := `
		UPDATE users
		SET cart_data = jsonb_set(
			cart_data,
			ARRAY[$2::text],
			to_jsonb((cart_data->>$2::text)::int - 1)
		)
		WHERE id = $1 AND COALESCE((cart_data->>$2::text)::int, 0) > 0
	`
	tag, err := r.db.Exec(ctx, query, id, itemID)
	if err != nil {
		return fmt.Errorf("decrement cart item: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CartData,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}
