package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopper-backend/models"

	"github.com/jackc/pgx/v5"
)

// productIDLock serialises id assignment across every process sharing the database.
const productIDLock int64 = 0x70726f64

const productColumns = `id, name, image, category, new_price, old_price, created_at, available`

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create assigns the next id (0 for an empty catalog, otherwise max+1) and
// inserts the product inside one transaction.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, productIDLock); err != nil {
		return fmt.Errorf("lock product ids: %w", err)
	}

	var nextID int
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(id) + 1, 0) FROM products`).Scan(&nextID); err != nil {
		return fmt.Errorf("next product id: %w", err)
	}

	query := `
		INSERT INTO products (id, name, image, category, new_price, old_price, created_at, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err = tx.QueryRow(ctx, query,
		nextID,
		product.Name,
		product.Image,
		product.Category,
		product.NewPrice,
		product.OldPrice,
		time.Now(),
		product.Available,
	).Scan(&product.Date)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	product.ID = nextID
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) (*models.Product, error) {
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY seq`
	return r.query(ctx, query)
}

// FindLatest returns the last n products in insertion order.
func (r *ProductRepository) FindLatest(ctx context.Context, n int) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM (
			SELECT seq, ` + productColumns + ` FROM products ORDER BY seq DESC LIMIT $1
		) latest
		ORDER BY seq
	`
	return r.query(ctx, query, n)
}

// FindByCategory returns the first n products of a category in insertion order.
func (r *ProductRepository) FindByCategory(ctx context.Context, category string, n int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY seq LIMIT $2`
	return r.query(ctx, query, category, n)
}

func (r *ProductRepository) query(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Image, &p.Category, &p.NewPrice, &p.OldPrice, &p.Date, &p.Available)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
