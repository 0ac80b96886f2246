package repositories

import (
	"context"
	"errors"

	"productsvc/internal/models"
)

// ErrNotFound is returned when an addressed product does not exist.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByCondition(ctx context.Context, cond Condition) ([]models.Product, error)
	// GetOne returns the first product matching cond, or ErrNotFound.
	GetOne(ctx context.Context, cond Condition) (*models.Product, error)
	Add(ctx context.Context, product *models.Product) (*models.Product, error)
	// Update overwrites name, price, quantity and category of an existing product.
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	// Delete reports whether a row was removed. A missing id yields false and no error.
	Delete(ctx context.Context, id string) (bool, error)
}
