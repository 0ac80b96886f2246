package repositories

import (
	"context"
	"errors"
	"fmt"

	"productsvc/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var mutableColumns = []string{"product_name", "unit_price", "quantity_in_stock", "category"}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByCondition retrieves every product matching cond.
func (r *GORMProductRepository) GetByCondition(ctx context.Context, cond Condition) ([]models.Product, error) {
	var products []models.Product
	if err := cond.apply(r.db.WithContext(ctx)).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by condition: %w", err)
	}
	return products, nil
}

// GetOne retrieves the first product matching cond.
func (r *GORMProductRepository) GetOne(ctx context.Context, cond Condition) (*models.Product, error) {
	var product models.Product
	if err := cond.apply(r.db.WithContext(ctx)).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// Add creates a new product in the database.
func (r *GORMProductRepository) Add(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ProductID == "" {
		product.ProductID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	var existing models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, "product_id = ?", product.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		existing.ProductName = product.ProductName
		existing.UnitPrice = product.UnitPrice
		existing.QuantityInStock = product.QuantityInStock
		existing.Category = product.Category

		// Select forces nil pointers to be written as NULL.
		res := tx.Model(&existing).Select(mutableColumns).Updates(&existing)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("product with ID %s not found for update: %w", product.ProductID, err)
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &existing, nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	db := r.db.WithContext(ctx)

	var existing models.Product
	if err := db.First(&existing, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up product %s for deletion: %w", id, err)
	}

	res := db.Delete(&existing)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete product: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
