package repositories

import (
	"context"
	"fmt"
	"sync"

	"productsvc/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// Products are returned in insertion order.
type MockProductRepository struct {
	products map[string]models.Product
	order    []string
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.GetByCondition(ctx, All())
}

// GetByCondition returns every product matching cond.
func (r *MockProductRepository) GetByCondition(_ context.Context, cond Condition) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, id := range r.order {
		if p := r.products[id]; cond.Matches(p) {
			productList = append(productList, clone(p))
		}
	}
	return productList, nil
}

// GetOne returns the first product matching cond.
func (r *MockProductRepository) GetOne(_ context.Context, cond Condition) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.products[id]; cond.Matches(p) {
			c := clone(p)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Add stores a new product.
func (r *MockProductRepository) Add(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ProductID == "" {
		product.ProductID = uuid.New().String()
	}
	if _, exists := r.products[product.ProductID]; exists {
		return nil, fmt.Errorf("product with ID %s already exists", product.ProductID)
	}
	r.products[product.ProductID] = clone(*product)
	r.order = append(r.order, product.ProductID)
	return product, nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ProductID]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found for update: %w", product.ProductID, ErrNotFound)
	}
	existing.ProductName = product.ProductName
	existing.UnitPrice = product.UnitPrice
	existing.QuantityInStock = product.QuantityInStock
	existing.Category = product.Category
	r.products[product.ProductID] = clone(existing)
	return &existing, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Ping always succeeds; it lets the in-memory store back the health check.
func (r *MockProductRepository) Ping(context.Context) error {
	return nil
}

func clone(p models.Product) models.Product {
	if p.UnitPrice != nil {
		v := *p.UnitPrice
		p.UnitPrice = &v
	}
	if p.QuantityInStock != nil {
		v := *p.QuantityInStock
		p.QuantityInStock = &v
	}
	return p
}
