package services

import (
	"context"
	"errors"

	"productsvc/internal/dto"
	"productsvc/internal/mappers"
	"productsvc/internal/repositories"
	"productsvc/internal/validators"
)

// ProductService handles business logic related to products.
// It keeps invalid or inconsistent data away from the repository.
type ProductService struct {
	repo      repositories.ProductRepository
	validator *validators.ProductValidator
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, validator *validators.ProductValidator) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validator,
	}
}

// GetProducts retrieves all products. An empty store yields an empty, non-nil slice.
func (s *ProductService) GetProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storageError("Failed to load products.", err)
	}
	return mappers.ProductsToResponses(products), nil
}

// GetProductsByCondition retrieves every product matching cond.
func (s *ProductService) GetProductsByCondition(ctx context.Context, cond repositories.Condition) ([]dto.ProductResponse, error) {
	products, err := s.repo.GetByCondition(ctx, cond)
	if err != nil {
		return nil, storageError("Failed to load products.", err)
	}
	return mappers.ProductsToResponses(products), nil
}

// GetProductByCondition retrieves the first product matching cond.
func (s *ProductService) GetProductByCondition(ctx context.Context, cond repositories.Condition) (*dto.ProductResponse, error) {
	product, err := s.repo.GetOne(ctx, cond)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("Product not found.", err)
		}
		return nil, storageError("Failed to load product.", err)
	}
	resp := mappers.ProductToResponse(*product)
	return &resp, nil
}

// AddProduct validates and stores a new product.
func (s *ProductService) AddProduct(ctx context.Context, req *dto.ProductAddRequest) (*dto.ProductResponse, error) {
	if req == nil {
		return nil, argumentError("Product data is required.")
	}
	if res := s.validator.ValidateAdd(req); !res.Valid {
		return nil, &Error{Kind: KindValidationFailed, Message: res.Error(), Fields: res.ByField()}
	}

	product := mappers.AddRequestToProduct(*req)
	added, err := s.repo.Add(ctx, &product)
	if err != nil {
		return nil, storageError("Failed to add the product.", err)
	}
	if added == nil {
		return nil, storageError("Failed to add the product.", nil)
	}

	resp := mappers.ProductToResponse(*added)
	return &resp, nil
}

// UpdateProduct overwrites an existing product. The existence check and the
// update are separate store calls; a product deleted in between is reported
// as not found rather than silently recreated.
func (s *ProductService) UpdateProduct(ctx context.Context, req *dto.ProductUpdateRequest) (*dto.ProductResponse, error) {
	if req == nil {
		return nil, argumentError("Product data is required.")
	}

	if _, err := s.repo.GetOne(ctx, repositories.ByID(req.ProductID)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("Product not found.", err)
		}
		return nil, storageError("Failed to load product.", err)
	}

	if res := s.validator.ValidateUpdate(req); !res.Valid {
		return nil, &Error{Kind: KindValidationFailed, Message: res.Error(), Fields: res.ByField()}
	}

	product := mappers.UpdateRequestToProduct(*req)
	updated, err := s.repo.Update(ctx, &product)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("Failed to update the product.", err)
		}
		return nil, storageError("Failed to update the product.", err)
	}
	if updated == nil {
		return nil, storageError("Failed to update the product.", nil)
	}

	resp := mappers.ProductToResponse(*updated)
	return &resp, nil
}

// DeleteProduct removes a product and reports whether a row was removed.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, argumentError("Product ID is required.")
	}

	if _, err := s.repo.GetOne(ctx, repositories.ByID(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, notFoundError("Product not found.", err)
		}
		return false, storageError("Failed to load product.", err)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, storageError("Failed to delete the product.", err)
	}
	return deleted, nil
}
