// Package dto holds the wire-facing request and response shapes for products.
package dto

import "productsvc/internal/models"

// ProductAddRequest is the body of POST /api/products.
type ProductAddRequest struct {
	ProductName     string                 `json:"productName" validate:"required,notblank,max=100"`
	UnitPrice       *float64               `json:"unitPrice" validate:"omitempty,gt=0"`
	QuantityInStock *int                   `json:"quantityInStock" validate:"required,gte=0,lte=2147483647"`
	Category        models.CategoryOptions `json:"category" validate:"required,category"`
}

// ProductUpdateRequest is the body of PUT /api/products.
type ProductUpdateRequest struct {
	ProductID       string                 `json:"productId" validate:"required,uuid"`
	ProductName     string                 `json:"productName" validate:"required,notblank,max=100"`
	UnitPrice       *float64               `json:"unitPrice" validate:"omitempty,gt=0"`
	QuantityInStock *int                   `json:"quantityInStock" validate:"required,gte=0,lte=2147483647"`
	Category        models.CategoryOptions `json:"category" validate:"required,category"`
}

// ProductResponse is the product representation returned to clients.
type ProductResponse struct {
	ProductID       string                 `json:"productId"`
	ProductName     string                 `json:"productName"`
	UnitPrice       *float64               `json:"unitPrice"`
	QuantityInStock *int                   `json:"quantityInStock"`
	Category        models.CategoryOptions `json:"category"`
}
