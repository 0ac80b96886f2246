// Package mappers converts between the wire DTOs and the persisted Product entity.
// Conversions are field-for-field; no business rules live here.
package mappers

import (
	"productsvc/internal/dto"
	"productsvc/internal/models"
)

// AddRequestToProduct maps an add request to a new entity without an ID.
func AddRequestToProduct(req dto.ProductAddRequest) models.Product {
	return models.Product{
		ProductName:     req.ProductName,
		UnitPrice:       copyFloat(req.UnitPrice),
		QuantityInStock: copyInt(req.QuantityInStock),
		Category:        req.Category,
	}
}

// UpdateRequestToProduct maps an update request to the entity it addresses.
func UpdateRequestToProduct(req dto.ProductUpdateRequest) models.Product {
	return models.Product{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		UnitPrice:       copyFloat(req.UnitPrice),
		QuantityInStock: copyInt(req.QuantityInStock),
		Category:        req.Category,
	}
}

// ProductToResponse maps a stored entity to its response shape.
func ProductToResponse(p models.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:       p.ProductID,
		ProductName:     p.ProductName,
		UnitPrice:       copyFloat(p.UnitPrice),
		QuantityInStock: copyInt(p.QuantityInStock),
		Category:        p.Category,
	}
}

// ProductsToResponses maps a slice of entities. The result is never nil.
func ProductsToResponses(products []models.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToResponse(p))
	}
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
