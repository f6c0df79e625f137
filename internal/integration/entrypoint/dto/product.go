package dto

import (
	"time"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Cost        float64 `json:"cost"`
	Platform    string  `json:"platform" binding:"required"`
}

// UpdateProductRequest represents the request body for product updates.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Cost        *float64 `json:"cost"`
	Platform    *string  `json:"platform"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Platform    string    `json:"platform"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse represents the response for product listing.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.InexactFloat64(),
		Cost:        product.Cost.InexactFloat64(),
		Platform:    string(product.Platform),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToProductListResponse converts a slice of products to a list response.
func ToProductListResponse(products []*entity.Product) ProductListResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return ProductListResponse{
		Products: responses,
		Total:    len(responses),
	}
}
