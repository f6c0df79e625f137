package dto

import (
	"time"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// RecordSaleRequest represents the request body for sale recording. Price
// and cost come from the referenced product, never from the client.
type RecordSaleRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Platform  string `json:"platform"`
	SaleDate  string `json:"sale_date"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	Amount      float64   `json:"amount"`
	Quantity    int       `json:"quantity"`
	TotalValue  float64   `json:"total_value"`
	SaleDate    string    `json:"sale_date"`
	Platform    string    `json:"platform"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaleListResponse represents the response for sale listing.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total int            `json:"total"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(sale *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:          sale.ID.String(),
		ProductName: sale.ProductName,
		Amount:      sale.Amount.InexactFloat64(),
		Quantity:    sale.Quantity,
		TotalValue:  sale.TotalValue().InexactFloat64(),
		SaleDate:    sale.SaleDate.Format("2006-01-02"),
		Platform:    string(sale.Platform),
		CreatedAt:   sale.CreatedAt,
	}
}

// ToSaleListResponse converts a slice of sales to a list response.
func ToSaleListResponse(sales []*entity.Sale) SaleListResponse {
	responses := make([]SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = ToSaleResponse(s)
	}
	return SaleListResponse{
		Sales: responses,
		Total: len(responses),
	}
}
