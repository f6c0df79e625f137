package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/application/usecase/sale"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/dto"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/middleware"
)

// SaleController handles sale endpoints.
type SaleController struct {
	recordUseCase *sale.RecordSaleUseCase
	listUseCase   *sale.ListSalesUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	recordUseCase *sale.RecordSaleUseCase,
	listUseCase *sale.ListSalesUseCase,
) *SaleController {
	return &SaleController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
	}
}

// Record handles POST /sales requests.
func (c *SaleController) Record(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.RecordSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		respondBadRequest(ctx, "Invalid product_id")
		return
	}

	var saleDate time.Time
	if req.SaleDate != "" {
		saleDate, err = time.Parse(requestDateLayout, req.SaleDate)
		if err != nil {
			respondBadRequest(ctx, "Invalid sale_date, expected YYYY-MM-DD")
			return
		}
	}

	input := sale.RecordSaleInput{
		UserID:    userID,
		ProductID: productID,
		Quantity:  req.Quantity,
		Platform:  entity.Platform(req.Platform),
		SaleDate:  saleDate,
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SaleResponse{
		ID:          output.SaleID.String(),
		ProductName: output.ProductName,
		Amount:      output.Amount.InexactFloat64(),
		Quantity:    output.Quantity,
		TotalValue:  output.TotalValue.InexactFloat64(),
		SaleDate:    output.SaleDate.Format(requestDateLayout),
		Platform:    string(output.Platform),
		CreatedAt:   output.CreatedAt,
	})
}

// List handles GET /sales requests. An optional limit query parameter
// caps the number of returned sales, newest first.
func (c *SaleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := sale.ListSalesInput{UserID: userID}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondBadRequest(ctx, "Invalid limit")
			return
		}
		input.Limit = &limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales))
}

// handleSaleError maps sale errors to HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(statusForSaleError(saleErr.Code), dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func statusForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeNegativeSaleAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
