package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/application/usecase/product"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/dto"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/middleware"
)

// ProductController handles product endpoints.
type ProductController struct {
	createUseCase *product.CreateProductUseCase
	listUseCase   *product.ListProductsUseCase
	updateUseCase *product.UpdateProductUseCase
	deleteUseCase *product.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	createUseCase *product.CreateProductUseCase,
	listUseCase *product.ListProductsUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := product.CreateProductInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Cost:        decimal.NewFromFloat(req.Cost),
		Platform:    entity.Platform(req.Platform),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{UserID: userID})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Update handles PUT /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid product ID")
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := product.UpdateProductInput{
		ProductID: productID,
		UserID:    userID,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Price != nil {
		input.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Cost != nil {
		input.Cost = decimal.NewFromFloat(*req.Cost)
	}
	if req.Platform != nil {
		input.Platform = entity.Platform(*req.Platform)
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid product ID")
		return
	}

	input := product.DeleteProductInput{
		ProductID: productID,
		UserID:    userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted"})
}

// handleProductError maps product errors to HTTP responses.
func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		ctx.JSON(statusForProductError(productErr.Code), dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func statusForProductError(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound,
		domainerror.ErrCodeNotAuthorizedProduct:
		return http.StatusNotFound
	case domainerror.ErrCodeProductNameExists,
		domainerror.ErrCodeProductHasSales:
		return http.StatusConflict
	case domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeNegativeCost:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
