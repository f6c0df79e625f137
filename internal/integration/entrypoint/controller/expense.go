package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/application/usecase/expense"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/dto"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		respondBadRequest(ctx, "Invalid campaign_id")
		return
	}

	date, err := time.Parse(requestDateLayout, req.Date)
	if err != nil {
		respondBadRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		return
	}

	input := expense.CreateExpenseInput{
		UserID:      userID,
		CampaignID:  campaignID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        date,
		Category:    entity.ExpenseCategory(req.Category),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests. An optional campaign_id query
// parameter scopes the listing to one campaign.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := expense.ListExpensesInput{UserID: userID}
	if raw := ctx.Query("campaign_id"); raw != "" {
		campaignID, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid campaign_id")
			return
		}
		input.CampaignID = &campaignID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid expense ID")
		return
	}

	input := expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted"})
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(statusForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func statusForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeExpenseCampaignNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNegativeExpenseAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
