package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marketing-manager/backend/internal/application/usecase/roi"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/dto"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the ROI and profit aggregation endpoints.
type DashboardController struct {
	basicROIUseCase    *roi.GetBasicROIUseCase
	detailedROIUseCase *roi.GetDetailedROIUseCase
	salesProfitUseCase *roi.GetSalesProfitUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	basicROIUseCase *roi.GetBasicROIUseCase,
	detailedROIUseCase *roi.GetDetailedROIUseCase,
	salesProfitUseCase *roi.GetSalesProfitUseCase,
) *DashboardController {
	return &DashboardController{
		basicROIUseCase:    basicROIUseCase,
		detailedROIUseCase: detailedROIUseCase,
		salesProfitUseCase: salesProfitUseCase,
	}
}

// BasicROI handles GET /dashboard/roi requests.
func (c *DashboardController) BasicROI(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output := c.basicROIUseCase.Execute(ctx.Request.Context(), roi.GetBasicROIInput{
		UserID: userID,
	})

	ctx.JSON(http.StatusOK, dto.ToBasicROIResponse(output))
}

// DetailedROI handles GET /dashboard/roi/detailed requests.
func (c *DashboardController) DetailedROI(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output := c.detailedROIUseCase.Execute(ctx.Request.Context(), roi.GetDetailedROIInput{
		UserID: userID,
	})

	ctx.JSON(http.StatusOK, dto.ToDetailedROIResponse(output))
}

// SalesProfit handles GET /dashboard/sales-profit requests. Optional
// start_date and end_date query parameters bound the window; each side
// defaults to the user's sale history when absent.
func (c *DashboardController) SalesProfit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := roi.GetSalesProfitInput{UserID: userID}

	if raw := ctx.Query("start_date"); raw != "" {
		startDate, err := time.Parse(requestDateLayout, raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		input.StartDate = &startDate
	}
	if raw := ctx.Query("end_date"); raw != "" {
		endDate, err := time.Parse(requestDateLayout, raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.salesProfitUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidMetricsDateRange) {
			respondBadRequest(ctx, "end_date must not be before start_date")
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesProfitResponse(output))
}
