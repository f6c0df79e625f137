package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/application/usecase/campaign"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/dto"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/middleware"
)

const requestDateLayout = "2006-01-02"

// CampaignController handles campaign endpoints.
type CampaignController struct {
	createUseCase *campaign.CreateCampaignUseCase
	listUseCase   *campaign.ListCampaignsUseCase
	deleteUseCase *campaign.DeleteCampaignUseCase
}

// NewCampaignController creates a new campaign controller instance.
func NewCampaignController(
	createUseCase *campaign.CreateCampaignUseCase,
	listUseCase *campaign.ListCampaignsUseCase,
	deleteUseCase *campaign.DeleteCampaignUseCase,
) *CampaignController {
	return &CampaignController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /campaigns requests.
func (c *CampaignController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	startDate, err := time.Parse(requestDateLayout, req.StartDate)
	if err != nil {
		respondBadRequest(ctx, "Invalid start_date, expected YYYY-MM-DD")
		return
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse(requestDateLayout, req.EndDate)
		if err != nil {
			respondBadRequest(ctx, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		endDate = &parsed
	}

	input := campaign.CreateCampaignInput{
		UserID:    userID,
		Name:      req.Name,
		Platform:  entity.Platform(req.Platform),
		Budget:    decimal.NewFromFloat(req.Budget),
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCampaignError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCampaignResponse(output.Campaign))
}

// List handles GET /campaigns requests.
func (c *CampaignController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), campaign.ListCampaignsInput{UserID: userID})
	if err != nil {
		c.handleCampaignError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCampaignListResponse(output.Campaigns))
}

// Delete handles DELETE /campaigns/:id requests.
func (c *CampaignController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	campaignID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid campaign ID")
		return
	}

	input := campaign.DeleteCampaignInput{
		CampaignID: campaignID,
		UserID:     userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCampaignError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Campaign deleted"})
}

// handleCampaignError maps campaign errors to HTTP responses.
func (c *CampaignController) handleCampaignError(ctx *gin.Context, err error) {
	var campaignErr *domainerror.CampaignError
	if errors.As(err, &campaignErr) {
		ctx.JSON(statusForCampaignError(campaignErr.Code), dto.ErrorResponse{
			Error: campaignErr.Message,
			Code:  string(campaignErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func statusForCampaignError(code domainerror.CampaignErrorCode) int {
	switch code {
	case domainerror.ErrCodeCampaignNotFound,
		domainerror.ErrCodeNotAuthorizedCampaign:
		return http.StatusNotFound
	case domainerror.ErrCodeCampaignHasExpenses:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBudget,
		domainerror.ErrCodeEndBeforeStart:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
