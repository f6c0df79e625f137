package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketing-manager/backend/internal/application/usecase/platform"
	"github.com/marketing-manager/backend/internal/domain/entity"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/dto"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/middleware"
)

// PlatformController handles commerce-platform endpoints.
type PlatformController struct {
	testConnectionUseCase *platform.TestConnectionUseCase
}

// NewPlatformController creates a new platform controller instance.
func NewPlatformController(testConnectionUseCase *platform.TestConnectionUseCase) *PlatformController {
	return &PlatformController{
		testConnectionUseCase: testConnectionUseCase,
	}
}

// TestConnection handles POST /platforms/test-connection requests.
func (c *PlatformController) TestConnection(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.TestConnectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := platform.TestConnectionInput{
		Platform: entity.Platform(req.Platform),
	}

	output, err := c.testConnectionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondBadRequest(ctx, "Unsupported platform")
		return
	}

	ctx.JSON(http.StatusOK, dto.TestConnectionResponse{
		Platform:  output.Platform,
		Connected: output.Connected,
	})
}
