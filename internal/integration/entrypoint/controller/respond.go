package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketing-manager/backend/internal/integration/entrypoint/dto"
)

func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
	})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
	})
}
