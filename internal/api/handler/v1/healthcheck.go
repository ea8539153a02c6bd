package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/globetrotter/api/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         healthcheck
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.MessageResponse{
		Message: "GlobeTrotter API v1.0",
	})
}
