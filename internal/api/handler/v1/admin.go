package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/globetrotter/api/internal/api/handler/v1/response"
	"github.com/globetrotter/api/internal/domain"
)

type AdminService interface {
	GetStats(ctx context.Context) (domain.AdminStats, error)
}

type AdminHandler struct {
	svc  AdminService
	uSvc CurrentUserService
}

func NewAdminHandler(svc AdminService, uSvc CurrentUserService) *AdminHandler {
	return &AdminHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetStats godoc
// @Summary      Platform-wide statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.AdminStats
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetStats(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	stats, err := h.svc.GetStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStats -> h.svc.GetStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
