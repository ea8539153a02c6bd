package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/globetrotter/api/internal/api/handler/v1/response"
	"github.com/globetrotter/api/internal/api/middleware"
	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/service"
)

// CurrentUserService resolves the authenticated user's id (set by the
// JWT middleware) into a full user view.
type CurrentUserService interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// getUserFromContext loads the current user from the id the middleware
// stored. A token whose subject no longer names an existing user is an
// authentication failure, not a 404.
func getUserFromContext(ctx *gin.Context, svc CurrentUserService) (domain.User, *response.Err) {
	userID := ctx.GetString(middleware.CtxKeyUserID)
	if userID == "" {
		return domain.User{}, response.ErrUnauthorized("missing authentication")
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized("user not found")
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> svc.GetUser -> %w", err))
	}

	return user, nil
}
