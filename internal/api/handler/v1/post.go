package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/globetrotter/api/internal/api/handler/v1/request"
	"github.com/globetrotter/api/internal/api/handler/v1/response"
	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/service"
)

type PostService interface {
	CreatePost(ctx context.Context, post domain.Post, author domain.User) (domain.Post, error)
	GetPosts(ctx context.Context, limit int) ([]domain.Post, error)
	LikePost(ctx context.Context, id string) error
}

type PostHandler struct {
	svc  PostService
	uSvc CurrentUserService
}

func NewPostHandler(svc PostService, uSvc CurrentUserService) *PostHandler {
	return &PostHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreatePost godoc
// @Summary      Publish a community post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePostRequest true "request body"
// @Success      200      {object}  domain.Post
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /posts [post]
// @Security     BearerAuth
func (h *PostHandler) HandleCreatePost(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	post, err := h.svc.CreatePost(ctx.Request.Context(), domain.Post{
		Title:   req.Title,
		Content: req.Content,
		TripID:  req.TripID,
	}, user)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreatePost -> h.svc.CreatePost -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// HandleGetPosts godoc
// @Summary      Read the community feed, newest first
// @Tags         posts
// @Produce      json
// @Param        limit  query     int false "maximum posts to return"
// @Success      200    {array}   domain.Post
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /posts [get]
func (h *PostHandler) HandleGetPosts(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit %q", raw)))
			return
		}
		limit = parsed
	}

	posts, err := h.svc.GetPosts(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPosts -> h.svc.GetPosts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// HandleLikePost godoc
// @Summary      Like a community post
// @Tags         posts
// @Produce      json
// @Param        postID  path      string true "post ID"
// @Success      200     {object}  response.MessageResponse
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /posts/{postID}/like [post]
// @Security     BearerAuth
func (h *PostHandler) HandleLikePost(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	postID := ctx.Param("postID")

	if err := h.svc.LikePost(ctx.Request.Context(), postID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("post", "ID", postID))
			return
		}

		err = fmt.Errorf("v1.HandleLikePost -> h.svc.LikePost -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Post liked"})
}
