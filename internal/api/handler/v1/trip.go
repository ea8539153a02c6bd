package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/globetrotter/api/internal/api/handler/v1/request"
	"github.com/globetrotter/api/internal/api/handler/v1/response"
	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/service"
)

type TripService interface {
	CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetTrips(ctx context.Context, userID string) ([]domain.Trip, error)
	GetTrip(ctx context.Context, id, userID string) (domain.Trip, error)
	UpdateTrip(ctx context.Context, id, userID string, update domain.TripUpdate) (domain.Trip, error)
	DeleteTrip(ctx context.Context, id, userID string) error
	PublishTrip(ctx context.Context, id, userID string) (string, error)
	GetPublicTrip(ctx context.Context, publicURL string) (domain.Trip, []domain.Stop, []domain.TripActivity, error)
	CreateStop(ctx context.Context, stop domain.Stop, userID string) (domain.Stop, error)
	GetStops(ctx context.Context, tripID, userID string) ([]domain.Stop, error)
	DeleteStop(ctx context.Context, id, userID string) error
	AddActivity(ctx context.Context, stopID, templateID, date, timeOfDay string, customCost *float64, userID string) (domain.TripActivity, error)
	GetActivities(ctx context.Context, tripID, userID string) ([]domain.TripActivity, error)
	DeleteActivity(ctx context.Context, id, userID string) error
	AddExpense(ctx context.Context, expense domain.Expense, userID string) (domain.Expense, error)
	GetExpenses(ctx context.Context, tripID, userID string) ([]domain.Expense, error)
	GetBudget(ctx context.Context, tripID, userID string) (domain.TripBudget, error)
}

type TripHandler struct {
	svc  TripService
	uSvc CurrentUserService
}

func NewTripHandler(svc TripService, uSvc CurrentUserService) *TripHandler {
	return &TripHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateTrip godoc
// @Summary      Create a new trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateTripRequest true "request body"
// @Success      200      {object}  domain.Trip
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /trips [post]
// @Security     BearerAuth
func (h *TripHandler) HandleCreateTrip(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	trip, err := h.svc.CreateTrip(ctx.Request.Context(), domain.Trip{
		UserID:      user.ID,
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		CoverPhoto:  req.CoverPhoto,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTrip -> h.svc.CreateTrip -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, trip)
}

// HandleGetTrips godoc
// @Summary      List the authenticated user's trips
// @Tags         trips
// @Produce      json
// @Success      200  {array}   domain.Trip
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /trips [get]
// @Security     BearerAuth
func (h *TripHandler) HandleGetTrips(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	trips, err := h.svc.GetTrips(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTrips -> h.svc.GetTrips -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, trips)
}

// HandleGetTrip godoc
// @Summary      Get one of the authenticated user's trips
// @Tags         trips
// @Produce      json
// @Param        tripID  path      string true "trip ID"
// @Success      200     {object}  domain.Trip
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /trips/{tripID} [get]
// @Security     BearerAuth
func (h *TripHandler) HandleGetTrip(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tripID := ctx.Param("tripID")

	trip, err := h.svc.GetTrip(ctx.Request.Context(), tripID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", tripID))
			return
		}

		err = fmt.Errorf("v1.HandleGetTrip -> h.svc.GetTrip -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, trip)
}

// HandleUpdateTrip godoc
// @Summary      Update a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripID   path      string true "trip ID"
// @Param        request  body      request.UpdateTripRequest true "request body"
// @Success      200      {object}  domain.Trip
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /trips/{tripID} [put]
// @Security     BearerAuth
func (h *TripHandler) HandleUpdateTrip(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tripID := ctx.Param("tripID")

	var req request.UpdateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	update := domain.TripUpdate{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		CoverPhoto:  req.CoverPhoto,
		IsPublic:    req.IsPublic,
	}
	if req.Status != nil {
		status, err := domain.ParseTripStatus(*req.Status)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		update.Status = &status
	}

	trip, err := h.svc.UpdateTrip(ctx.Request.Context(), tripID, user.ID, update)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", tripID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateTrip -> h.svc.UpdateTrip -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, trip)
}

// HandleDeleteTrip godoc
// @Summary      Delete a trip and everything under it
// @Tags         trips
// @Produce      json
// @Param        tripID  path      string true "trip ID"
// @Success      200     {object}  response.MessageResponse
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /trips/{tripID} [delete]
// @Security     BearerAuth
func (h *TripHandler) HandleDeleteTrip(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tripID := ctx.Param("tripID")

	if err := h.svc.DeleteTrip(ctx.Request.Context(), tripID, user.ID); err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", tripID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTrip -> h.svc.DeleteTrip -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Trip deleted"})
}

// HandlePublishTrip godoc
// @Summary      Publish a trip and mint its shareable URL token
// @Tags         trips
// @Produce      json
// @Param        tripID  path      string true "trip ID"
// @Success      200     {object}  response.PublishResponse
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /trips/{tripID}/publish [post]
// @Security     BearerAuth
func (h *TripHandler) HandlePublishTrip(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tripID := ctx.Param("tripID")

	publicURL, err := h.svc.PublishTrip(ctx.Request.Context(), tripID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", tripID))
			return
		}

		err = fmt.Errorf("v1.HandlePublishTrip -> h.svc.PublishTrip -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.PublishResponse{PublicURL: publicURL})
}

// HandleGetPublicTrip godoc
// @Summary      View a published trip by its URL token
// @Tags         trips
// @Produce      json
// @Param        publicURL  path      string true "public URL token"
// @Success      200        {object}  response.PublicTripResponse
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /public/trips/{publicURL} [get]
func (h *TripHandler) HandleGetPublicTrip(ctx *gin.Context) {
	publicURL := ctx.Param("publicURL")

	trip, stops, activities, err := h.svc.GetPublicTrip(ctx.Request.Context(), publicURL)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "publicURL", publicURL))
			return
		}

		err = fmt.Errorf("v1.HandleGetPublicTrip -> h.svc.GetPublicTrip -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.PublicTripResponse{
		Trip:       trip,
		Stops:      stops,
		Activities: activities,
	})
}

// HandleCreateStop godoc
// @Summary      Add a city stop to a trip
// @Tags         stops
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStopRequest true "request body"
// @Success      200      {object}  domain.Stop
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stops [post]
// @Security     BearerAuth
func (h *TripHandler) HandleCreateStop(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateStopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stop, err := h.svc.CreateStop(ctx.Request.Context(), domain.Stop{
		TripID:    req.TripID,
		CityID:    req.CityID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Order:     req.Order,
	}, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", req.TripID))
			return
		}
		if errors.Is(err, service.ErrCityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("city", "ID", req.CityID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateStop -> h.svc.CreateStop -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stop)
}

// HandleGetStops godoc
// @Summary      List a trip's stops in itinerary order
// @Tags         stops
// @Produce      json
// @Param        tripID  path      string true "trip ID"
// @Success      200     {array}   domain.Stop
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /trips/{tripID}/stops [get]
// @Security     BearerAuth
func (h *TripHandler) HandleGetStops(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tripID := ctx.Param("tripID")

	stops, err := h.svc.GetStops(ctx.Request.Context(), tripID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", tripID))
			return
		}

		err = fmt.Errorf("v1.HandleGetStops -> h.svc.GetStops -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stops)
}

// HandleDeleteStop godoc
// @Summary      Delete a stop and its activities
// @Tags         stops
// @Produce      json
// @Param        stopID  path      string true "stop ID"
// @Success      200     {object}  response.MessageResponse
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /stops/{stopID} [delete]
// @Security     BearerAuth
func (h *TripHandler) HandleDeleteStop(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stopID := ctx.Param("stopID")

	if err := h.svc.DeleteStop(ctx.Request.Context(), stopID, user.ID); err != nil {
		if errors.Is(err, service.ErrStopNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stop", "ID", stopID))
			return
		}
		if errors.Is(err, service.ErrNotTripOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteStop -> h.svc.DeleteStop -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Stop deleted"})
}

// HandleCreateActivity godoc
// @Summary      Add a template activity to a stop
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateTripActivityRequest true "request body"
// @Success      200      {object}  domain.TripActivity
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /trip-activities [post]
// @Security     BearerAuth
func (h *TripHandler) HandleCreateActivity(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateTripActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := h.svc.AddActivity(ctx.Request.Context(),
		req.StopID, req.ActivityTemplateID, req.Date, req.Time, req.CustomCost, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrStopNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stop", "ID", req.StopID))
			return
		}
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity template", "ID", req.ActivityTemplateID))
			return
		}
		if errors.Is(err, service.ErrNotTripOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateActivity -> h.svc.AddActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleGetActivities godoc
// @Summary      List a trip's scheduled activities
// @Tags         activities
// @Produce      json
// @Param        tripID  path      string true "trip ID"
// @Success      200     {array}   domain.TripActivity
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /trips/{tripID}/activities [get]
// @Security     BearerAuth
func (h *TripHandler) HandleGetActivities(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tripID := ctx.Param("tripID")

	activities, err := h.svc.GetActivities(ctx.Request.Context(), tripID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", tripID))
			return
		}

		err = fmt.Errorf("v1.HandleGetActivities -> h.svc.GetActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleDeleteActivity godoc
// @Summary      Remove an activity from a trip
// @Tags         activities
// @Produce      json
// @Param        activityID  path      string true "trip activity ID"
// @Success      200         {object}  response.MessageResponse
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /trip-activities/{activityID} [delete]
// @Security     BearerAuth
func (h *TripHandler) HandleDeleteActivity(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	activityID := ctx.Param("activityID")

	if err := h.svc.DeleteActivity(ctx.Request.Context(), activityID, user.ID); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip activity", "ID", activityID))
			return
		}
		if errors.Is(err, service.ErrNotTripOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteActivity -> h.svc.DeleteActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Activity removed"})
}

// HandleCreateExpense godoc
// @Summary      Record an expense against a trip
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateExpenseRequest true "request body"
// @Success      200      {object}  domain.Expense
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /expenses [post]
// @Security     BearerAuth
func (h *TripHandler) HandleCreateExpense(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := domain.ParseExpenseCategory(req.Category)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	expense, err := h.svc.AddExpense(ctx.Request.Context(), domain.Expense{
		TripID:      req.TripID,
		Category:    category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", req.TripID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateExpense -> h.svc.AddExpense -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, expense)
}

// HandleGetExpenses godoc
// @Summary      List a trip's expenses
// @Tags         expenses
// @Produce      json
// @Param        tripID  path      string true "trip ID"
// @Success      200     {array}   domain.Expense
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /trips/{tripID}/expenses [get]
// @Security     BearerAuth
func (h *TripHandler) HandleGetExpenses(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tripID := ctx.Param("tripID")

	expenses, err := h.svc.GetExpenses(ctx.Request.Context(), tripID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", tripID))
			return
		}

		err = fmt.Errorf("v1.HandleGetExpenses -> h.svc.GetExpenses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, expenses)
}

// HandleGetBudget godoc
// @Summary      Get a trip's budget summary
// @Tags         expenses
// @Produce      json
// @Param        tripID  path      string true "trip ID"
// @Success      200     {object}  domain.TripBudget
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /trips/{tripID}/budget [get]
// @Security     BearerAuth
func (h *TripHandler) HandleGetBudget(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tripID := ctx.Param("tripID")

	budget, err := h.svc.GetBudget(ctx.Request.Context(), tripID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("trip", "ID", tripID))
			return
		}

		err = fmt.Errorf("v1.HandleGetBudget -> h.svc.GetBudget -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, budget)
}
