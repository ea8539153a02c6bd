package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/globetrotter/api/internal/api/handler/v1/response"
	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/service"
)

type CityService interface {
	SearchCities(ctx context.Context, search, country string) ([]domain.City, error)
	GetCity(ctx context.Context, id string) (domain.City, error)
	GetCityActivities(ctx context.Context, cityID string, category domain.ActivityCategory, maxCost *float64) ([]domain.ActivityTemplate, error)
}

type CityHandler struct {
	svc CityService
}

func NewCityHandler(svc CityService) *CityHandler {
	return &CityHandler{
		svc: svc,
	}
}

// HandleSearchCities godoc
// @Summary      Search the city catalog
// @Tags         cities
// @Produce      json
// @Param        search   query     string false "substring of city name or country"
// @Param        country  query     string false "exact country filter"
// @Success      200      {array}   domain.City
// @Failure      500      {object}  response.Err
// @Router       /cities [get]
func (h *CityHandler) HandleSearchCities(ctx *gin.Context) {
	search := ctx.Query("search")
	country := ctx.Query("country")

	cities, err := h.svc.SearchCities(ctx.Request.Context(), search, country)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchCities -> h.svc.SearchCities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, cities)
}

// HandleGetCity godoc
// @Summary      Get a city by ID
// @Tags         cities
// @Produce      json
// @Param        cityID  path      string true "city ID"
// @Success      200     {object}  domain.City
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /cities/{cityID} [get]
func (h *CityHandler) HandleGetCity(ctx *gin.Context) {
	cityID := ctx.Param("cityID")

	city, err := h.svc.GetCity(ctx.Request.Context(), cityID)
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("city", "ID", cityID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCity -> h.svc.GetCity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, city)
}

// HandleGetCityActivities godoc
// @Summary      List a city's activity templates
// @Tags         cities
// @Produce      json
// @Param        cityID    path      string  true  "city ID"
// @Param        category  query     string  false "activity category filter"
// @Param        max_cost  query     number  false "inclusive cost ceiling"
// @Success      200       {array}   domain.ActivityTemplate
// @Failure      400       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /cities/{cityID}/activities [get]
func (h *CityHandler) HandleGetCityActivities(ctx *gin.Context) {
	cityID := ctx.Param("cityID")

	var category domain.ActivityCategory
	if raw := ctx.Query("category"); raw != "" {
		parsed, err := domain.ParseActivityCategory(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		category = parsed
	}

	var maxCost *float64
	if raw := ctx.Query("max_cost"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid max_cost %q", raw)))
			return
		}
		maxCost = &parsed
	}

	templates, err := h.svc.GetCityActivities(ctx.Request.Context(), cityID, category, maxCost)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCityActivities -> h.svc.GetCityActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, templates)
}
