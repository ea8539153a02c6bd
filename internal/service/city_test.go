package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/repository"
)

type mockCityRepo struct {
	searchFn        func(ctx context.Context, search, country string, limit int) ([]domain.City, error)
	findByIDFn      func(ctx context.Context, id string) (domain.City, error)
	findTemplatesFn func(ctx context.Context, cityID string, category domain.ActivityCategory, maxCost *float64) ([]domain.ActivityTemplate, error)
}

var _ CityRepository = (*mockCityRepo)(nil)

func (m *mockCityRepo) Search(ctx context.Context, search, country string, limit int) ([]domain.City, error) {
	return m.searchFn(ctx, search, country, limit)
}

func (m *mockCityRepo) FindByID(ctx context.Context, id string) (domain.City, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockCityRepo) FindTemplates(ctx context.Context, cityID string, category domain.ActivityCategory, maxCost *float64) ([]domain.ActivityTemplate, error) {
	return m.findTemplatesFn(ctx, cityID, category, maxCost)
}

func TestCityService_SearchCities_CapsResults(t *testing.T) {
	var gotLimit int
	repo := &mockCityRepo{
		searchFn: func(ctx context.Context, search, country string, limit int) ([]domain.City, error) {
			gotLimit = limit
			return []domain.City{{ID: "city-1", Name: "Paris"}}, nil
		},
	}
	svc := NewCityService(repo)

	cities, err := svc.SearchCities(context.Background(), "par", "")
	require.NoError(t, err)
	assert.Len(t, cities, 1)
	assert.Equal(t, searchResultCap, gotLimit)
}

func TestCityService_GetCity_NotFound(t *testing.T) {
	repo := &mockCityRepo{
		findByIDFn: func(ctx context.Context, id string) (domain.City, error) {
			return domain.City{}, repository.ErrCityNotFound
		},
	}
	svc := NewCityService(repo)

	_, err := svc.GetCity(context.Background(), "city-404")
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestCityService_GetCityActivities_PassesFilters(t *testing.T) {
	var gotCategory domain.ActivityCategory
	var gotMaxCost *float64
	repo := &mockCityRepo{
		findTemplatesFn: func(ctx context.Context, cityID string, category domain.ActivityCategory, maxCost *float64) ([]domain.ActivityTemplate, error) {
			gotCategory = category
			gotMaxCost = maxCost
			return nil, nil
		},
	}
	svc := NewCityService(repo)

	ceiling := 50.0
	_, err := svc.GetCityActivities(context.Background(), "city-1", domain.ActivityFood, &ceiling)
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityFood, gotCategory)
	require.NotNil(t, gotMaxCost)
	assert.Equal(t, 50.0, *gotMaxCost)
}
