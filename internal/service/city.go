package service

import (
	"context"
	"fmt"

	"github.com/globetrotter/api/internal/domain"
)

// searchResultCap bounds city search results.
const searchResultCap = 100

type CityRepository interface {
	Search(ctx context.Context, search, country string, limit int) ([]domain.City, error)
	FindByID(ctx context.Context, id string) (domain.City, error)
	FindTemplates(ctx context.Context, cityID string, category domain.ActivityCategory, maxCost *float64) ([]domain.ActivityTemplate, error)
}

type CityService struct {
	repo CityRepository
}

func NewCityService(repo CityRepository) *CityService {
	return &CityService{
		repo: repo,
	}
}

func (s *CityService) SearchCities(ctx context.Context, search, country string) ([]domain.City, error) {
	cities, err := s.repo.Search(ctx, search, country, searchResultCap)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return cities, nil
}

func (s *CityService) GetCity(ctx context.Context, id string) (domain.City, error) {
	city, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.City{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return city, nil
}

func (s *CityService) GetCityActivities(ctx context.Context, cityID string, category domain.ActivityCategory, maxCost *float64) ([]domain.ActivityTemplate, error) {
	templates, err := s.repo.FindTemplates(ctx, cityID, category, maxCost)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTemplates -> %w", err)
	}

	return templates, nil
}
