package repository

import (
	"context"
	"fmt"

	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/repository/dao"
)

var (
	ErrCityNotFound     = dao.ErrCityNotFound
	ErrTemplateNotFound = dao.ErrTemplateNotFound
)

type CityDAO interface {
	Search(ctx context.Context, search, country string, limit int) ([]dao.City, error)
	FindByID(ctx context.Context, id string) (dao.City, error)
	FindTemplates(ctx context.Context, cityID, category string, maxCost *float64) ([]dao.ActivityTemplate, error)
	FindTemplateByID(ctx context.Context, id string) (dao.ActivityTemplate, error)
	InsertCity(ctx context.Context, city dao.City) (dao.City, error)
	InsertTemplate(ctx context.Context, template dao.ActivityTemplate) (dao.ActivityTemplate, error)
	CountCities(ctx context.Context) (int64, error)
}

type CityRepository struct {
	dao CityDAO
}

func NewCityRepository(dao CityDAO) *CityRepository {
	return &CityRepository{
		dao: dao,
	}
}

func (r *CityRepository) Search(ctx context.Context, search, country string, limit int) ([]domain.City, error) {
	found, err := r.dao.Search(ctx, search, country, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	cities := make([]domain.City, 0, len(found))
	for _, city := range found {
		cities = append(cities, r.cityDaoToDomain(city))
	}

	return cities, nil
}

func (r *CityRepository) FindByID(ctx context.Context, id string) (domain.City, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.City{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.cityDaoToDomain(found), nil
}

func (r *CityRepository) FindTemplates(ctx context.Context, cityID string, category domain.ActivityCategory, maxCost *float64) ([]domain.ActivityTemplate, error) {
	found, err := r.dao.FindTemplates(ctx, cityID, string(category), maxCost)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTemplates -> %w", err)
	}

	templates := make([]domain.ActivityTemplate, 0, len(found))
	for _, template := range found {
		templates = append(templates, r.templateDaoToDomain(template))
	}

	return templates, nil
}

func (r *CityRepository) FindTemplateByID(ctx context.Context, id string) (domain.ActivityTemplate, error) {
	found, err := r.dao.FindTemplateByID(ctx, id)
	if err != nil {
		return domain.ActivityTemplate{}, fmt.Errorf("r.dao.FindTemplateByID -> %w", err)
	}

	return r.templateDaoToDomain(found), nil
}

func (r *CityRepository) CreateCity(ctx context.Context, city domain.City) (domain.City, error) {
	created, err := r.dao.InsertCity(ctx, dao.City{
		ID:          city.ID,
		Name:        city.Name,
		Country:     city.Country,
		CostIndex:   city.CostIndex,
		Popularity:  city.Popularity,
		Description: city.Description,
		ImageURL:    city.ImageURL,
	})
	if err != nil {
		return domain.City{}, fmt.Errorf("r.dao.InsertCity -> %w", err)
	}

	return r.cityDaoToDomain(created), nil
}

func (r *CityRepository) CreateTemplate(ctx context.Context, template domain.ActivityTemplate) (domain.ActivityTemplate, error) {
	created, err := r.dao.InsertTemplate(ctx, dao.ActivityTemplate{
		ID:            template.ID,
		CityID:        template.CityID,
		Name:          template.Name,
		Description:   template.Description,
		Category:      string(template.Category),
		Duration:      template.Duration,
		EstimatedCost: template.EstimatedCost,
		ImageURL:      template.ImageURL,
	})
	if err != nil {
		return domain.ActivityTemplate{}, fmt.Errorf("r.dao.InsertTemplate -> %w", err)
	}

	return r.templateDaoToDomain(created), nil
}

func (r *CityRepository) CountCities(ctx context.Context) (int64, error) {
	count, err := r.dao.CountCities(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountCities -> %w", err)
	}

	return count, nil
}

func (r *CityRepository) cityDaoToDomain(c dao.City) domain.City {
	return domain.City{
		ID:          c.ID,
		Name:        c.Name,
		Country:     c.Country,
		CostIndex:   c.CostIndex,
		Popularity:  c.Popularity,
		Description: c.Description,
		ImageURL:    c.ImageURL,
	}
}

func (r *CityRepository) templateDaoToDomain(t dao.ActivityTemplate) domain.ActivityTemplate {
	return domain.ActivityTemplate{
		ID:            t.ID,
		CityID:        t.CityID,
		Name:          t.Name,
		Description:   t.Description,
		Category:      domain.ActivityCategory(t.Category),
		Duration:      t.Duration,
		EstimatedCost: t.EstimatedCost,
		ImageURL:      t.ImageURL,
	}
}
