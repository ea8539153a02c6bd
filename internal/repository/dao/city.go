package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCityNotFound     = errors.New("city not found")
	ErrTemplateNotFound = errors.New("activity template not found")
)

type City struct {
	ID string `gorm:"primaryKey"`

	Name        string  `gorm:"not null;index"`
	Country     string  `gorm:"not null;index"`
	CostIndex   float64 `gorm:"not null"`
	Popularity  int     `gorm:"not null"`
	Description string
	ImageURL    string
}

type ActivityTemplate struct {
	ID     string `gorm:"primaryKey"`
	CityID string `gorm:"not null;index"`

	Name          string `gorm:"not null"`
	Description   string
	Category      string  `gorm:"not null"`
	Duration      int     `gorm:"not null"`
	EstimatedCost float64 `gorm:"not null"`
	ImageURL      string
}

type CityDAO struct {
	db *gorm.DB
}

func NewCityDAO(db *gorm.DB) *CityDAO {
	return &CityDAO{
		db: db,
	}
}

// Search matches name or country case-insensitively as a substring,
// optionally narrowed by country, ordered by popularity descending.
// Results are capped at limit.
func (d *CityDAO) Search(ctx context.Context, search, country string, limit int) ([]City, error) {
	query := d.db.WithContext(ctx).Model(&City{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR country ILIKE ?", pattern, pattern)
	}
	if country != "" {
		query = query.Where("country ILIKE ?", "%"+country+"%")
	}

	var cities []City
	result := query.Order("popularity DESC").Limit(limit).Find(&cities)
	if result.Error != nil {
		return nil, result.Error
	}

	return cities, nil
}

func (d *CityDAO) FindByID(ctx context.Context, id string) (City, error) {
	var city City

	result := d.db.WithContext(ctx).First(&city, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return City{}, ErrCityNotFound
		}

		return City{}, result.Error
	}

	return city, nil
}

// FindTemplates filters a city's activity templates by optional category
// (exact match) and optional inclusive cost ceiling.
func (d *CityDAO) FindTemplates(ctx context.Context, cityID, category string, maxCost *float64) ([]ActivityTemplate, error) {
	query := d.db.WithContext(ctx).Where("city_id = ?", cityID)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if maxCost != nil {
		query = query.Where("estimated_cost <= ?", *maxCost)
	}

	var templates []ActivityTemplate
	result := query.Find(&templates)
	if result.Error != nil {
		return nil, result.Error
	}

	return templates, nil
}

func (d *CityDAO) FindTemplateByID(ctx context.Context, id string) (ActivityTemplate, error) {
	var template ActivityTemplate

	result := d.db.WithContext(ctx).First(&template, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ActivityTemplate{}, ErrTemplateNotFound
		}

		return ActivityTemplate{}, result.Error
	}

	return template, nil
}

func (d *CityDAO) InsertCity(ctx context.Context, city City) (City, error) {
	if city.ID == "" {
		city.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&city)
	if result.Error != nil {
		return City{}, result.Error
	}

	return city, nil
}

func (d *CityDAO) InsertTemplate(ctx context.Context, template ActivityTemplate) (ActivityTemplate, error) {
	if template.ID == "" {
		template.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&template)
	if result.Error != nil {
		return ActivityTemplate{}, result.Error
	}

	return template, nil
}

func (d *CityDAO) CountCities(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&City{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
