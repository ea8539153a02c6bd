package service

import (
	"context"
	"fmt"

	"github.com/globetrotter/api/internal/domain"
)

// topCityCount is how many most-visited cities the stats report ranks.
const topCityCount = 10

type StatsUserRepository interface {
	Count(ctx context.Context) (int64, error)
}

type StatsTripRepository interface {
	CountTrips(ctx context.Context) (int64, error)
	CountActivities(ctx context.Context) (int64, error)
	TopCities(ctx context.Context, limit int) ([]domain.CityVisits, error)
}

type StatsPostRepository interface {
	Count(ctx context.Context) (int64, error)
}

type AdminService struct {
	users StatsUserRepository
	trips StatsTripRepository
	posts StatsPostRepository
}

func NewAdminService(users StatsUserRepository, trips StatsTripRepository, posts StatsPostRepository) *AdminService {
	return &AdminService{
		users: users,
		trips: trips,
		posts: posts,
	}
}

// GetStats aggregates platform-wide counts and the most-visited cities.
// The admin gate lives in the handler; this service assumes it passed.
func (s *AdminService) GetStats(ctx context.Context) (domain.AdminStats, error) {
	usersCount, err := s.users.Count(ctx)
	if err != nil {
		return domain.AdminStats{}, fmt.Errorf("s.users.Count -> %w", err)
	}

	tripsCount, err := s.trips.CountTrips(ctx)
	if err != nil {
		return domain.AdminStats{}, fmt.Errorf("s.trips.CountTrips -> %w", err)
	}

	activitiesCount, err := s.trips.CountActivities(ctx)
	if err != nil {
		return domain.AdminStats{}, fmt.Errorf("s.trips.CountActivities -> %w", err)
	}

	postsCount, err := s.posts.Count(ctx)
	if err != nil {
		return domain.AdminStats{}, fmt.Errorf("s.posts.Count -> %w", err)
	}

	topCities, err := s.trips.TopCities(ctx, topCityCount)
	if err != nil {
		return domain.AdminStats{}, fmt.Errorf("s.trips.TopCities -> %w", err)
	}

	return domain.AdminStats{
		UsersCount:      usersCount,
		TripsCount:      tripsCount,
		ActivitiesCount: activitiesCount,
		PostsCount:      postsCount,
		TopCities:       topCities,
	}, nil
}
