package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/repository"
)

var (
	ErrTripNotFound     = repository.ErrTripNotFound
	ErrStopNotFound     = repository.ErrStopNotFound
	ErrActivityNotFound = repository.ErrActivityNotFound
	ErrCityNotFound     = repository.ErrCityNotFound
	ErrTemplateNotFound = repository.ErrTemplateNotFound

	// ErrNotTripOwner means the parent trip of a resource the caller
	// already holds belongs to someone else. Distinct from ErrTripNotFound
	// so handlers can render 403 rather than 404.
	ErrNotTripOwner = errors.New("trip belongs to another user")
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	FindTripsByUser(ctx context.Context, userID string) ([]domain.Trip, error)
	FindTripByIDAndUser(ctx context.Context, id, userID string) (domain.Trip, error)
	FindTripByPublicURL(ctx context.Context, publicURL string) (domain.Trip, error)
	UpdateTrip(ctx context.Context, id, userID string, update domain.TripUpdate) (domain.Trip, error)
	Publish(ctx context.Context, id, userID, publicURL string) error
	DeleteTrip(ctx context.Context, id, userID string) error
	CreateStop(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	FindStopByID(ctx context.Context, id string) (domain.Stop, error)
	FindStopsByTrip(ctx context.Context, tripID string) ([]domain.Stop, error)
	DeleteStop(ctx context.Context, id string) error
	CreateActivity(ctx context.Context, activity domain.TripActivity) (domain.TripActivity, error)
	FindActivityByID(ctx context.Context, id string) (domain.TripActivity, error)
	FindActivitiesByTrip(ctx context.Context, tripID string) ([]domain.TripActivity, error)
	DeleteActivity(ctx context.Context, id string) error
	CreateExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	FindExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error)
}

type TripCityRepository interface {
	FindByID(ctx context.Context, id string) (domain.City, error)
	FindTemplateByID(ctx context.Context, id string) (domain.ActivityTemplate, error)
}

type TripService struct {
	repo   TripRepository
	cities TripCityRepository
}

func NewTripService(repo TripRepository, cities TripCityRepository) *TripService {
	return &TripService{
		repo:   repo,
		cities: cities,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.Status = domain.TripStatusUpcoming
	trip.IsPublic = false
	trip.PublicURL = ""

	created, err := s.repo.CreateTrip(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("s.repo.CreateTrip -> %w", err)
	}

	return created, nil
}

func (s *TripService) GetTrips(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips, err := s.repo.FindTripsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTripsByUser -> %w", err)
	}

	return trips, nil
}

func (s *TripService) GetTrip(ctx context.Context, id, userID string) (domain.Trip, error) {
	trip, err := s.repo.FindTripByIDAndUser(ctx, id, userID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("s.repo.FindTripByIDAndUser -> %w", err)
	}

	return trip, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, id, userID string, update domain.TripUpdate) (domain.Trip, error) {
	trip, err := s.repo.UpdateTrip(ctx, id, userID, update)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("s.repo.UpdateTrip -> %w", err)
	}

	return trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, id, userID string) error {
	if err := s.repo.DeleteTrip(ctx, id, userID); err != nil {
		return fmt.Errorf("s.repo.DeleteTrip -> %w", err)
	}

	return nil
}

// PublishTrip makes the trip publicly readable and mints a fresh opaque
// URL token. Re-publishing mints a new token; the previous one stops
// resolving.
func (s *TripService) PublishTrip(ctx context.Context, id, userID string) (string, error) {
	publicURL := uuid.NewString()

	if err := s.repo.Publish(ctx, id, userID, publicURL); err != nil {
		return "", fmt.Errorf("s.repo.Publish -> %w", err)
	}

	return publicURL, nil
}

// GetPublicTrip resolves a public URL token without any identity. Stops
// come back in itinerary order. A private or unknown token is a plain
// not-found; existence of the trip is not revealed.
func (s *TripService) GetPublicTrip(ctx context.Context, publicURL string) (domain.Trip, []domain.Stop, []domain.TripActivity, error) {
	trip, err := s.repo.FindTripByPublicURL(ctx, publicURL)
	if err != nil {
		return domain.Trip{}, nil, nil, fmt.Errorf("s.repo.FindTripByPublicURL -> %w", err)
	}

	stops, err := s.repo.FindStopsByTrip(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, nil, nil, fmt.Errorf("s.repo.FindStopsByTrip -> %w", err)
	}

	activities, err := s.repo.FindActivitiesByTrip(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, nil, nil, fmt.Errorf("s.repo.FindActivitiesByTrip -> %w", err)
	}

	return trip, stops, activities, nil
}

// CreateStop verifies trip ownership, resolves the city, and copies its
// display fields onto the stop.
func (s *TripService) CreateStop(ctx context.Context, stop domain.Stop, userID string) (domain.Stop, error) {
	if _, err := s.repo.FindTripByIDAndUser(ctx, stop.TripID, userID); err != nil {
		return domain.Stop{}, fmt.Errorf("s.repo.FindTripByIDAndUser -> %w", err)
	}

	city, err := s.cities.FindByID(ctx, stop.CityID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("s.cities.FindByID -> %w", err)
	}
	stop.CityName = city.Name
	stop.Country = city.Country

	created, err := s.repo.CreateStop(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("s.repo.CreateStop -> %w", err)
	}

	return created, nil
}

func (s *TripService) GetStops(ctx context.Context, tripID, userID string) ([]domain.Stop, error) {
	if _, err := s.repo.FindTripByIDAndUser(ctx, tripID, userID); err != nil {
		return nil, fmt.Errorf("s.repo.FindTripByIDAndUser -> %w", err)
	}

	stops, err := s.repo.FindStopsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindStopsByTrip -> %w", err)
	}

	return stops, nil
}

// DeleteStop cascades to the stop's activities. The stop lookup comes
// first; a stop that exists under someone else's trip yields
// ErrNotTripOwner.
func (s *TripService) DeleteStop(ctx context.Context, id, userID string) error {
	stop, err := s.repo.FindStopByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindStopByID -> %w", err)
	}

	if err := s.checkTripOwner(ctx, stop.TripID, userID); err != nil {
		return err
	}

	if err := s.repo.DeleteStop(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteStop -> %w", err)
	}

	return nil
}

// AddActivity instantiates a template into the stop's trip. The activity
// fields and cost are captured now and never re-derived; a custom cost
// overrides the template's estimate.
func (s *TripService) AddActivity(ctx context.Context, stopID, templateID, date, timeOfDay string, customCost *float64, userID string) (domain.TripActivity, error) {
	stop, err := s.repo.FindStopByID(ctx, stopID)
	if err != nil {
		return domain.TripActivity{}, fmt.Errorf("s.repo.FindStopByID -> %w", err)
	}

	if err := s.checkTripOwner(ctx, stop.TripID, userID); err != nil {
		return domain.TripActivity{}, err
	}

	template, err := s.cities.FindTemplateByID(ctx, templateID)
	if err != nil {
		return domain.TripActivity{}, fmt.Errorf("s.cities.FindTemplateByID -> %w", err)
	}

	cost := template.EstimatedCost
	if customCost != nil {
		cost = *customCost
	}

	activity := domain.TripActivity{
		TripID:              stop.TripID,
		StopID:              stopID,
		ActivityTemplateID:  templateID,
		ActivityName:        template.Name,
		ActivityDescription: template.Description,
		Category:            template.Category,
		Duration:            template.Duration,
		Date:                date,
		Time:                timeOfDay,
		Cost:                cost,
	}

	created, err := s.repo.CreateActivity(ctx, activity)
	if err != nil {
		return domain.TripActivity{}, fmt.Errorf("s.repo.CreateActivity -> %w", err)
	}

	return created, nil
}

func (s *TripService) GetActivities(ctx context.Context, tripID, userID string) ([]domain.TripActivity, error) {
	if _, err := s.repo.FindTripByIDAndUser(ctx, tripID, userID); err != nil {
		return nil, fmt.Errorf("s.repo.FindTripByIDAndUser -> %w", err)
	}

	activities, err := s.repo.FindActivitiesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActivitiesByTrip -> %w", err)
	}

	return activities, nil
}

func (s *TripService) DeleteActivity(ctx context.Context, id, userID string) error {
	activity, err := s.repo.FindActivityByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindActivityByID -> %w", err)
	}

	if err := s.checkTripOwner(ctx, activity.TripID, userID); err != nil {
		return err
	}

	if err := s.repo.DeleteActivity(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteActivity -> %w", err)
	}

	return nil
}

func (s *TripService) AddExpense(ctx context.Context, expense domain.Expense, userID string) (domain.Expense, error) {
	if _, err := s.repo.FindTripByIDAndUser(ctx, expense.TripID, userID); err != nil {
		return domain.Expense{}, fmt.Errorf("s.repo.FindTripByIDAndUser -> %w", err)
	}

	created, err := s.repo.CreateExpense(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("s.repo.CreateExpense -> %w", err)
	}

	return created, nil
}

func (s *TripService) GetExpenses(ctx context.Context, tripID, userID string) ([]domain.Expense, error) {
	if _, err := s.repo.FindTripByIDAndUser(ctx, tripID, userID); err != nil {
		return nil, fmt.Errorf("s.repo.FindTripByIDAndUser -> %w", err)
	}

	expenses, err := s.repo.FindExpensesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindExpensesByTrip -> %w", err)
	}

	return expenses, nil
}

// GetBudget sums the trip's activity costs into the activities bucket and
// its expenses into their category buckets. The total is always the sum
// of the breakdown.
func (s *TripService) GetBudget(ctx context.Context, tripID, userID string) (domain.TripBudget, error) {
	if _, err := s.repo.FindTripByIDAndUser(ctx, tripID, userID); err != nil {
		return domain.TripBudget{}, fmt.Errorf("s.repo.FindTripByIDAndUser -> %w", err)
	}

	activities, err := s.repo.FindActivitiesByTrip(ctx, tripID)
	if err != nil {
		return domain.TripBudget{}, fmt.Errorf("s.repo.FindActivitiesByTrip -> %w", err)
	}

	expenses, err := s.repo.FindExpensesByTrip(ctx, tripID)
	if err != nil {
		return domain.TripBudget{}, fmt.Errorf("s.repo.FindExpensesByTrip -> %w", err)
	}

	var breakdown domain.BudgetBreakdown
	for _, activity := range activities {
		breakdown.Activities += activity.Cost
	}
	for _, expense := range expenses {
		switch expense.Category {
		case domain.ExpenseTransport:
			breakdown.Transport += expense.Amount
		case domain.ExpenseAccommodation:
			breakdown.Accommodation += expense.Amount
		case domain.ExpenseFood:
			breakdown.Food += expense.Amount
		case domain.ExpenseActivities:
			breakdown.Activities += expense.Amount
		case domain.ExpenseOther:
			breakdown.Other += expense.Amount
		}
	}

	return domain.TripBudget{
		Total:           breakdown.Total(),
		Breakdown:       breakdown,
		ActivitiesCount: len(activities),
		ExpensesCount:   len(expenses),
	}, nil
}

// checkTripOwner verifies that the parent trip of a resource the caller
// already holds belongs to them. A miss here means the trip exists under
// another user, so it maps to ErrNotTripOwner, not ErrTripNotFound.
func (s *TripService) checkTripOwner(ctx context.Context, tripID, userID string) error {
	if _, err := s.repo.FindTripByIDAndUser(ctx, tripID, userID); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return ErrNotTripOwner
		}

		return fmt.Errorf("s.repo.FindTripByIDAndUser -> %w", err)
	}

	return nil
}
