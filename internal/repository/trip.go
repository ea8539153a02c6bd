package repository

import (
	"context"
	"fmt"

	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/repository/dao"
)

var (
	ErrTripNotFound     = dao.ErrTripNotFound
	ErrStopNotFound     = dao.ErrStopNotFound
	ErrActivityNotFound = dao.ErrActivityNotFound
)

type TripDAO interface {
	InsertTrip(ctx context.Context, trip dao.Trip) (dao.Trip, error)
	FindTripsByUser(ctx context.Context, userID string) ([]dao.Trip, error)
	FindTripByIDAndUser(ctx context.Context, id, userID string) (dao.Trip, error)
	FindTripByPublicURL(ctx context.Context, publicURL string) (dao.Trip, error)
	UpdateTrip(ctx context.Context, id, userID string, fields map[string]interface{}) (dao.Trip, error)
	DeleteTrip(ctx context.Context, id, userID string) error
	InsertStop(ctx context.Context, stop dao.Stop) (dao.Stop, error)
	FindStopByID(ctx context.Context, id string) (dao.Stop, error)
	FindStopsByTrip(ctx context.Context, tripID string) ([]dao.Stop, error)
	DeleteStop(ctx context.Context, id string) error
	InsertActivity(ctx context.Context, activity dao.TripActivity) (dao.TripActivity, error)
	FindActivityByID(ctx context.Context, id string) (dao.TripActivity, error)
	FindActivitiesByTrip(ctx context.Context, tripID string) ([]dao.TripActivity, error)
	DeleteActivity(ctx context.Context, id string) error
	InsertExpense(ctx context.Context, expense dao.Expense) (dao.Expense, error)
	FindExpensesByTrip(ctx context.Context, tripID string) ([]dao.Expense, error)
	CountTrips(ctx context.Context) (int64, error)
	CountActivities(ctx context.Context) (int64, error)
	TopCities(ctx context.Context, limit int) ([]dao.CityStopCount, error)
}

type TripRepository struct {
	dao TripDAO
}

func NewTripRepository(dao TripDAO) *TripRepository {
	return &TripRepository{
		dao: dao,
	}
}

func (r *TripRepository) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	created, err := r.dao.InsertTrip(ctx, dao.Trip{
		UserID:      trip.UserID,
		Name:        trip.Name,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Description: trip.Description,
		CoverPhoto:  trip.CoverPhoto,
		Status:      string(trip.Status),
		IsPublic:    trip.IsPublic,
		PublicURL:   trip.PublicURL,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("r.dao.InsertTrip -> %w", err)
	}

	return r.tripDaoToDomain(created), nil
}

func (r *TripRepository) FindTripsByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	found, err := r.dao.FindTripsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTripsByUser -> %w", err)
	}

	trips := make([]domain.Trip, 0, len(found))
	for _, trip := range found {
		trips = append(trips, r.tripDaoToDomain(trip))
	}

	return trips, nil
}

func (r *TripRepository) FindTripByIDAndUser(ctx context.Context, id, userID string) (domain.Trip, error) {
	found, err := r.dao.FindTripByIDAndUser(ctx, id, userID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("r.dao.FindTripByIDAndUser -> %w", err)
	}

	return r.tripDaoToDomain(found), nil
}

func (r *TripRepository) FindTripByPublicURL(ctx context.Context, publicURL string) (domain.Trip, error) {
	found, err := r.dao.FindTripByPublicURL(ctx, publicURL)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("r.dao.FindTripByPublicURL -> %w", err)
	}

	return r.tripDaoToDomain(found), nil
}

// UpdateTrip applies the non-nil fields of the update to the owner's trip.
func (r *TripRepository) UpdateTrip(ctx context.Context, id, userID string, update domain.TripUpdate) (domain.Trip, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.StartDate != nil {
		fields["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		fields["end_date"] = *update.EndDate
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.CoverPhoto != nil {
		fields["cover_photo"] = *update.CoverPhoto
	}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}
	if update.IsPublic != nil {
		fields["is_public"] = *update.IsPublic
	}

	updated, err := r.dao.UpdateTrip(ctx, id, userID, fields)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("r.dao.UpdateTrip -> %w", err)
	}

	return r.tripDaoToDomain(updated), nil
}

// Publish marks the owner's trip public under the given opaque URL token.
func (r *TripRepository) Publish(ctx context.Context, id, userID, publicURL string) error {
	_, err := r.dao.UpdateTrip(ctx, id, userID, map[string]interface{}{
		"is_public":  true,
		"public_url": publicURL,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateTrip -> %w", err)
	}

	return nil
}

func (r *TripRepository) DeleteTrip(ctx context.Context, id, userID string) error {
	if err := r.dao.DeleteTrip(ctx, id, userID); err != nil {
		return fmt.Errorf("r.dao.DeleteTrip -> %w", err)
	}

	return nil
}

func (r *TripRepository) CreateStop(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	created, err := r.dao.InsertStop(ctx, dao.Stop{
		TripID:    stop.TripID,
		CityID:    stop.CityID,
		CityName:  stop.CityName,
		Country:   stop.Country,
		StartDate: stop.StartDate,
		EndDate:   stop.EndDate,
		Seq:       stop.Order,
	})
	if err != nil {
		return domain.Stop{}, fmt.Errorf("r.dao.InsertStop -> %w", err)
	}

	return r.stopDaoToDomain(created), nil
}

func (r *TripRepository) FindStopByID(ctx context.Context, id string) (domain.Stop, error) {
	found, err := r.dao.FindStopByID(ctx, id)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("r.dao.FindStopByID -> %w", err)
	}

	return r.stopDaoToDomain(found), nil
}

func (r *TripRepository) FindStopsByTrip(ctx context.Context, tripID string) ([]domain.Stop, error) {
	found, err := r.dao.FindStopsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindStopsByTrip -> %w", err)
	}

	stops := make([]domain.Stop, 0, len(found))
	for _, stop := range found {
		stops = append(stops, r.stopDaoToDomain(stop))
	}

	return stops, nil
}

func (r *TripRepository) DeleteStop(ctx context.Context, id string) error {
	if err := r.dao.DeleteStop(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteStop -> %w", err)
	}

	return nil
}

func (r *TripRepository) CreateActivity(ctx context.Context, activity domain.TripActivity) (domain.TripActivity, error) {
	created, err := r.dao.InsertActivity(ctx, dao.TripActivity{
		TripID:              activity.TripID,
		StopID:              activity.StopID,
		ActivityTemplateID:  activity.ActivityTemplateID,
		ActivityName:        activity.ActivityName,
		ActivityDescription: activity.ActivityDescription,
		Category:            string(activity.Category),
		Duration:            activity.Duration,
		Date:                activity.Date,
		Time:                activity.Time,
		Cost:                activity.Cost,
	})
	if err != nil {
		return domain.TripActivity{}, fmt.Errorf("r.dao.InsertActivity -> %w", err)
	}

	return r.activityDaoToDomain(created), nil
}

func (r *TripRepository) FindActivityByID(ctx context.Context, id string) (domain.TripActivity, error) {
	found, err := r.dao.FindActivityByID(ctx, id)
	if err != nil {
		return domain.TripActivity{}, fmt.Errorf("r.dao.FindActivityByID -> %w", err)
	}

	return r.activityDaoToDomain(found), nil
}

func (r *TripRepository) FindActivitiesByTrip(ctx context.Context, tripID string) ([]domain.TripActivity, error) {
	found, err := r.dao.FindActivitiesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActivitiesByTrip -> %w", err)
	}

	activities := make([]domain.TripActivity, 0, len(found))
	for _, activity := range found {
		activities = append(activities, r.activityDaoToDomain(activity))
	}

	return activities, nil
}

func (r *TripRepository) DeleteActivity(ctx context.Context, id string) error {
	if err := r.dao.DeleteActivity(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteActivity -> %w", err)
	}

	return nil
}

func (r *TripRepository) CreateExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	created, err := r.dao.InsertExpense(ctx, dao.Expense{
		TripID:      expense.TripID,
		Category:    string(expense.Category),
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        expense.Date,
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("r.dao.InsertExpense -> %w", err)
	}

	return r.expenseDaoToDomain(created), nil
}

func (r *TripRepository) FindExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error) {
	found, err := r.dao.FindExpensesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindExpensesByTrip -> %w", err)
	}

	expenses := make([]domain.Expense, 0, len(found))
	for _, expense := range found {
		expenses = append(expenses, r.expenseDaoToDomain(expense))
	}

	return expenses, nil
}

func (r *TripRepository) CountTrips(ctx context.Context) (int64, error) {
	count, err := r.dao.CountTrips(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountTrips -> %w", err)
	}

	return count, nil
}

func (r *TripRepository) CountActivities(ctx context.Context) (int64, error) {
	count, err := r.dao.CountActivities(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountActivities -> %w", err)
	}

	return count, nil
}

func (r *TripRepository) TopCities(ctx context.Context, limit int) ([]domain.CityVisits, error) {
	rows, err := r.dao.TopCities(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TopCities -> %w", err)
	}

	visits := make([]domain.CityVisits, 0, len(rows))
	for _, row := range rows {
		visits = append(visits, domain.CityVisits{
			CityID: row.CityID,
			Count:  row.Count,
		})
	}

	return visits, nil
}

func (r *TripRepository) tripDaoToDomain(t dao.Trip) domain.Trip {
	return domain.Trip{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Description: t.Description,
		CoverPhoto:  t.CoverPhoto,
		Status:      domain.TripStatus(t.Status),
		IsPublic:    t.IsPublic,
		PublicURL:   t.PublicURL,
		CreatedAt:   t.CreatedAt,
	}
}

func (r *TripRepository) stopDaoToDomain(s dao.Stop) domain.Stop {
	return domain.Stop{
		ID:        s.ID,
		TripID:    s.TripID,
		CityID:    s.CityID,
		CityName:  s.CityName,
		Country:   s.Country,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Order:     s.Seq,
		CreatedAt: s.CreatedAt,
	}
}

func (r *TripRepository) activityDaoToDomain(a dao.TripActivity) domain.TripActivity {
	return domain.TripActivity{
		ID:                  a.ID,
		TripID:              a.TripID,
		StopID:              a.StopID,
		ActivityTemplateID:  a.ActivityTemplateID,
		ActivityName:        a.ActivityName,
		ActivityDescription: a.ActivityDescription,
		Category:            domain.ActivityCategory(a.Category),
		Duration:            a.Duration,
		Date:                a.Date,
		Time:                a.Time,
		Cost:                a.Cost,
		CreatedAt:           a.CreatedAt,
	}
}

func (r *TripRepository) expenseDaoToDomain(e dao.Expense) domain.Expense {
	return domain.Expense{
		ID:          e.ID,
		TripID:      e.TripID,
		Category:    domain.ExpenseCategory(e.Category),
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}
