package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrStopNotFound     = errors.New("stop not found")
	ErrActivityNotFound = errors.New("trip activity not found")
)

type Trip struct {
	ID     string `gorm:"primaryKey"`
	UserID string `gorm:"not null;index"`

	Name        string `gorm:"not null"`
	StartDate   string `gorm:"not null"`
	EndDate     string `gorm:"not null"`
	Description string
	CoverPhoto  string

	Status    string `gorm:"not null"`
	IsPublic  bool   `gorm:"not null;default:false"`
	PublicURL string `gorm:"index"`

	CreatedAt time.Time `gorm:"not null"`
}

type Stop struct {
	ID     string `gorm:"primaryKey"`
	TripID string `gorm:"not null;index"`
	CityID string `gorm:"not null;index"`

	CityName  string `gorm:"not null"`
	Country   string `gorm:"not null"`
	StartDate string `gorm:"not null"`
	EndDate   string `gorm:"not null"`

	// Seq is the presentation order within the trip; not unique.
	Seq int `gorm:"column:seq;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type TripActivity struct {
	ID     string `gorm:"primaryKey"`
	TripID string `gorm:"not null;index"`
	StopID string `gorm:"not null;index"`

	ActivityTemplateID  string `gorm:"not null"`
	ActivityName        string `gorm:"not null"`
	ActivityDescription string
	Category            string `gorm:"not null"`
	Duration            int    `gorm:"not null"`

	Date string `gorm:"not null"`
	Time string
	Cost float64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type Expense struct {
	ID     string `gorm:"primaryKey"`
	TripID string `gorm:"not null;index"`

	Category    string  `gorm:"not null"`
	Amount      float64 `gorm:"not null"`
	Description string
	Date        string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type TripDAO struct {
	db *gorm.DB
}

func NewTripDAO(db *gorm.DB) *TripDAO {
	return &TripDAO{
		db: db,
	}
}

func (d *TripDAO) InsertTrip(ctx context.Context, trip Trip) (Trip, error) {
	trip.ID = uuid.NewString()
	trip.CreatedAt = time.Now().UTC()

	result := d.db.WithContext(ctx).Create(&trip)
	if result.Error != nil {
		return Trip{}, result.Error
	}

	return trip, nil
}

func (d *TripDAO) FindTripsByUser(ctx context.Context, userID string) ([]Trip, error) {
	var trips []Trip

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&trips)
	if result.Error != nil {
		return nil, result.Error
	}

	return trips, nil
}

// FindTripByIDAndUser looks a trip up scoped by its owner. A miss does not
// reveal whether the trip exists under another owner.
func (d *TripDAO) FindTripByIDAndUser(ctx context.Context, id, userID string) (Trip, error) {
	var trip Trip

	result := d.db.WithContext(ctx).First(&trip, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Trip{}, ErrTripNotFound
		}

		return Trip{}, result.Error
	}

	return trip, nil
}

func (d *TripDAO) FindTripByPublicURL(ctx context.Context, publicURL string) (Trip, error) {
	var trip Trip

	result := d.db.WithContext(ctx).First(&trip, "public_url = ? AND is_public = ?", publicURL, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Trip{}, ErrTripNotFound
		}

		return Trip{}, result.Error
	}

	return trip, nil
}

// UpdateTrip applies only the given columns to the owner's trip and
// returns the updated row. ErrTripNotFound when the owner has no such trip.
func (d *TripDAO) UpdateTrip(ctx context.Context, id, userID string, fields map[string]interface{}) (Trip, error) {
	trip, err := d.FindTripByIDAndUser(ctx, id, userID)
	if err != nil {
		return Trip{}, err
	}

	if len(fields) > 0 {
		result := d.db.WithContext(ctx).Model(&Trip{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return Trip{}, result.Error
		}
	}

	return d.FindTripByIDAndUser(ctx, trip.ID, userID)
}

// DeleteTrip removes the owner's trip and cascades to its stops,
// activities and expenses. The deletes are independent operations; the
// trip row goes first so a partial failure cannot resurrect it.
func (d *TripDAO) DeleteTrip(ctx context.Context, id, userID string) error {
	result := d.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Trip{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTripNotFound
	}

	if err := d.db.WithContext(ctx).Where("trip_id = ?", id).Delete(&Stop{}).Error; err != nil {
		return err
	}
	if err := d.db.WithContext(ctx).Where("trip_id = ?", id).Delete(&TripActivity{}).Error; err != nil {
		return err
	}
	if err := d.db.WithContext(ctx).Where("trip_id = ?", id).Delete(&Expense{}).Error; err != nil {
		return err
	}

	return nil
}

func (d *TripDAO) InsertStop(ctx context.Context, stop Stop) (Stop, error) {
	stop.ID = uuid.NewString()
	stop.CreatedAt = time.Now().UTC()

	result := d.db.WithContext(ctx).Create(&stop)
	if result.Error != nil {
		return Stop{}, result.Error
	}

	return stop, nil
}

func (d *TripDAO) FindStopByID(ctx context.Context, id string) (Stop, error) {
	var stop Stop

	result := d.db.WithContext(ctx).First(&stop, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stop{}, ErrStopNotFound
		}

		return Stop{}, result.Error
	}

	return stop, nil
}

func (d *TripDAO) FindStopsByTrip(ctx context.Context, tripID string) ([]Stop, error) {
	var stops []Stop

	result := d.db.WithContext(ctx).Where("trip_id = ?", tripID).Order("seq ASC").Find(&stops)
	if result.Error != nil {
		return nil, result.Error
	}

	return stops, nil
}

// DeleteStop removes a stop and its trip activities.
func (d *TripDAO) DeleteStop(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Stop{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStopNotFound
	}

	return d.db.WithContext(ctx).Where("stop_id = ?", id).Delete(&TripActivity{}).Error
}

func (d *TripDAO) InsertActivity(ctx context.Context, activity TripActivity) (TripActivity, error) {
	activity.ID = uuid.NewString()
	activity.CreatedAt = time.Now().UTC()

	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return TripActivity{}, result.Error
	}

	return activity, nil
}

func (d *TripDAO) FindActivityByID(ctx context.Context, id string) (TripActivity, error) {
	var activity TripActivity

	result := d.db.WithContext(ctx).First(&activity, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TripActivity{}, ErrActivityNotFound
		}

		return TripActivity{}, result.Error
	}

	return activity, nil
}

func (d *TripDAO) FindActivitiesByTrip(ctx context.Context, tripID string) ([]TripActivity, error) {
	var activities []TripActivity

	result := d.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *TripDAO) DeleteActivity(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(&TripActivity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

func (d *TripDAO) InsertExpense(ctx context.Context, expense Expense) (Expense, error) {
	expense.ID = uuid.NewString()
	expense.CreatedAt = time.Now().UTC()

	result := d.db.WithContext(ctx).Create(&expense)
	if result.Error != nil {
		return Expense{}, result.Error
	}

	return expense, nil
}

func (d *TripDAO) FindExpensesByTrip(ctx context.Context, tripID string) ([]Expense, error) {
	var expenses []Expense

	result := d.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&expenses)
	if result.Error != nil {
		return nil, result.Error
	}

	return expenses, nil
}

func (d *TripDAO) CountTrips(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Trip{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *TripDAO) CountActivities(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&TripActivity{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// CityStopCount is a row of the most-visited-cities aggregation.
type CityStopCount struct {
	CityID string
	Count  int64
}

// TopCities ranks city ids by the number of stops referencing them,
// descending. Tie order is whatever the store returns.
func (d *TripDAO) TopCities(ctx context.Context, limit int) ([]CityStopCount, error) {
	var rows []CityStopCount

	result := d.db.WithContext(ctx).
		Model(&Stop{}).
		Select("city_id, COUNT(*) AS count").
		Group("city_id").
		Order("count DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
