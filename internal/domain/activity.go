package domain

import (
	"fmt"
	"time"
)

// ActivityCategory classifies an activity template.
type ActivityCategory string

const (
	ActivitySightseeing ActivityCategory = "sightseeing"
	ActivityFood        ActivityCategory = "food"
	ActivityAdventure   ActivityCategory = "adventure"
	ActivityCulture     ActivityCategory = "culture"
	ActivityShopping    ActivityCategory = "shopping"
	ActivityNightlife   ActivityCategory = "nightlife"
)

func ParseActivityCategory(s string) (ActivityCategory, error) {
	switch category := ActivityCategory(s); category {
	case ActivitySightseeing, ActivityFood, ActivityAdventure,
		ActivityCulture, ActivityShopping, ActivityNightlife:
		return category, nil
	default:
		return "", fmt.Errorf("unknown activity category %q", s)
	}
}

// ActivityTemplate is immutable reference data describing a bookable
// activity in a city. Duration is in hours.
type ActivityTemplate struct {
	ID            string           `json:"id"`
	CityID        string           `json:"city_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Category      ActivityCategory `json:"category"`
	Duration      int              `json:"duration"`
	EstimatedCost float64          `json:"estimated_cost"`
	ImageURL      string           `json:"image_url,omitempty"`
}

// TripActivity is a template instantiated into a trip's itinerary.
// The activity fields and the cost are captured at creation time and
// never re-derived from the template.
type TripActivity struct {
	ID                  string           `json:"id"`
	TripID              string           `json:"trip_id"`
	StopID              string           `json:"stop_id"`
	ActivityTemplateID  string           `json:"activity_template_id"`
	ActivityName        string           `json:"activity_name"`
	ActivityDescription string           `json:"activity_description,omitempty"`
	Category            ActivityCategory `json:"category"`
	Duration            int              `json:"duration"`
	Date                string           `json:"date"`
	Time                string           `json:"time,omitempty"`
	Cost                float64          `json:"cost"`
	CreatedAt           time.Time        `json:"created_at"`
}
