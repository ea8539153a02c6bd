package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

const dateLayout = "2006-01-02"

type CreateTripRequest struct {
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
	CoverPhoto  string `json:"cover_photo,omitempty"`
}

func (req *CreateTripRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(dateLayout)),
	)
}

// UpdateTripRequest is a partial update; nil fields are left untouched.
type UpdateTripRequest struct {
	Name        *string `json:"name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
	CoverPhoto  *string `json:"cover_photo"`
	Status      *string `json:"status"`
	IsPublic    *bool   `json:"is_public"`
}

func (req *UpdateTripRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&req.StartDate, validation.Date(dateLayout)),
		validation.Field(&req.EndDate, validation.Date(dateLayout)),
		validation.Field(&req.Status, validation.In("upcoming", "ongoing", "completed")),
	)
}

type CreateStopRequest struct {
	TripID    string `json:"trip_id"`
	CityID    string `json:"city_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Order     int    `json:"order"`
}

func (req *CreateStopRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TripID, validation.Required),
		validation.Field(&req.CityID, validation.Required),
		validation.Field(&req.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

type CreateTripActivityRequest struct {
	StopID             string   `json:"stop_id"`
	ActivityTemplateID string   `json:"activity_template_id"`
	Date               string   `json:"date"`
	Time               string   `json:"time,omitempty"`
	CustomCost         *float64 `json:"custom_cost"`
}

func (req *CreateTripActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StopID, validation.Required),
		validation.Field(&req.ActivityTemplateID, validation.Required),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.CustomCost, validation.Min(0.0)),
	)
}

type CreateExpenseRequest struct {
	TripID      string  `json:"trip_id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
}

func (req *CreateExpenseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TripID, validation.Required),
		validation.Field(&req.Category, validation.Required,
			validation.In("transport", "accommodation", "food", "activities", "other")),
		validation.Field(&req.Amount, validation.Min(0.0)),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout)),
	)
}
