package domain

import (
	"fmt"
	"time"
)

// TripStatus is the lifecycle state of a trip. Wire values are the
// lowercase strings; ParseTripStatus is the only place they are decoded.
type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

func ParseTripStatus(s string) (TripStatus, error) {
	switch status := TripStatus(s); status {
	case TripStatusUpcoming, TripStatusOngoing, TripStatusCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("unknown trip status %q", s)
	}
}

type Trip struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Description string     `json:"description,omitempty"`
	CoverPhoto  string     `json:"cover_photo,omitempty"`
	Status      TripStatus `json:"status"`
	IsPublic    bool       `json:"is_public"`
	PublicURL   string     `json:"public_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TripUpdate carries a partial trip update; nil fields are left untouched.
type TripUpdate struct {
	Name        *string
	StartDate   *string
	EndDate     *string
	Description *string
	CoverPhoto  *string
	Status      *TripStatus
	IsPublic    *bool
}
