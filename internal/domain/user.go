package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone,omitempty"`
	City           string    `json:"city,omitempty"`
	Country        string    `json:"country,omitempty"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
}

// FullName is the display name denormalized onto community posts.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ProfileUpdate carries a partial profile update. A nil field is left
// untouched; a non-nil field replaces the stored value.
type ProfileUpdate struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	City           *string
	Country        *string
	AdditionalInfo *string
}
