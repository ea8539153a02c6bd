package domain

import "time"

// Post is a community feed entry. UserName is the author's display name
// captured at creation time. Likes only ever increases.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	TripID    string    `json:"trip_id,omitempty"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}
