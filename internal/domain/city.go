package domain

// City is immutable reference data. CostIndex is on a 1-10 scale,
// Popularity on a 1-100 scale.
type City struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CostIndex   float64 `json:"cost_index"`
	Popularity  int     `json:"popularity"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}
