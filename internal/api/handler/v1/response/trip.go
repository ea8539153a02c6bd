package response

import "github.com/globetrotter/api/internal/domain"

type PublishResponse struct {
	PublicURL string `json:"public_url"`
}

// PublicTripResponse is the shared read-only itinerary view. Stops are in
// itinerary order.
type PublicTripResponse struct {
	Trip       domain.Trip           `json:"trip"`
	Stops      []domain.Stop         `json:"stops"`
	Activities []domain.TripActivity `json:"activities"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
