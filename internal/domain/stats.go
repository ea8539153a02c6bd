package domain

// CityVisits ranks a city by the number of stops referencing it.
type CityVisits struct {
	CityID string `json:"city_id"`
	Count  int64  `json:"count"`
}

type AdminStats struct {
	UsersCount      int64        `json:"users_count"`
	TripsCount      int64        `json:"trips_count"`
	ActivitiesCount int64        `json:"activities_count"`
	PostsCount      int64        `json:"posts_count"`
	TopCities       []CityVisits `json:"top_cities"`
}
