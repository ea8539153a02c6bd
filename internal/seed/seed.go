// Package seed loads the reference city catalog and its activity
// templates. The catalog is static data the rest of the API treats as
// read-only.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/globetrotter/api/internal/domain"
)

type CityRepository interface {
	CreateCity(ctx context.Context, city domain.City) (domain.City, error)
	CreateTemplate(ctx context.Context, template domain.ActivityTemplate) (domain.ActivityTemplate, error)
	CountCities(ctx context.Context) (int64, error)
}

type cityEntry struct {
	city      domain.City
	templates []domain.ActivityTemplate
}

// Run inserts the catalog unless cities already exist, so it is safe to
// invoke on every deploy.
func Run(ctx context.Context, repo CityRepository) error {
	count, err := repo.CountCities(ctx)
	if err != nil {
		return fmt.Errorf("repo.CountCities -> %w", err)
	}
	if count > 0 {
		zap.L().Info("city catalog already seeded, skipping", zap.Int64("cities", count))
		return nil
	}

	templateCount := 0
	for _, entry := range catalog() {
		city, err := repo.CreateCity(ctx, entry.city)
		if err != nil {
			return fmt.Errorf("repo.CreateCity(%v) -> %w", entry.city.Name, err)
		}

		for _, template := range entry.templates {
			template.CityID = city.ID
			if _, err = repo.CreateTemplate(ctx, template); err != nil {
				return fmt.Errorf("repo.CreateTemplate(%v) -> %w", template.Name, err)
			}
			templateCount++
		}
	}

	zap.L().Info("city catalog seeded",
		zap.Int("cities", len(catalog())),
		zap.Int("templates", templateCount),
	)

	return nil
}

func catalog() []cityEntry {
	return []cityEntry{
		{
			city: domain.City{Name: "Paris", Country: "France", CostIndex: 7.5, Popularity: 95, Description: "City of lights and romance", ImageURL: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34"},
			templates: []domain.ActivityTemplate{
				{Name: "Eiffel Tower Visit", Category: domain.ActivitySightseeing, Duration: 3, EstimatedCost: 30, Description: "Visit the iconic iron tower"},
				{Name: "Louvre Museum Tour", Category: domain.ActivityCulture, Duration: 4, EstimatedCost: 20, Description: "World's largest art museum"},
				{Name: "Seine River Cruise", Category: domain.ActivitySightseeing, Duration: 2, EstimatedCost: 15, Description: "Romantic boat ride"},
				{Name: "French Cooking Class", Category: domain.ActivityFood, Duration: 3, EstimatedCost: 80, Description: "Learn to cook French cuisine"},
				{Name: "Montmartre Walking Tour", Category: domain.ActivityCulture, Duration: 3, EstimatedCost: 25, Description: "Explore artistic neighborhood"},
			},
		},
		{
			city: domain.City{Name: "Tokyo", Country: "Japan", CostIndex: 8.0, Popularity: 90, Description: "Modern metropolis meets tradition", ImageURL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf"},
			templates: []domain.ActivityTemplate{
				{Name: "Tokyo Skytree", Category: domain.ActivitySightseeing, Duration: 2, EstimatedCost: 25, Description: "Tallest structure in Japan"},
				{Name: "Tsukiji Fish Market", Category: domain.ActivityFood, Duration: 2, EstimatedCost: 40, Description: "Fresh sushi breakfast"},
				{Name: "Shibuya Crossing Experience", Category: domain.ActivitySightseeing, Duration: 1, EstimatedCost: 0, Description: "World's busiest crossing"},
				{Name: "Traditional Tea Ceremony", Category: domain.ActivityCulture, Duration: 2, EstimatedCost: 50, Description: "Japanese tea ritual"},
				{Name: "Akihabara Gaming Tour", Category: domain.ActivityShopping, Duration: 3, EstimatedCost: 30, Description: "Electronics and anime district"},
			},
		},
		{
			city: domain.City{Name: "New York", Country: "USA", CostIndex: 9.0, Popularity: 92, Description: "The city that never sleeps", ImageURL: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9"},
			templates: []domain.ActivityTemplate{
				{Name: "Statue of Liberty", Category: domain.ActivitySightseeing, Duration: 4, EstimatedCost: 25, Description: "Iconic American symbol"},
				{Name: "Central Park Bike Tour", Category: domain.ActivityAdventure, Duration: 3, EstimatedCost: 35, Description: "Explore the urban oasis"},
				{Name: "Broadway Show", Category: domain.ActivityCulture, Duration: 3, EstimatedCost: 120, Description: "World-class theater"},
				{Name: "Times Square Night Walk", Category: domain.ActivitySightseeing, Duration: 2, EstimatedCost: 0, Description: "Bright lights and energy"},
				{Name: "9/11 Memorial Visit", Category: domain.ActivityCulture, Duration: 2, EstimatedCost: 0, Description: "Tribute to history"},
			},
		},
		{
			city: domain.City{Name: "London", Country: "UK", CostIndex: 8.5, Popularity: 88, Description: "Historic capital with modern flair", ImageURL: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad"},
			templates: []domain.ActivityTemplate{
				{Name: "Big Ben & Parliament", Category: domain.ActivitySightseeing, Duration: 2, EstimatedCost: 15, Description: "Iconic landmarks"},
				{Name: "British Museum Tour", Category: domain.ActivityCulture, Duration: 3, EstimatedCost: 0, Description: "World history collection"},
				{Name: "London Eye Ride", Category: domain.ActivitySightseeing, Duration: 1, EstimatedCost: 35, Description: "Panoramic city views"},
				{Name: "Afternoon Tea Experience", Category: domain.ActivityFood, Duration: 2, EstimatedCost: 45, Description: "Traditional English tea"},
				{Name: "West End Theatre", Category: domain.ActivityCulture, Duration: 3, EstimatedCost: 80, Description: "Musical or play"},
			},
		},
		{
			city: domain.City{Name: "Dubai", Country: "UAE", CostIndex: 7.0, Popularity: 85, Description: "Luxury and innovation", ImageURL: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c"},
			templates: []domain.ActivityTemplate{
				{Name: "Burj Khalifa Observatory", Category: domain.ActivitySightseeing, Duration: 2, EstimatedCost: 40, Description: "World's tallest building"},
				{Name: "Desert Safari", Category: domain.ActivityAdventure, Duration: 6, EstimatedCost: 70, Description: "Dune bashing and BBQ"},
				{Name: "Dubai Mall Shopping", Category: domain.ActivityShopping, Duration: 4, EstimatedCost: 50, Description: "Luxury shopping experience"},
				{Name: "Gold Souk Visit", Category: domain.ActivityShopping, Duration: 2, EstimatedCost: 0, Description: "Traditional gold market"},
				{Name: "Marina Dhow Cruise", Category: domain.ActivitySightseeing, Duration: 2, EstimatedCost: 30, Description: "Traditional boat dinner"},
			},
		},
		{
			city: domain.City{Name: "Barcelona", Country: "Spain", CostIndex: 6.0, Popularity: 87, Description: "Art, architecture, and beaches", ImageURL: "https://images.unsplash.com/photo-1583422409516-2895a77efded"},
			templates: []domain.ActivityTemplate{
				{Name: "Sagrada Familia Tour", Category: domain.ActivityCulture, Duration: 2, EstimatedCost: 30, Description: "Gaudí's masterpiece"},
				{Name: "Park Güell Visit", Category: domain.ActivitySightseeing, Duration: 2, EstimatedCost: 10, Description: "Colorful park by Gaudí"},
				{Name: "Beach Day at Barceloneta", Category: domain.ActivityAdventure, Duration: 4, EstimatedCost: 15, Description: "Mediterranean beach"},
				{Name: "Tapas Food Tour", Category: domain.ActivityFood, Duration: 3, EstimatedCost: 60, Description: "Spanish small plates"},
				{Name: "Las Ramblas Walk", Category: domain.ActivitySightseeing, Duration: 2, EstimatedCost: 0, Description: "Famous street promenade"},
			},
		},
		{
			city: domain.City{Name: "Bali", Country: "Indonesia", CostIndex: 4.0, Popularity: 89, Description: "Tropical paradise", ImageURL: "https://images.unsplash.com/photo-1537996194471-e657df975ab4"},
			templates: []domain.ActivityTemplate{
				{Name: "Ubud Rice Terraces", Category: domain.ActivitySightseeing, Duration: 3, EstimatedCost: 5, Description: "Stunning green landscapes"},
				{Name: "Beach Club Day Pass", Category: domain.ActivityAdventure, Duration: 6, EstimatedCost: 40, Description: "Luxury beach experience"},
				{Name: "Balinese Cooking Class", Category: domain.ActivityFood, Duration: 4, EstimatedCost: 35, Description: "Learn local cuisine"},
				{Name: "Temple Tour", Category: domain.ActivityCulture, Duration: 4, EstimatedCost: 20, Description: "Sacred Hindu temples"},
				{Name: "Sunrise Volcano Trek", Category: domain.ActivityAdventure, Duration: 8, EstimatedCost: 50, Description: "Mount Batur hike"},
			},
		},
		{
			city: domain.City{Name: "Rome", Country: "Italy", CostIndex: 6.5, Popularity: 91, Description: "Ancient history and culture", ImageURL: "https://images.unsplash.com/photo-1552832230-c0197dd311b5"},
			templates: []domain.ActivityTemplate{
				{Name: "Colosseum Tour", Category: domain.ActivityCulture, Duration: 3, EstimatedCost: 25, Description: "Ancient Roman arena"},
				{Name: "Vatican Museums", Category: domain.ActivityCulture, Duration: 4, EstimatedCost: 20, Description: "Sistine Chapel included"},
				{Name: "Trevi Fountain Visit", Category: domain.ActivitySightseeing, Duration: 1, EstimatedCost: 0, Description: "Toss a coin for luck"},
				{Name: "Roman Food Tour", Category: domain.ActivityFood, Duration: 3, EstimatedCost: 70, Description: "Pasta and gelato"},
				{Name: "Vespa Tour", Category: domain.ActivityAdventure, Duration: 3, EstimatedCost: 90, Description: "Ride through Rome"},
			},
		},
		{
			city: domain.City{Name: "Sydney", Country: "Australia", CostIndex: 7.5, Popularity: 84, Description: "Harbor city with iconic landmarks", ImageURL: "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9"},
		},
		{
			city: domain.City{Name: "Singapore", Country: "Singapore", CostIndex: 7.8, Popularity: 86, Description: "Garden city of the future", ImageURL: "https://images.unsplash.com/photo-1525625293386-3f8f99389edd"},
		},
		{
			city: domain.City{Name: "Bangkok", Country: "Thailand", CostIndex: 3.5, Popularity: 88, Description: "Street food and temples", ImageURL: "https://images.unsplash.com/photo-1508009603885-50cf7c579365"},
		},
		{
			city: domain.City{Name: "Istanbul", Country: "Turkey", CostIndex: 5.0, Popularity: 82, Description: "Where East meets West", ImageURL: "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200"},
		},
		{
			city: domain.City{Name: "Amsterdam", Country: "Netherlands", CostIndex: 7.2, Popularity: 83, Description: "Canals and culture", ImageURL: "https://images.unsplash.com/photo-1534351590666-13e3e96b5017"},
		},
		{
			city: domain.City{Name: "Prague", Country: "Czech Republic", CostIndex: 5.5, Popularity: 81, Description: "Fairy tale city", ImageURL: "https://images.unsplash.com/photo-1541849546-216549ae216d"},
		},
		{
			city: domain.City{Name: "Santorini", Country: "Greece", CostIndex: 6.8, Popularity: 90, Description: "White and blue paradise", ImageURL: "https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e"},
		},
	}
}
