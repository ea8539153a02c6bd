package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/repository/dao"
	"github.com/globetrotter/api/internal/testutil"
)

func seedCities(t *testing.T, cityDAO *dao.CityDAO) map[string]dao.City {
	t.Helper()
	ctx := context.Background()

	cities := map[string]dao.City{}
	for _, c := range []dao.City{
		{Name: "Paris", Country: "France", CostIndex: 7.5, Popularity: 95},
		{Name: "Rome", Country: "Italy", CostIndex: 6.5, Popularity: 91},
		{Name: "Prague", Country: "Czech Republic", CostIndex: 5.5, Popularity: 81},
	} {
		created, err := cityDAO.InsertCity(ctx, c)
		require.NoError(t, err)
		cities[created.Name] = created
	}

	return cities
}

func TestCityDAO_Search(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	cityDAO := dao.NewCityDAO(db)
	ctx := context.Background()

	seedCities(t, cityDAO)

	t.Run("substring matches name case-insensitively", func(t *testing.T) {
		cities, err := cityDAO.Search(ctx, "pra", "", 100)
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Prague", cities[0].Name)
	})

	t.Run("substring matches country", func(t *testing.T) {
		cities, err := cityDAO.Search(ctx, "ital", "", 100)
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Rome", cities[0].Name)
	})

	t.Run("no filter lists by popularity", func(t *testing.T) {
		cities, err := cityDAO.Search(ctx, "", "", 100)
		require.NoError(t, err)
		require.Len(t, cities, 3)
		assert.Equal(t, "Paris", cities[0].Name)
		assert.Equal(t, "Prague", cities[2].Name)
	})

	t.Run("limit caps results", func(t *testing.T) {
		cities, err := cityDAO.Search(ctx, "", "", 2)
		require.NoError(t, err)
		assert.Len(t, cities, 2)
	})

	t.Run("country filter", func(t *testing.T) {
		cities, err := cityDAO.Search(ctx, "", "france", 100)
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Paris", cities[0].Name)
	})
}

func TestCityDAO_FindTemplates(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	cityDAO := dao.NewCityDAO(db)
	ctx := context.Background()

	cities := seedCities(t, cityDAO)
	paris := cities["Paris"]

	for _, tmpl := range []dao.ActivityTemplate{
		{CityID: paris.ID, Name: "Eiffel Tower Visit", Category: "sightseeing", Duration: 3, EstimatedCost: 30},
		{CityID: paris.ID, Name: "Louvre Museum Tour", Category: "culture", Duration: 4, EstimatedCost: 20},
		{CityID: paris.ID, Name: "French Cooking Class", Category: "food", Duration: 3, EstimatedCost: 80},
	} {
		_, err := cityDAO.InsertTemplate(ctx, tmpl)
		require.NoError(t, err)
	}

	t.Run("all templates for city", func(t *testing.T) {
		templates, err := cityDAO.FindTemplates(ctx, paris.ID, "", nil)
		require.NoError(t, err)
		assert.Len(t, templates, 3)
	})

	t.Run("category filter", func(t *testing.T) {
		templates, err := cityDAO.FindTemplates(ctx, paris.ID, "culture", nil)
		require.NoError(t, err)
		require.Len(t, templates, 1)
		assert.Equal(t, "Louvre Museum Tour", templates[0].Name)
	})

	t.Run("cost ceiling is inclusive", func(t *testing.T) {
		ceiling := 30.0
		templates, err := cityDAO.FindTemplates(ctx, paris.ID, "", &ceiling)
		require.NoError(t, err)
		assert.Len(t, templates, 2)
	})

	t.Run("other city has none", func(t *testing.T) {
		templates, err := cityDAO.FindTemplates(ctx, cities["Rome"].ID, "", nil)
		require.NoError(t, err)
		assert.Empty(t, templates)
	})
}
