package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/repository/dao"
	"github.com/globetrotter/api/internal/testutil"
)

func seedTrip(t *testing.T, tripDAO *dao.TripDAO, userID string) dao.Trip {
	t.Helper()

	trip, err := tripDAO.InsertTrip(context.Background(), dao.Trip{
		UserID:    userID,
		Name:      "Summer in Europe",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-14",
		Status:    "upcoming",
	})
	require.NoError(t, err)

	return trip
}

func TestTripDAO_OwnerScoping(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	tripDAO := dao.NewTripDAO(db)
	ctx := context.Background()

	trip := seedTrip(t, tripDAO, "user-1")

	found, err := tripDAO.FindTripByIDAndUser(ctx, trip.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, found.ID)

	// The same id under a different owner is a plain miss.
	_, err = tripDAO.FindTripByIDAndUser(ctx, trip.ID, "user-2")
	assert.ErrorIs(t, err, dao.ErrTripNotFound)
}

func TestTripDAO_StopsComeBackInSeqOrder(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	tripDAO := dao.NewTripDAO(db)
	ctx := context.Background()

	trip := seedTrip(t, tripDAO, "user-1")

	for _, seq := range []int{2, 0, 1} {
		_, err := tripDAO.InsertStop(ctx, dao.Stop{
			TripID:    trip.ID,
			CityID:    "city-1",
			CityName:  "Paris",
			Country:   "France",
			StartDate: "2026-06-01",
			EndDate:   "2026-06-03",
			Seq:       seq,
		})
		require.NoError(t, err)
	}

	stops, err := tripDAO.FindStopsByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, stops, 3)
	for i, stop := range stops {
		assert.Equal(t, i, stop.Seq)
	}
}

func TestTripDAO_DeleteTrip_Cascades(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	tripDAO := dao.NewTripDAO(db)
	ctx := context.Background()

	trip := seedTrip(t, tripDAO, "user-1")

	stop, err := tripDAO.InsertStop(ctx, dao.Stop{
		TripID:   trip.ID,
		CityID:   "city-1",
		CityName: "Paris",
		Country:  "France",
	})
	require.NoError(t, err)

	activity, err := tripDAO.InsertActivity(ctx, dao.TripActivity{
		TripID:             trip.ID,
		StopID:             stop.ID,
		ActivityTemplateID: "template-1",
		ActivityName:       "Louvre Museum Tour",
		Category:           "culture",
		Date:               "2026-06-02",
		Cost:               20,
	})
	require.NoError(t, err)

	_, err = tripDAO.InsertExpense(ctx, dao.Expense{
		TripID:   trip.ID,
		Category: "food",
		Amount:   42.5,
		Date:     "2026-06-02",
	})
	require.NoError(t, err)

	require.NoError(t, tripDAO.DeleteTrip(ctx, trip.ID, "user-1"))

	_, err = tripDAO.FindTripByIDAndUser(ctx, trip.ID, "user-1")
	assert.ErrorIs(t, err, dao.ErrTripNotFound)

	_, err = tripDAO.FindStopByID(ctx, stop.ID)
	assert.ErrorIs(t, err, dao.ErrStopNotFound)

	_, err = tripDAO.FindActivityByID(ctx, activity.ID)
	assert.ErrorIs(t, err, dao.ErrActivityNotFound)

	expenses, err := tripDAO.FindExpensesByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestTripDAO_DeleteTrip_WrongOwner(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	tripDAO := dao.NewTripDAO(db)
	ctx := context.Background()

	trip := seedTrip(t, tripDAO, "user-1")

	err := tripDAO.DeleteTrip(ctx, trip.ID, "user-2")
	assert.ErrorIs(t, err, dao.ErrTripNotFound)

	// The trip must be untouched.
	_, err = tripDAO.FindTripByIDAndUser(ctx, trip.ID, "user-1")
	assert.NoError(t, err)
}

func TestTripDAO_FindTripByPublicURL(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	tripDAO := dao.NewTripDAO(db)
	ctx := context.Background()

	trip := seedTrip(t, tripDAO, "user-1")

	// Unpublished trips are not reachable by URL even if one is set.
	_, err := tripDAO.UpdateTrip(ctx, trip.ID, "user-1", map[string]interface{}{
		"public_url": "share-token",
	})
	require.NoError(t, err)

	_, err = tripDAO.FindTripByPublicURL(ctx, "share-token")
	assert.ErrorIs(t, err, dao.ErrTripNotFound)

	_, err = tripDAO.UpdateTrip(ctx, trip.ID, "user-1", map[string]interface{}{
		"is_public": true,
	})
	require.NoError(t, err)

	found, err := tripDAO.FindTripByPublicURL(ctx, "share-token")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, found.ID)
}

func TestTripDAO_TopCities(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	tripDAO := dao.NewTripDAO(db)
	ctx := context.Background()

	trip := seedTrip(t, tripDAO, "user-1")

	counts := map[string]int{"city-1": 3, "city-2": 1, "city-3": 2}
	for cityID, n := range counts {
		for i := 0; i < n; i++ {
			_, err := tripDAO.InsertStop(ctx, dao.Stop{
				TripID:   trip.ID,
				CityID:   cityID,
				CityName: cityID,
				Country:  "X",
			})
			require.NoError(t, err)
		}
	}

	top, err := tripDAO.TopCities(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "city-1", top[0].CityID)
	assert.Equal(t, int64(3), top[0].Count)
	assert.Equal(t, "city-3", top[1].CityID)
}
