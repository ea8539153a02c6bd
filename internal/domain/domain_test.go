package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTripStatus(t *testing.T) {
	for _, valid := range []string{"upcoming", "ongoing", "completed"} {
		status, err := ParseTripStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, TripStatus(valid), status)
	}

	_, err := ParseTripStatus("cancelled")
	assert.Error(t, err)

	_, err = ParseTripStatus("Upcoming")
	assert.Error(t, err)
}

func TestParseActivityCategory(t *testing.T) {
	for _, valid := range []string{"sightseeing", "food", "adventure", "culture", "shopping", "nightlife"} {
		category, err := ParseActivityCategory(valid)
		assert.NoError(t, err)
		assert.Equal(t, ActivityCategory(valid), category)
	}

	_, err := ParseActivityCategory("relaxation")
	assert.Error(t, err)
}

func TestParseExpenseCategory(t *testing.T) {
	for _, valid := range []string{"transport", "accommodation", "food", "activities", "other"} {
		category, err := ParseExpenseCategory(valid)
		assert.NoError(t, err)
		assert.Equal(t, ExpenseCategory(valid), category)
	}

	_, err := ParseExpenseCategory("souvenirs")
	assert.Error(t, err)
}

func TestBudgetBreakdown_Total(t *testing.T) {
	breakdown := BudgetBreakdown{
		Transport:     100,
		Accommodation: 400,
		Food:          80,
		Activities:    75,
		Other:         10,
	}
	assert.Equal(t, 665.0, breakdown.Total())

	assert.Equal(t, 0.0, BudgetBreakdown{}.Total())
}

func TestUser_FullName(t *testing.T) {
	user := User{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", user.FullName())
}
