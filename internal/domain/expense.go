package domain

import (
	"fmt"
	"time"
)

// ExpenseCategory is the budget bucket an expense counts towards.
type ExpenseCategory string

const (
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseAccommodation ExpenseCategory = "accommodation"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseActivities    ExpenseCategory = "activities"
	ExpenseOther         ExpenseCategory = "other"
)

func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch category := ExpenseCategory(s); category {
	case ExpenseTransport, ExpenseAccommodation, ExpenseFood,
		ExpenseActivities, ExpenseOther:
		return category, nil
	default:
		return "", fmt.Errorf("unknown expense category %q", s)
	}
}

type Expense struct {
	ID          string          `json:"id"`
	TripID      string          `json:"trip_id"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}
