package domain

// BudgetBreakdown buckets a trip's spending by expense category. The
// activities bucket includes the captured costs of the trip's activities
// on top of any expenses logged under that category.
type BudgetBreakdown struct {
	Transport     float64 `json:"transport"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Other         float64 `json:"other"`
}

func (b BudgetBreakdown) Total() float64 {
	return b.Transport + b.Accommodation + b.Food + b.Activities + b.Other
}

type TripBudget struct {
	Total           float64         `json:"total"`
	Breakdown       BudgetBreakdown `json:"breakdown"`
	ActivitiesCount int             `json:"activities_count"`
	ExpensesCount   int             `json:"expenses_count"`
}
