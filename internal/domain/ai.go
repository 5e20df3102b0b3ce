package domain

// Request/response contracts for the external recommendation service.
// The service itself is an opaque collaborator; these types only pin down
// the boundary so callers on both sides stay type-safe.

type ScheduleConstraints struct {
	PreferredDays    []string `json:"preferredDays,omitempty"`
	EarliestStart    string   `json:"earliestStart,omitempty"`
	LatestEnd        string   `json:"latestEnd,omitempty"`
	DurationMinutes  int      `json:"durationMinutes,omitempty"`
	RequiredAttendee []string `json:"requiredAttendees,omitempty"`
}

type ScheduleSuggestion struct {
	StartTime               string  `json:"startTime"`
	EndTime                 string  `json:"endTime"`
	Confidence              float64 `json:"confidence"`
	Reason                  string  `json:"reason"`
	ParticipantAvailability float64 `json:"participantAvailability"`
}

type VendorCriteria struct {
	Categories []string `json:"categories,omitempty"`
	Location   string   `json:"location,omitempty"`
	MaxBudget  float64  `json:"maxBudget,omitempty"`
	MinRating  float64  `json:"minRating,omitempty"`
}

type BudgetRequest struct {
	TotalBudget float64            `json:"totalBudget"`
	Priorities  []string           `json:"priorities,omitempty"`
	Committed   map[string]float64 `json:"committed,omitempty"`
}

type BudgetAllocation struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
}

type BudgetPlan struct {
	TotalBudget float64            `json:"totalBudget"`
	Allocations []BudgetAllocation `json:"allocations"`
}
