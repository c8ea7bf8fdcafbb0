package analytics

import (
	"fmt"
)

const DaysInWeek = 7

// DashboardResponse is the payload of GET /analytics/{userId}/dashboard.
type DashboardResponse struct {
	TodayCalories    *float64         `json:"todayCalories"`
	Labels           []string         `json:"labels"`
	WorkoutDatasets  []WorkoutDataset `json:"workoutDatasets,omitempty"`
	CalorieData      []float64        `json:"calorieData"`
	CaloriesConsumed []float64        `json:"caloriesConsumed,omitempty"`
	TodayWater       float64          `json:"todayWater"`
	SleepHistory     []SleepEntry     `json:"sleepHistory"`
}

// WorkoutDataset holds, for one exercise type, a value per labeled day.
type WorkoutDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type SleepEntry struct {
	Day     string  `json:"day"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
}

// Validate checks the shape the dashboard relies on: today's calories present,
// one label per day of the week, and every per-day series aligned with the labels.
// caloriesConsumed and workoutDatasets are optional.
func (r *DashboardResponse) Validate() error {
	if r.TodayCalories == nil {
		return fmt.Errorf("%w: todayCalories missing", ErrMalformed)
	}
	if len(r.Labels) != DaysInWeek {
		return fmt.Errorf("%w: expected %d labels, got %d", ErrMalformed, DaysInWeek, len(r.Labels))
	}
	if len(r.CalorieData) != len(r.Labels) {
		return fmt.Errorf("%w: calorieData has %d values for %d labels", ErrMalformed, len(r.CalorieData), len(r.Labels))
	}
	if r.CaloriesConsumed != nil && len(r.CaloriesConsumed) != len(r.Labels) {
		return fmt.Errorf("%w: caloriesConsumed has %d values for %d labels", ErrMalformed, len(r.CaloriesConsumed), len(r.Labels))
	}
	for _, ds := range r.WorkoutDatasets {
		if len(ds.Data) != len(r.Labels) {
			return fmt.Errorf("%w: workout dataset [%s] has %d values for %d labels", ErrMalformed, ds.Label, len(ds.Data), len(r.Labels))
		}
	}
	return nil
}

// WeeklySummary is the payload of GET /analytics/{userId}/weekly,
// covering the last 7 days including today.
type WeeklySummary struct {
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	TotalWorkoutMinutes  int     `json:"totalWorkoutMinutes"`
	TotalWorkoutSessions int     `json:"totalWorkoutSessions"`
	TotalMealCalories    int     `json:"totalMealCalories"`
	AvgWaterIntake       float64 `json:"avgWaterIntake"`
	AvgSleepHours        float64 `json:"avgSleepHours"`
}
