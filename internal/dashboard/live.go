package dashboard

import (
	"math"

	"github.com/2beens/fitcoach/internal/analytics"
)

// FromLive maps a validated backend dashboard response onto Stats.
// Steps are estimated as twice today's calories; exerciseDays is 1 when any
// workout dataset has a positive day, else 0.
func FromLive(resp *analytics.DashboardResponse) *Stats {
	calories := 0
	if resp.TodayCalories != nil {
		calories = int(math.Max(0, math.Round(*resp.TodayCalories)))
	}

	datasets := make([]WorkoutDataset, 0, len(resp.WorkoutDatasets))
	exerciseDays := 0
	for _, ds := range resp.WorkoutDatasets {
		data := make([]float64, len(ds.Data))
		copy(data, ds.Data)
		for _, v := range data {
			if v > 0 {
				exerciseDays = 1
			}
		}
		datasets = append(datasets, WorkoutDataset{Label: ds.Label, Data: data})
	}

	sleep := make([]SleepEntry, 0, len(resp.SleepHistory))
	for _, s := range resp.SleepHistory {
		sleep = append(sleep, SleepEntry{
			Day:     s.Day,
			Hours:   s.Hours,
			Quality: SleepQuality(s.Quality),
		})
	}

	return &Stats{
		Calories:    calories,
		ChartLabels: append([]string{}, resp.Labels...),
		ChartData: ChartData{
			WorkoutDatasets:  datasets,
			CaloriesBurned:   append([]float64{}, resp.CalorieData...),
			CaloriesConsumed: append([]float64{}, resp.CaloriesConsumed...),
		},
		Water:        math.Max(0, resp.TodayWater),
		SleepHistory: sleep,
		Progress: Progress{
			Steps:        calories * 2,
			ExerciseDays: exerciseDays,
		},
	}
}
