package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"go.uber.org/multierr"
)

const (
	WaterGoalLiters = 3.7
	StepsGoal       = 10000
)

// Renderer draws a Stats record. Renderers never see where the stats came from.
type Renderer interface {
	Render(ctx context.Context, stats *Stats) error
}

type BarSeries struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// BarChart is a render-ready chart: one series per bar group, one value per label.
type BarChart struct {
	Labels  []string    `json:"labels"`
	Stacked bool        `json:"stacked"`
	Series  []BarSeries `json:"series"`
}

// ProgressBar holds a display value and its ratio to the goal, capped at 1.
type ProgressBar struct {
	Value float64 `json:"value"`
	Goal  float64 `json:"goal"`
	Ratio float64 `json:"ratio"`
}

// View is the derived, render-ready form of Stats.
type View struct {
	CaloriesText  string       `json:"caloriesText"`
	Workouts      BarChart     `json:"workouts"`
	Calories      BarChart     `json:"calories"`
	Water         ProgressBar  `json:"water"`
	Steps         ProgressBar  `json:"steps"`
	ExerciseDays  int          `json:"exerciseDays"`
	SleepHistory  []SleepEntry `json:"sleepHistory"`
	StatsSnapshot *Stats       `json:"stats"`
}

func NewView(stats *Stats) *View {
	workouts := BarChart{
		Labels:  stats.ChartLabels,
		Stacked: true,
		Series:  make([]BarSeries, 0, len(stats.ChartData.WorkoutDatasets)),
	}
	for _, ds := range stats.ChartData.WorkoutDatasets {
		workouts.Series = append(workouts.Series, BarSeries{Label: ds.Label, Values: ds.Data})
	}

	sleep := stats.SleepHistory
	if sleep == nil {
		sleep = []SleepEntry{}
	}

	return &View{
		CaloriesText: fmt.Sprintf("%d kcal", stats.Calories),
		Workouts:     workouts,
		Calories: BarChart{
			Labels: stats.ChartLabels,
			Series: []BarSeries{
				{Label: "Burned", Values: stats.ChartData.CaloriesBurned},
				{Label: "Consumed", Values: stats.ChartData.CaloriesConsumed},
			},
		},
		Water:         WaterProgress(stats.Water),
		Steps:         StepsProgress(stats.Progress.Steps),
		ExerciseDays:  stats.Progress.ExerciseDays,
		SleepHistory:  sleep,
		StatsSnapshot: stats,
	}
}

// WaterProgress caps the displayed intake at the daily goal.
func WaterProgress(liters float64) ProgressBar {
	value := math.Min(math.Max(liters, 0), WaterGoalLiters)
	return ProgressBar{
		Value: value,
		Goal:  WaterGoalLiters,
		Ratio: value / WaterGoalLiters,
	}
}

func StepsProgress(steps int) ProgressBar {
	value := math.Min(math.Max(float64(steps), 0), StepsGoal)
	return ProgressBar{
		Value: value,
		Goal:  StepsGoal,
		Ratio: value / StepsGoal,
	}
}

type JSONRenderer struct {
	w io.Writer
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

func (r *JSONRenderer) Render(_ context.Context, stats *Stats) error {
	if err := json.NewEncoder(r.w).Encode(NewView(stats)); err != nil {
		return fmt.Errorf("encode dashboard view: %w", err)
	}
	return nil
}

type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(_ context.Context, stats *Stats) error {
	view := NewView(stats)

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(&sb, "Calories today: %s\n\n", view.CaloriesText)

	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(view.Workouts.Labels, "\t"))
	for _, series := range view.Workouts.Series {
		fmt.Fprintf(tw, "%s\t%s\t\n", series.Label, joinValues(series.Values))
	}
	for _, series := range view.Calories.Series {
		fmt.Fprintf(tw, "%s\t%s\t\n", series.Label, joinValues(series.Values))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush chart table: %w", err)
	}

	fmt.Fprintf(&sb, "\nWater: %.1f / %.1f L %s\n", view.Water.Value, view.Water.Goal, bar(view.Water.Ratio))
	fmt.Fprintf(&sb, "Steps: %.0f / %.0f %s\n", view.Steps.Value, view.Steps.Goal, bar(view.Steps.Ratio))
	fmt.Fprintf(&sb, "Exercise days: %d\n", view.ExerciseDays)

	sb.WriteString("\nSleep:\n")
	for _, s := range view.SleepHistory {
		fmt.Fprintf(&sb, "  %s  %.1fh  %s\n", s.Day, s.Hours, s.Quality)
	}

	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("write dashboard text: %w", err)
	}
	return nil
}

func joinValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, "\t")
}

func bar(ratio float64) string {
	const width = 20
	filled := int(math.Round(ratio * width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// MultiRenderer renders to all of its renderers, even when some of them fail.
type MultiRenderer []Renderer

func (m MultiRenderer) Render(ctx context.Context, stats *Stats) error {
	var err error
	for _, r := range m {
		err = multierr.Append(err, r.Render(ctx, stats))
	}
	return err
}
