// Package report assembles the terminal dashboard: the daily stats plus the weekly
// summary and today's workouts, loaded concurrently.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/tracker"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=report_test

type dashboardLoader interface {
	Load(ctx context.Context, sess session.Session) *dashboard.Result
}

type weeklyFetcher interface {
	Weekly(ctx context.Context, sess session.Session) (*analytics.WeeklySummary, error)
}

type workoutsFetcher interface {
	TodayWorkouts(ctx context.Context, sess session.Session) ([]tracker.WorkoutLog, error)
}

type Report struct {
	Dashboard *dashboard.Result
	Weekly    *analytics.WeeklySummary
	Workouts  []tracker.WorkoutLog

	// WeeklyErr and WorkoutsErr are kept so the report can say why a section is missing.
	WeeklyErr   error
	WorkoutsErr error

	anonymous bool
}

type Builder struct {
	dashboard dashboardLoader
	weekly    weeklyFetcher
	workouts  workoutsFetcher
}

func NewBuilder(dashboard dashboardLoader, weekly weeklyFetcher, workouts workoutsFetcher) *Builder {
	return &Builder{
		dashboard: dashboard,
		weekly:    weekly,
		workouts:  workouts,
	}
}

// Build loads all report sections in parallel. Only the daily stats are required,
// and they never fail, so an error is returned only when ctx is done.
func (b *Builder) Build(ctx context.Context, sess session.Session) (*Report, error) {
	report := &Report{anonymous: sess.IsAnonymous()}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		report.Dashboard = b.dashboard.Load(egCtx, sess)
		return nil
	})

	if !sess.IsAnonymous() {
		eg.Go(func() error {
			report.Weekly, report.WeeklyErr = b.weekly.Weekly(egCtx, sess)
			if report.WeeklyErr != nil {
				log.Debugf("report: weekly summary for user %s: %s", sess.UserID, report.WeeklyErr)
			}
			return nil
		})
		eg.Go(func() error {
			report.Workouts, report.WorkoutsErr = b.workouts.TodayWorkouts(egCtx, sess)
			if report.WorkoutsErr != nil {
				log.Debugf("report: today workouts for user %s: %s", sess.UserID, report.WorkoutsErr)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	return report, nil
}

// WriteText renders the report for a terminal.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "== Dashboard (%s) ==\n", r.Dashboard.Provenance)
	if r.Dashboard.Cause != nil {
		fmt.Fprintf(&sb, "live data unavailable: %s\n", r.Dashboard.Cause)
	}
	err := dashboard.NewTextRenderer(&sb).Render(context.Background(), r.Dashboard.Stats)

	sb.WriteString("\n== Last 7 days ==\n")
	switch {
	case r.anonymous:
		sb.WriteString("sign in to see your weekly summary\n")
	case r.Weekly != nil:
		fmt.Fprintf(&sb, "%s .. %s\n", r.Weekly.StartDate, r.Weekly.EndDate)
		fmt.Fprintf(&sb, "Workouts: %d sessions, %d min\n", r.Weekly.TotalWorkoutSessions, r.Weekly.TotalWorkoutMinutes)
		fmt.Fprintf(&sb, "Meal calories: %d kcal\n", r.Weekly.TotalMealCalories)
		fmt.Fprintf(&sb, "Avg water: %.1f L, avg sleep: %.1fh\n", r.Weekly.AvgWaterIntake, r.Weekly.AvgSleepHours)
	case r.WeeklyErr != nil:
		fmt.Fprintf(&sb, "unavailable: %s\n", analytics.FailureReason(r.WeeklyErr))
	}

	sb.WriteString("\n== Today's workouts ==\n")
	switch {
	case r.anonymous:
		sb.WriteString("sign in to see your workouts\n")
	case r.WorkoutsErr != nil:
		fmt.Fprintf(&sb, "unavailable: %s\n", analytics.FailureReason(r.WorkoutsErr))
	case len(r.Workouts) == 0:
		sb.WriteString("none logged yet\n")
	default:
		for _, workout := range r.Workouts {
			burned := "-"
			if workout.CaloriesBurned != nil {
				burned = fmt.Sprintf("%d kcal", *workout.CaloriesBurned)
			}
			fmt.Fprintf(&sb, "  %s  %d min  %s\n", workout.ExerciseType, workout.DurationMinutes, burned)
		}
	}

	if _, writeErr := io.WriteString(w, sb.String()); writeErr != nil {
		err = multierr.Append(err, fmt.Errorf("write report: %w", writeErr))
	}
	return err
}
