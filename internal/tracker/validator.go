package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/session"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=tracker_test

type todayLogsFetcher interface {
	TodayMeals(ctx context.Context, sess session.Session) ([]MealLog, error)
	TodayWaterSleep(ctx context.Context, sess session.Session) ([]WaterSleepLog, error)
}

type MealCheck struct {
	MealType    string `json:"mealType"`
	Description string `json:"description"`
	MealTime    string `json:"mealTime"`
}

type WaterSleepCheck struct {
	WaterIntakeLiters *float64 `json:"waterIntakeLiters"`
	SleepHours        *float64 `json:"sleepHours"`
}

// Validator runs the tracker rules against the user's logs of today.
// A failed fetch of today's logs is returned as is and never treated as a pass.
type Validator struct {
	fetcher todayLogsFetcher
}

func NewValidator(fetcher todayLogsFetcher) *Validator {
	return &Validator{
		fetcher: fetcher,
	}
}

func (v *Validator) CheckMeal(ctx context.Context, sess session.Session, check MealCheck) error {
	if strings.TrimSpace(check.MealType) == "" || strings.TrimSpace(check.Description) == "" {
		return &RuleError{
			Rule:    RuleMealInput,
			Message: "Please enter meal type and description.",
		}
	}

	if err := CheckMealTime(check.MealType, check.MealTime); err != nil {
		return err
	}

	meals, err := v.fetcher.TodayMeals(ctx, sess)
	if err != nil {
		return fmt.Errorf("get today meals: %w", err)
	}

	return CheckMealNotLogged(meals, check.MealType)
}

// CheckWaterSleep validates the entry and returns the sleep quality derived from
// the entered hours, or an empty quality when no sleep is entered.
func (v *Validator) CheckWaterSleep(ctx context.Context, sess session.Session, check WaterSleepCheck) (dashboard.SleepQuality, error) {
	if check.WaterIntakeLiters == nil && check.SleepHours == nil {
		return "", CheckWaterSleep(nil, nil, nil)
	}
	if (check.WaterIntakeLiters != nil && *check.WaterIntakeLiters < 0) ||
		(check.SleepHours != nil && *check.SleepHours < 0) {
		return "", &RuleError{
			Rule:    RuleWaterSleepInput,
			Message: "Water intake and sleep hours cannot be negative.",
		}
	}

	logs, err := v.fetcher.TodayWaterSleep(ctx, sess)
	if err != nil {
		return "", fmt.Errorf("get today water and sleep: %w", err)
	}

	if err := CheckWaterSleep(logs, check.WaterIntakeLiters, check.SleepHours); err != nil {
		return "", err
	}

	if check.SleepHours == nil {
		return "", nil
	}
	return ClassifySleep(*check.SleepHours), nil
}
