package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/fitcoach/internal/dashboard"
)

const (
	DailyWaterLimitLiters = 3.7
	DailySleepLimitHours  = 9.0
)

const (
	RuleMealTime        = "meal_time"
	RuleMealDuplicate   = "meal_duplicate"
	RuleMealInput       = "meal_input"
	RuleWaterLimit      = "water_limit"
	RuleSleepLimit      = "sleep_limit"
	RuleWaterSleepInput = "water_sleep_input"
)

// RuleError is returned when a log entry breaks one of the tracker rules.
// Message is meant to be shown to the user as-is.
type RuleError struct {
	Rule    string
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

type mealWindow struct {
	start, end int // minutes since midnight, both inclusive
	label      string
}

var mealWindows = map[string]mealWindow{
	"Breakfast": {start: 6 * 60, end: 11 * 60, label: "06:00 to 11:00 (6 AM to 11 AM)"},
	"Lunch":     {start: 11 * 60, end: 15 * 60, label: "11:00 to 15:00 (11 AM to 3 PM)"},
	"Snack":     {start: 15 * 60, end: 18*60 + 30, label: "15:00 to 18:30 (3 PM to 6:30 PM)"},
	"Dinner":    {start: 18*60 + 30, end: 23 * 60, label: "18:30 to 23:00 (6:30 PM to 11 PM)"},
}

// ClassifySleep derives the sleep quality from the hours slept.
func ClassifySleep(hours float64) dashboard.SleepQuality {
	switch {
	case hours >= 7 && hours <= 9:
		return dashboard.SleepExcellent
	case (hours >= 6 && hours < 7) || hours > 9:
		return dashboard.SleepGood
	case hours >= 5 && hours < 6:
		return dashboard.SleepAverage
	default:
		return dashboard.SleepPoor
	}
}

// CheckMealTime checks that mealTime ("HH:MM") falls into the window of mealType.
// An empty time and meal types without a window are always allowed.
func CheckMealTime(mealType, mealTime string) error {
	if mealTime == "" {
		return nil
	}

	window, ok := mealWindows[mealType]
	if !ok {
		return nil
	}

	minutes, err := parseClock(mealTime)
	if err != nil {
		return &RuleError{
			Rule:    RuleMealInput,
			Message: fmt.Sprintf("Meal time [%s] is not valid, expected HH:MM.", mealTime),
		}
	}

	if minutes < window.start || minutes > window.end {
		return &RuleError{
			Rule:    RuleMealTime,
			Message: fmt.Sprintf("The gentle time for %s is from %s.", mealType, window.label),
		}
	}

	return nil
}

func parseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	// "HH:MM:SS" is accepted, seconds are ignored
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("bad clock: %s", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad hour: %s", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad minute: %s", clock)
	}
	return h*60 + m, nil
}

// CheckMealNotLogged allows only one meal of each type per day.
func CheckMealNotLogged(todayMeals []MealLog, mealType string) error {
	for _, m := range todayMeals {
		if m.MealType == mealType {
			return &RuleError{
				Rule:    RuleMealDuplicate,
				Message: fmt.Sprintf("You have already logged %s for today! You can only add it once per day.", mealType),
			}
		}
	}
	return nil
}

// CheckWaterSleep checks that adding water and/or sleep keeps the day's totals
// within the daily limits. At least one of them must be set.
func CheckWaterSleep(todayLogs []WaterSleepLog, addWater, addSleep *float64) error {
	if addWater == nil && addSleep == nil {
		return &RuleError{
			Rule:    RuleWaterSleepInput,
			Message: "Enter at least water intake or sleep hours.",
		}
	}

	var currentWater, currentSleep float64
	for _, l := range todayLogs {
		if l.WaterIntakeLiters != nil {
			currentWater += *l.WaterIntakeLiters
		}
		if l.SleepHours != nil {
			currentSleep += *l.SleepHours
		}
	}

	if addWater != nil && currentWater+*addWater > DailyWaterLimitLiters {
		remaining := max(0, DailyWaterLimitLiters-currentWater)
		return &RuleError{
			Rule: RuleWaterLimit,
			Message: fmt.Sprintf(
				"Daily water limit is %.1f Liters. You have already consumed %.1f L. You can only add up to %.1f L more.",
				DailyWaterLimitLiters, currentWater, remaining,
			),
		}
	}

	if addSleep != nil && currentSleep+*addSleep > DailySleepLimitHours {
		remaining := max(0, DailySleepLimitHours-currentSleep)
		return &RuleError{
			Rule: RuleSleepLimit,
			Message: fmt.Sprintf(
				"Daily sleep limit is %.0f hours. You have already logged %.1f hrs. You can only add up to %.1f hrs more.",
				DailySleepLimitHours, currentSleep, remaining,
			),
		}
	}

	return nil
}
