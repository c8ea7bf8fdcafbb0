package tracker

// WorkoutLog, MealLog and WaterSleepLog are the entries returned by the backend
// "today" endpoints.

type WorkoutLog struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	ExerciseType    string `json:"exerciseType"`
	DurationMinutes int    `json:"durationMinutes"`
	CaloriesBurned  *int   `json:"caloriesBurned"`
	LogDate         string `json:"logDate"`
}

type MealLog struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	MealType    string `json:"mealType"`
	Description string `json:"description"`
	Calories    *int   `json:"calories"`
	Protein     *int   `json:"protein"`
	Carbs       *int   `json:"carbs"`
	LogDate     string `json:"logDate"`
	MealTime    string `json:"mealTime"`
}

type WaterSleepLog struct {
	ID                int64    `json:"id"`
	UserID            int64    `json:"userId"`
	WaterIntakeLiters *float64 `json:"waterIntakeLiters"`
	SleepHours        *float64 `json:"sleepHours"`
	SleepQuality      string   `json:"sleepQuality"`
	LogDate           string   `json:"logDate"`
}
