package dashboard

type Provenance string

const (
	ProvenanceLive      Provenance = "live"
	ProvenanceSynthetic Provenance = "synthetic"
)

// SleepQuality is a free-form label; unknown values coming from the backend are kept as-is.
type SleepQuality string

const (
	SleepPoor      SleepQuality = "Poor"
	SleepAverage   SleepQuality = "Average"
	SleepGood      SleepQuality = "Good"
	SleepExcellent SleepQuality = "Excellent"
)

// Stats is the canonical dashboard record handed to renderers.
// Every per-day sequence has one value per entry of ChartLabels.
type Stats struct {
	Calories     int          `json:"calories"`
	ChartLabels  []string     `json:"chartLabels"`
	ChartData    ChartData    `json:"chartData"`
	Water        float64      `json:"water"`
	SleepHistory []SleepEntry `json:"sleepHistory"`
	Progress     Progress     `json:"progress"`
}

type ChartData struct {
	WorkoutDatasets  []WorkoutDataset `json:"workoutDatasets"`
	CaloriesBurned   []float64        `json:"caloriesBurned"`
	CaloriesConsumed []float64        `json:"caloriesConsumed"`
}

type WorkoutDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type SleepEntry struct {
	Day     string       `json:"day"`
	Hours   float64      `json:"hours"`
	Quality SleepQuality `json:"quality"`
}

type Progress struct {
	Steps        int `json:"steps"`
	ExerciseDays int `json:"exerciseDays"`
}

// Result is the outcome of one dashboard load.
// Cause is set only when a live attempt failed and the synthetic record replaced it.
type Result struct {
	Stats      *Stats
	Provenance Provenance
	Cause      error
}

func (r *Result) IsLive() bool {
	return r.Provenance == ProvenanceLive
}
