package dashboard

import (
	"math"
)

const (
	// DefaultSeed is the seed used when the live dashboard is unavailable.
	DefaultSeed = 12345

	syntheticExerciseDays = 3
	syntheticWater        = 2.1
)

var weekLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// prng is a sine-based generator: each call takes the fractional part of
// sin(state) * 10000 and then increments state. It is deterministic per seed,
// which is all the demo data needs.
type prng struct {
	state float64
}

func newPrng(seed int) *prng {
	return &prng{state: float64(seed)}
}

func (p *prng) next() float64 {
	x := math.Sin(p.state) * 10000
	p.state++
	return x - math.Floor(x)
}

// scaled returns floor(next() * scale) + offset.
func (p *prng) scaled(scale, offset float64) float64 {
	return math.Floor(p.next()*scale) + offset
}

func (p *prng) week(scale, offset float64) []float64 {
	values := make([]float64, len(weekLabels))
	for i := range values {
		values[i] = p.scaled(scale, offset)
	}
	return values
}

// Generate builds a plausible, fully populated week of stats from seed.
// The same seed always yields the same record. The draw order is fixed:
// calories, cardio, strength, burned, consumed, steps.
func Generate(seed int) *Stats {
	p := newPrng(seed)

	calories := int(p.scaled(1000, 1500))
	cardio := p.week(30, 0)
	strength := p.week(30, 0)
	burned := p.week(300, 200)
	consumed := p.week(500, 1800)
	steps := int(p.scaled(5000, 4000))

	labels := make([]string, len(weekLabels))
	copy(labels, weekLabels)

	return &Stats{
		Calories:    calories,
		ChartLabels: labels,
		ChartData: ChartData{
			WorkoutDatasets: []WorkoutDataset{
				{Label: "Cardio", Data: cardio},
				{Label: "Strength", Data: strength},
			},
			CaloriesBurned:   burned,
			CaloriesConsumed: consumed,
		},
		Water: syntheticWater,
		SleepHistory: []SleepEntry{
			{Day: "Mon", Hours: 7, Quality: SleepGood},
			{Day: "Tue", Hours: 6, Quality: "Fair"},
			{Day: "Wed", Hours: 8, Quality: SleepExcellent},
		},
		Progress: Progress{
			Steps:        steps,
			ExerciseDays: syntheticExerciseDays,
		},
	}
}
