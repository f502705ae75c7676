// Package domain defines the workout variants and the metrics derived from raw sensor readings.
package domain

const (
	lenStep = 0.65 // metres per step
	mInKm   = 1000
	minInH  = 60
)

// Workout is a single completed training session.
type Workout interface {
	Name() string
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
	Summary() (Summary, error)
}

// Training carries the measurements shared by every workout variant.
//
// Training itself has no calorie formula; concrete variants embed it and
// provide their own.
type Training struct {
	Action   int     // steps, or strokes for swimming
	Duration float64 // hours
	Weight   float64 // kg
}

// Name reports the display name of the workout.
func (t Training) Name() string { return "Training" }

// Hours returns the session duration.
func (t Training) Hours() float64 { return t.Duration }

// Distance returns the covered distance in km.
func (t Training) Distance() float64 {
	return distance(t.Action, lenStep)
}

// MeanSpeed returns the average speed over the whole session in km/h.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// SpentCalories is undefined for the base type.
func (t Training) SpentCalories() (float64, error) {
	return 0, &NotImplementedError{Type: t.Name()}
}

// Summary builds the summary for the base type, which always fails because
// it has no calorie formula.
func (t Training) Summary() (Summary, error) {
	return buildSummary(t)
}

func distance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

// buildSummary evaluates the metrics in a fixed order: calories come last
// since they may depend on the mean speed.
func buildSummary(w Workout) (Summary, error) {
	dist := w.Distance()
	speed := w.MeanSpeed()
	calories, err := w.SpentCalories()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		TrainingType: w.Name(),
		Duration:     w.Hours(),
		Distance:     dist,
		Speed:        speed,
		Calories:     calories,
	}, nil
}

// Running is a jogging session.
type Running struct {
	Training
}

const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 1.79
)

// Name reports the display name of the workout.
func (r Running) Name() string { return "Running" }

// SpentCalories returns the burned energy in kcal.
func (r Running) SpentCalories() (float64, error) {
	return (runCaloriesSpeedMultiplier*r.MeanSpeed() + runCaloriesSpeedShift) *
		r.Weight / mInKm * minInH * r.Duration, nil
}

// Summary computes the workout metrics.
func (r Running) Summary() (Summary, error) { return buildSummary(r) }

// SportsWalking is a race-walking session.
type SportsWalking struct {
	Training
	Height float64 // cm
}

const (
	walkCaloriesWeightFactor = 0.035
	walkCaloriesSpeedFactor  = 0.029
	kmhInMs                  = 0.278
	cmInM                    = 100
)

// Name reports the display name of the workout.
func (s SportsWalking) Name() string { return "SportsWalking" }

// SpentCalories returns the burned energy in kcal.
//
// The 0.029 coefficient only scales the speed term; the weight term is added
// unscaled. Reported figures depend on this grouping.
func (s SportsWalking) SpentCalories() (float64, error) {
	speedMs := s.MeanSpeed() * kmhInMs
	return (walkCaloriesWeightFactor*s.Weight +
		(speedMs*speedMs/(s.Height/cmInM))*walkCaloriesSpeedFactor*s.Weight) *
		s.Duration * minInH, nil
}

// Summary computes the workout metrics.
func (s SportsWalking) Summary() (Summary, error) { return buildSummary(s) }

// Swimming is a pool swimming session.
type Swimming struct {
	Training
	LengthPool float64 // m
	CountPool  int     // laps
}

const (
	swimLenStep            = 1.38 // metres per stroke
	swimCaloriesSpeedShift = 1.1
	swimCaloriesWeightMult = 2
)

// Name reports the display name of the workout.
func (s Swimming) Name() string { return "Swimming" }

// Distance returns the stroke-derived distance in km. It does not feed the
// speed or calorie figures.
func (s Swimming) Distance() float64 {
	return distance(s.Action, swimLenStep)
}

// MeanSpeed returns the average speed derived from the pool laps, in km/h.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

// SpentCalories returns the burned energy in kcal.
func (s Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMult * s.Weight * s.Duration, nil
}

// Summary computes the workout metrics.
func (s Swimming) Summary() (Summary, error) { return buildSummary(s) }
