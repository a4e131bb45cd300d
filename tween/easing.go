package tween

import "math"

// Easing maps linear progress in [0,1] to eased progress
// Back and elastic curves overshoot outside [0,1] between the endpoints
type Easing func(t float64) float64

const (
	backC1    = 1.70158
	backC3    = backC1 + 1
	elasticC4 = (2 * math.Pi) / 3
	elasticC5 = (2 * math.Pi) / 4.5
)

// Linear is constant rate
func Linear(t float64) float64 {
	return t
}

// QuadOut decelerates to the end
func QuadOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// BackIn pulls slightly backwards before accelerating
func BackIn(t float64) float64 {
	return backC3*t*t*t - backC1*t*t
}

// BackOut overshoots the end and settles back
func BackOut(t float64) float64 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}

// ElasticOut springs past the end with decaying oscillation
func ElasticOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
}

// Elastic oscillates at both ends
func Elastic(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
	}
	return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
}

// ByName resolves an easing for configuration files, unknown names fall back to Linear
func ByName(name string) Easing {
	switch name {
	case "quad-out":
		return QuadOut
	case "back-in":
		return BackIn
	case "back-out":
		return BackOut
	case "elastic":
		return Elastic
	case "elastic-out":
		return ElasticOut
	default:
		return Linear
	}
}
