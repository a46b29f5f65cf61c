package utils

import "math"

// RoundToDecimalPlaces arredonda f para a quantidade de casas informada.
// Empates vão para +∞ (-2.25 vira -2.2), como Math.round.
func RoundToDecimalPlaces(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	factor := math.Pow(10, float64(places))
	return math.Floor(f*factor+0.5) / factor
}
