package utils

import (
	"math"
	"strconv"
)

// Clamp limits a value between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Mean returns the arithmetic mean, or 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// FormatAverage renders an average with one decimal place, or "0" when
// there was nothing to average
func FormatAverage(values []float64) string {
	if len(values) == 0 {
		return "0"
	}
	return strconv.FormatFloat(Mean(values), 'f', 1, 64)
}
