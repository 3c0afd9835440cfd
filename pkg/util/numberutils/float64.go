package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a finite float64.
// Surrounding spaces are ignored; NaN and infinities are rejected.
func ToFloat64WithError(str string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: str, Err: strconv.ErrRange}
	}
	return value, nil
}

// IsFloat64InRange checks if the given number is within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}

// ToCoordinates parses a latitude/longitude pair. It returns false when either
// value is missing, malformed or outside [-90, 90] / [-180, 180].
func ToCoordinates(rawLat, rawLon string) (float64, float64, bool) {
	lat, err := ToFloat64WithError(rawLat)
	if err != nil || !IsFloat64InRange(lat, -90, 90) {
		return 0, 0, false
	}
	lon, err := ToFloat64WithError(rawLon)
	if err != nil || !IsFloat64InRange(lon, -180, 180) {
		return 0, 0, false
	}
	return lat, lon, true
}
