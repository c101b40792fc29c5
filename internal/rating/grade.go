package rating

import (
	"prodtable/internal/catalog"
)

const (
	GradeLow     = "LOW"
	GradeFair    = "FAIR"
	GradeHigh    = "HIGH"
	GradeInvalid = "INVALID"

	LowThreshold  = 2 // quality at or below is LOW
	HighThreshold = 4 // quality at or above is HIGH
)

type Result struct {
	ProductID string
	Quality   int
	Grade     string
}

// Grade buckets a quality value. Records loaded with a value outside the
// slider range are graded INVALID rather than rejected.
func Grade(q int) string {
	if q < catalog.MinQuality || q > catalog.MaxQuality {
		return GradeInvalid
	}
	if q <= LowThreshold {
		return GradeLow
	}
	if q >= HighThreshold {
		return GradeHigh
	}
	return GradeFair
}

func Evaluate(ps catalog.Products) []Result {
	result := make([]Result, 0, len(ps))
	for _, p := range ps {
		result = append(result, Result{
			ProductID: p.ID,
			Quality:   p.Quality,
			Grade:     Grade(p.Quality),
		})
	}
	return result
}
