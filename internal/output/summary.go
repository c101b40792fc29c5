package output

import (
	"prodtable/internal/catalog"
	"prodtable/internal/rating"
)

// Summary is the view-model behind the quality chart and the print footer.
type Summary struct {
	Count        int
	MeanQuality  float64
	Distribution [catalog.MaxQuality]int // Distribution[q-1] counts products rated q
	Grades       map[string]int
}

// BuildSummary aggregates the product list. Out-of-range qualities are
// counted under their grade but left out of the mean and the distribution.
func BuildSummary(ps catalog.Products) Summary {
	s := Summary{
		Count:  len(ps),
		Grades: make(map[string]int),
	}

	total, rated := 0, 0
	for _, r := range rating.Evaluate(ps) {
		s.Grades[r.Grade]++
		if r.Grade == rating.GradeInvalid {
			continue
		}
		s.Distribution[r.Quality-1]++
		total += r.Quality
		rated++
	}

	if rated > 0 {
		s.MeanQuality = float64(total) / float64(rated)
	}
	return s
}

// CountFor returns how many products are rated q.
func (s Summary) CountFor(q int) int {
	if q < catalog.MinQuality || q > catalog.MaxQuality {
		return 0
	}
	return s.Distribution[q-1]
}
