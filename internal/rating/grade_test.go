package rating

import (
	"prodtable/internal/catalog"
	"testing"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		quality  int
		expected string
	}{
		{1, GradeLow},
		{2, GradeLow},
		{3, GradeFair},
		{4, GradeHigh},
		{5, GradeHigh},
		{0, GradeInvalid},
		{6, GradeInvalid},
	}

	for _, tt := range tests {
		if got := Grade(tt.quality); got != tt.expected {
			t.Errorf("Grade(%d) = %q; want %q", tt.quality, got, tt.expected)
		}
	}
}

func TestEvaluate(t *testing.T) {
	results := Evaluate(catalog.Mock())

	if len(results) != len(catalog.Mock()) {
		t.Fatalf("Expected %d results, got %d", len(catalog.Mock()), len(results))
	}

	expected := map[string]string{
		"1": GradeHigh,
		"2": GradeHigh,
		"3": GradeLow,
		"4": GradeFair,
		"5": GradeLow,
	}
	for _, r := range results {
		if want, ok := expected[r.ProductID]; ok && r.Grade != want {
			t.Errorf("Product %s: expected grade %s, got %s", r.ProductID, want, r.Grade)
		}
	}
}
