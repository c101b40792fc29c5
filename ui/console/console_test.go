package console

import (
	"bytes"
	"strings"
	"testing"

	"prodtable/internal/catalog"
	"prodtable/internal/columns"
	"prodtable/internal/output"
	"prodtable/internal/rating"
	"prodtable/internal/table"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		grade    string
		expected string
	}{
		{rating.GradeLow, colorRed},
		{rating.GradeFair, colorYellow},
		{rating.GradeHigh, colorGreen},
		{rating.GradeInvalid, colorReset},
		{"", colorReset},
	}

	for _, tt := range tests {
		result := colorFor(tt.grade)
		if result != tt.expected {
			t.Errorf("colorFor(%q) = %q; want %q", tt.grade, result, tt.expected)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"abcd", 4, "abcd"},
	}
	for _, tt := range tests {
		if got := fit(tt.in, tt.n); got != tt.want {
			t.Errorf("fit(%q, %d) = %q; want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func report(order columns.Order, color bool) Report {
	ps := catalog.Mock()
	set := table.DefaultColumns()
	return Report{
		Title:   "Product Listing",
		Grid:    table.Build(ps, set, order),
		Columns: set,
		Widths:  table.DefaultWidths(set),
		Summary: output.BuildSummary(ps),
		Color:   color,
	}
}

func TestPrintPlain(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, report(columns.DefaultOrder(), false))

	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Error("Expected no escape codes without colour")
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, header, rule, 5 rows, summary
	if len(lines) != 9 {
		t.Fatalf("Expected 9 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "ID") {
		t.Errorf("Expected header to start with ID, got %q", lines[1])
	}
	if !strings.Contains(lines[2+5], table.BrokenImage) {
		t.Errorf("Expected broken image placeholder on the last row, got %q", lines[7])
	}
	if !strings.Contains(lines[8], "5 products") || !strings.Contains(lines[8], "mean quality 3.00") {
		t.Errorf("Unexpected summary %q", lines[8])
	}
}

func TestPrintFollowsOrder(t *testing.T) {
	order, err := columns.Parse("price,name,id,quality,description,imageUrl")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	Print(&buf, report(order, false))

	header := strings.Split(buf.String(), "\n")[1]
	if !strings.HasPrefix(header, "Price") {
		t.Errorf("Expected header to start with Price, got %q", header)
	}
}

func TestPrintColor(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, report(columns.DefaultOrder(), true))

	if !strings.Contains(buf.String(), colorGreen) {
		t.Error("Expected high grades to be painted green")
	}
}
