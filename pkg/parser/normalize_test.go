package parser

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/scholarship-parser/models"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"--", ""},
		{" -- ", ""},
		{"March   15,\t2025", "March 15, 2025"},
		{"  Rolling  ", "Rolling"},
		{"Jan\n2025", "Jan 2025"},
	}

	for _, tt := range tests {
		if got := NormalizeDate(tt.in); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeScholarship(t *testing.T) {
	in := models.Scholarship{
		Name:        "  MIT Fund ",
		Link:        " https://x.org ",
		Opens:       "--",
		Deadline:    "March   15,  2025",
		Level:       []models.StudyLevel{"Undergraduate", models.LevelResearch},
		Eligibility: " Open to all\n",
		Includes:    "Full tuition  ",
	}

	got := NormalizeScholarship(in)
	want := models.Scholarship{
		Name:        "MIT Fund",
		Link:        "https://x.org",
		Opens:       "",
		Deadline:    "March 15, 2025",
		Level:       []models.StudyLevel{models.LevelUndergraduate, models.LevelResearch},
		Eligibility: "Open to all",
		Includes:    "Full tuition",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeScholarship() = %+v, want %+v", got, want)
	}

	if in.Level[0] != "Undergraduate" {
		t.Errorf("input Level was mutated: %v", in.Level)
	}
	got.Level[0] = models.LevelShortTerm
	if in.Level[0] != "Undergraduate" {
		t.Error("output shares its Level slice with the input")
	}
}

func TestNormalizeScholarshipIdempotent(t *testing.T) {
	inputs := []models.Scholarship{
		{Name: " A ", Opens: " -- ", Deadline: "1  Jan", Level: []models.StudyLevel{"PostGraduate"}, Eligibility: " x ", Includes: "y "},
		{Name: "B", Level: []models.StudyLevel{}},
		{Name: "\tC\t", Opens: "\n\n", Deadline: "--"},
	}

	for _, in := range inputs {
		once := NormalizeScholarship(in)
		twice := NormalizeScholarship(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("not idempotent: once = %+v, twice = %+v", once, twice)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	result := ParseMarkdownTable(sampleDocument)
	records := NormalizeAll(result.Scholarships)

	if len(records) != len(result.Scholarships) {
		t.Fatalf("NormalizeAll() returned %d records, want %d", len(records), len(result.Scholarships))
	}
	if got := records[0].Deadline; got != "March 15, 2025" {
		t.Errorf("Deadline = %q, want %q", got, "March 15, 2025")
	}
	if got := records[1].Opens; got != "" {
		t.Errorf("Opens = %q, want empty", got)
	}
}
