package parser

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/scholarship-parser/models"
)

func completeRow() models.TableRow {
	return models.TableRow{
		Scholarship: "[MIT Fund](https://x.org)",
		Opens:       "Jan 2025",
		Deadline:    "Mar 2025",
		Level:       "Undergraduate",
		Eligibility: "Open to all",
		Includes:    "Full tuition",
	}
}

func TestValidateRow(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(r *models.TableRow)
		wantValid    bool
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name:         "complete row",
			mutate:       func(r *models.TableRow) {},
			wantValid:    true,
			wantErrors:   []string{},
			wantWarnings: []string{},
		},
		{
			name:         "empty eligibility",
			mutate:       func(r *models.TableRow) { r.Eligibility = "" },
			wantValid:    false,
			wantErrors:   []string{"Eligibility criteria is required"},
			wantWarnings: []string{},
		},
		{
			name: "every required field blank",
			mutate: func(r *models.TableRow) {
				r.Scholarship = "  "
				r.Eligibility = "\t"
				r.Includes = ""
			},
			wantValid: false,
			wantErrors: []string{
				"Scholarship name is required",
				"Eligibility criteria is required",
				"Benefits/Includes information is required",
			},
			wantWarnings: []string{"No application link provided"},
		},
		{
			name: "placeholders and plain name",
			mutate: func(r *models.TableRow) {
				r.Scholarship = "Community Grant"
				r.Opens = "--"
				r.Deadline = ""
				r.Level = "--"
			},
			wantValid:  true,
			wantErrors: []string{},
			wantWarnings: []string{
				"Opening date not specified",
				"Deadline not specified",
				"Study level not specified",
				"No application link provided",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := completeRow()
			tt.mutate(&row)

			got := ValidateRow(row)
			if got.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tt.wantValid)
			}
			if !reflect.DeepEqual(got.Errors, tt.wantErrors) {
				t.Errorf("Errors = %q, want %q", got.Errors, tt.wantErrors)
			}
			if !reflect.DeepEqual(got.Warnings, tt.wantWarnings) {
				t.Errorf("Warnings = %q, want %q", got.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestConvertRow(t *testing.T) {
	row := models.TableRow{
		Scholarship: "[MIT Fund](https://x.org) [(Application Link)](https://apply.x.org)",
		Opens:       "--",
		Deadline:    "--",
		Level:       "Undergraduate<br>Research",
		Eligibility: "Open to all ",
		Includes:    "Full tuition",
	}

	got := ConvertRow(row)
	want := models.Scholarship{
		Name:        "MIT Fund",
		Link:        "https://x.org",
		Opens:       "",
		Deadline:    "",
		Level:       []models.StudyLevel{models.LevelUndergraduate, models.LevelResearch},
		Eligibility: "Open to all ",
		Includes:    "Full tuition",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConvertRow() = %+v, want %+v", got, want)
	}
}

func TestConvertRowUnknownLevel(t *testing.T) {
	got := ConvertRow(models.TableRow{Scholarship: "Grant", Level: "Anyone", Eligibility: "All", Includes: "Cash"})
	if got.Level == nil || len(got.Level) != 0 {
		t.Errorf("Level = %#v, want empty non-nil slice", got.Level)
	}
}
