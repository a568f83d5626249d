package parser

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dtnitsch/scholarship-parser/models"
)

// Placeholder marks a cell whose value is intentionally unspecified.
const Placeholder = "--"

// requiredFieldOrder fixes the order in which required-field errors are reported.
var requiredFieldOrder = []string{"scholarship", "eligibility", "includes"}

func notBlank(code, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

func isUnspecified(cell string) bool {
	return strings.TrimSpace(cell) == "" || cell == Placeholder
}

// requiredFieldErrors runs the required-field rules and returns every failure
// keyed by the row's json field name.
func requiredFieldErrors(row models.TableRow) validation.Errors {
	err := validation.ValidateStruct(&row,
		validation.Field(&row.Scholarship, validation.By(notBlank("scholarship.name_required", "Scholarship name is required"))),
		validation.Field(&row.Eligibility, validation.By(notBlank("scholarship.eligibility_required", "Eligibility criteria is required"))),
		validation.Field(&row.Includes, validation.By(notBlank("scholarship.includes_required", "Benefits/Includes information is required"))),
	)
	if errs, ok := err.(validation.Errors); ok {
		return errs
	}
	return nil
}

// rowDiagnostics checks a row and returns its diagnostics with Row left at 0.
// Errors come first in field order, followed by warnings.
func rowDiagnostics(row models.TableRow) []models.Diagnostic {
	var diags []models.Diagnostic

	errs := requiredFieldErrors(row)
	for _, field := range requiredFieldOrder {
		if err, ok := errs[field]; ok {
			diags = append(diags, models.Diagnostic{
				Field:    field,
				Kind:     models.KindMissingRequired,
				Severity: models.SeverityError,
				Message:  err.Error(),
			})
		}
	}

	optional := []struct {
		field   string
		value   string
		message string
	}{
		{"opens", row.Opens, "Opening date not specified"},
		{"deadline", row.Deadline, "Deadline not specified"},
		{"level", row.Level, "Study level not specified"},
	}
	for _, o := range optional {
		if isUnspecified(o.value) {
			diags = append(diags, models.Diagnostic{
				Field:    o.field,
				Kind:     models.KindMissingOptional,
				Severity: models.SeverityWarning,
				Message:  o.message,
			})
		}
	}

	if ParseScholarshipLink(row.Scholarship).URL == "" {
		diags = append(diags, models.Diagnostic{
			Field:    "scholarship",
			Kind:     models.KindMissingLink,
			Severity: models.SeverityWarning,
			Message:  "No application link provided",
		})
	}

	return diags
}

// ValidateRow checks a row for required fields and collects advisory warnings.
// Every check runs; a row is valid when no error was found.
func ValidateRow(row models.TableRow) models.ValidationResult {
	return toValidationResult(rowDiagnostics(row))
}

func toValidationResult(diags []models.Diagnostic) models.ValidationResult {
	result := models.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}
	for _, d := range diags {
		if d.IsError() {
			result.Errors = append(result.Errors, d.Message)
		} else {
			result.Warnings = append(result.Warnings, d.Message)
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result
}
