// Package parser turns a markdown scholarship table into validated records.
//
// Every function here is pure: diagnostics are returned as data and no call
// panics or returns an error, whatever the input looks like.
package parser

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/scholarship-parser/models"
)

const (
	headerScholarshipMarker = "| Scholarship |"
	headerOpensMarker       = "| Opens |"

	// ColumnCount is the number of cells in every data row.
	ColumnCount = 6

	NoTableMessage = "No valid scholarship table found in markdown content"
)

// findHeader returns the index of the first line holding the Scholarship
// marker followed by the Opens marker, or -1.
func findHeader(lines []string) int {
	for i, line := range lines {
		s := strings.Index(line, headerScholarshipMarker)
		if s < 0 {
			continue
		}
		if strings.Contains(line[s+1:], headerOpensMarker) {
			return i
		}
	}
	return -1
}

func isDataRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// splitRow splits one table line into its six trimmed cells.
func splitRow(line string) (models.TableRow, error) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	cells := parts[1 : len(parts)-1]
	if len(cells) != ColumnCount {
		return models.TableRow{}, fmt.Errorf("invalid row format: expected %d columns, got %d", ColumnCount, len(cells))
	}
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	return models.TableRow{
		Scholarship: cells[0],
		Opens:       cells[1],
		Deadline:    cells[2],
		Level:       cells[3],
		Eligibility: cells[4],
		Includes:    cells[5],
	}, nil
}

// DataRows locates the scholarship table and returns its data lines.
// ok is false when no header was found.
func DataRows(content string) (rows []string, ok bool) {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	header := findHeader(lines)
	if header < 0 {
		return nil, false
	}

	// header and separator
	start := header + 2
	if start > len(lines) {
		start = len(lines)
	}

	for _, line := range lines[start:] {
		if isDataRow(line) {
			rows = append(rows, line)
		}
	}
	return rows, true
}

// ParseMarkdownTable parses the scholarship table inside content.
// Rows are numbered from 1 over the data rows, not over document lines.
func ParseMarkdownTable(content string) models.ParseResult {
	result := models.ParseResult{
		Scholarships: []models.Scholarship{},
		Errors:       []string{},
		Warnings:     []string{},
		Diagnostics:  []models.Diagnostic{},
	}

	rows, ok := DataRows(content)
	if !ok {
		result.Errors = append(result.Errors, NoTableMessage)
		result.Diagnostics = append(result.Diagnostics, models.Diagnostic{
			Kind:     models.KindNoTable,
			Severity: models.SeverityError,
			Message:  NoTableMessage,
		})
		return result
	}

	for i, line := range rows {
		rowNum := i + 1

		row, err := splitRow(line)
		if err != nil {
			msg := fmt.Sprintf("Failed to parse - %s", err)
			result.Errors = append(result.Errors, rowMessage(rowNum, []string{msg}))
			result.Diagnostics = append(result.Diagnostics, models.Diagnostic{
				Row:      rowNum,
				Kind:     models.KindMalformedRow,
				Severity: models.SeverityError,
				Message:  msg,
			})
			continue
		}

		diags := rowDiagnostics(row)
		for j := range diags {
			diags[j].Row = rowNum
		}
		result.Diagnostics = append(result.Diagnostics, diags...)

		validation := toValidationResult(diags)
		if validation.IsValid {
			result.Scholarships = append(result.Scholarships, ConvertRow(row))
		} else {
			result.Errors = append(result.Errors, rowMessage(rowNum, validation.Errors))
		}
		if len(validation.Warnings) > 0 {
			result.Warnings = append(result.Warnings, rowMessage(rowNum, validation.Warnings))
		}
	}

	return result
}

func rowMessage(row int, messages []string) string {
	return fmt.Sprintf("Row %d: %s", row, strings.Join(messages, ", "))
}
