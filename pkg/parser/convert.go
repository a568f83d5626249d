package parser

import "github.com/dtnitsch/scholarship-parser/models"

// ConvertRow turns a validated row into a Scholarship. The link and levels are
// recomputed from the raw cells; eligibility and includes pass through as-is.
func ConvertRow(row models.TableRow) models.Scholarship {
	link := ParseScholarshipLink(row.Scholarship)

	return models.Scholarship{
		Name:        link.Name,
		Link:        link.URL,
		Opens:       placeholderToEmpty(row.Opens),
		Deadline:    placeholderToEmpty(row.Deadline),
		Level:       ParseStudyLevels(row.Level),
		Eligibility: row.Eligibility,
		Includes:    row.Includes,
	}
}

func placeholderToEmpty(cell string) string {
	if cell == Placeholder {
		return ""
	}
	return cell
}
