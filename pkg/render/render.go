// Package render turns a parsed scholarship dataset into a standalone HTML page.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/dtnitsch/scholarship-parser/models"
	"github.com/dtnitsch/scholarship-parser/pkg/search"
)

// Page is the view model handed to the template.
type Page struct {
	Title      string
	Query      string
	TotalCount int
	Rows       []Row
	Errors     []string
	Warnings   []string
}

// Row is one scholarship with its text fields already escaped and highlighted.
type Row struct {
	Name        template.HTML
	Link        string
	Opens       string
	Deadline    string
	Levels      []string
	Eligibility template.HTML
	Includes    template.HTML
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="count">{{.TotalCount}} scholarships{{if .Query}} matching "{{.Query}}"{{end}}</p>
{{- if .Errors}}
<ul class="errors">
{{- range .Errors}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- if .Warnings}}
<ul class="warnings">
{{- range .Warnings}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
<table>
<thead>
<tr><th>Scholarship</th><th>Opens</th><th>Deadline</th><th>Level</th><th>Eligibility</th><th>Includes</th></tr>
</thead>
<tbody>
{{- range .Rows}}
<tr>
<td class="name">{{if .Link}}<a href="{{.Link}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</td>
<td class="opens">{{if .Opens}}{{.Opens}}{{else}}Not specified{{end}}</td>
<td class="deadline">{{if .Deadline}}{{.Deadline}}{{else}}Not specified{{end}}</td>
<td class="level">{{range $i, $l := .Levels}}{{if $i}}, {{end}}{{$l}}{{end}}</td>
<td class="eligibility">{{.Eligibility}}</td>
<td class="includes">{{.Includes}}</td>
</tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

// Renderer builds HTML pages, highlighting the active query.
type Renderer struct {
	highlighter *search.Highlighter
}

// NewRenderer returns a Renderer whose highlight marker uses class.
func NewRenderer(class string) *Renderer {
	return &Renderer{highlighter: search.NewHighlighter(class)}
}

// highlight always returns escaped HTML. Highlight leaves text unescaped
// when the query is blank, so that case escapes explicitly.
func (r *Renderer) highlight(text, query string) template.HTML {
	if strings.TrimSpace(query) == "" {
		return template.HTML(search.EscapeHTML(text))
	}
	return template.HTML(r.highlighter.Highlight(text, query))
}

// BuildPage filters records by query and prepares the view model.
func (r *Renderer) BuildPage(title string, records []models.Scholarship, result models.ParseResult, query string) Page {
	matched := search.FilterScholarshipsBySearch(records, query)

	page := Page{
		Title:      title,
		Query:      strings.TrimSpace(query),
		TotalCount: len(matched),
		Errors:     result.Errors,
		Warnings:   result.Warnings,
	}
	for _, s := range matched {
		levels := make([]string, len(s.Level))
		for i, l := range s.Level {
			levels[i] = string(l)
		}
		page.Rows = append(page.Rows, Row{
			Name:        r.highlight(s.Name, query),
			Link:        s.Link,
			Opens:       s.Opens,
			Deadline:    s.Deadline,
			Levels:      levels,
			Eligibility: r.highlight(s.Eligibility, query),
			Includes:    r.highlight(s.Includes, query),
		})
	}
	return page
}

// Render executes the page template.
func (r *Renderer) Render(page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
