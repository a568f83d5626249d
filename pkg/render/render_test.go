package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/scholarship-parser/models"
	"github.com/dtnitsch/scholarship-parser/pkg/parser"
)

const document = `| Scholarship | Opens | Deadline | Level | Eligibility | Includes |
|---|---|---|---|---|---|
| [MIT Fund](https://x.org) | Jan 2025 | Mar 2025 | Undergraduate<br>Research | Open to <all> | Full tuition & fees |
| Community Grant | -- | -- | Short term | Local residents | $500 |
| [Broken](https://b.org) | Jan | Feb | PhD |  | Stipend |
`

func renderDocument(t *testing.T, query string) *goquery.Document {
	t.Helper()

	result := parser.ParseMarkdownTable(document)
	records := parser.NormalizeAll(result.Scholarships)

	r := NewRenderer("")
	html, err := r.Render(r.BuildPage("Scholarships", records, result, query))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse rendered HTML: %v", err)
	}
	return doc
}

func TestRenderAllRecords(t *testing.T) {
	doc := renderDocument(t, "")

	rows := doc.Find("tbody tr")
	if rows.Length() != 2 {
		t.Fatalf("got %d rows, want 2", rows.Length())
	}

	link := rows.First().Find("td.name a")
	if href, _ := link.Attr("href"); href != "https://x.org" || link.Text() != "MIT Fund" {
		t.Errorf("link = %q -> %q", link.Text(), href)
	}
	if got := rows.First().Find("td.level").Text(); got != "undergraduate, research" {
		t.Errorf("level cell = %q", got)
	}
	if got := rows.First().Find("td.eligibility").Text(); got != "Open to <all>" {
		t.Errorf("eligibility cell = %q, want escaped text round-tripped", got)
	}
	if doc.Find("td.eligibility all").Length() != 0 {
		t.Error("cell text was injected as markup")
	}

	second := rows.Eq(1)
	if second.Find("td.name a").Length() != 0 {
		t.Error("plain-text name rendered as a link")
	}
	if got := second.Find("td.opens").Text(); got != "Not specified" {
		t.Errorf("opens cell = %q", got)
	}

	if got := doc.Find("ul.errors li").Text(); !strings.Contains(got, "Eligibility criteria is required") {
		t.Errorf("errors list = %q", got)
	}
	if doc.Find("mark").Length() != 0 {
		t.Error("found highlight marks without a query")
	}
}

func TestRenderWithQuery(t *testing.T) {
	doc := renderDocument(t, "TUITION")

	rows := doc.Find("tbody tr")
	if rows.Length() != 1 {
		t.Fatalf("got %d rows, want 1", rows.Length())
	}

	marks := doc.Find("td.includes mark")
	if marks.Length() != 1 || marks.Text() != "tuition" {
		t.Errorf("marks = %d with text %q", marks.Length(), marks.Text())
	}
	if class, _ := marks.Attr("class"); class != "bg-yellow-200 font-semibold" {
		t.Errorf("mark class = %q", class)
	}
	if got := doc.Find("td.includes").Text(); got != "Full tuition & fees" {
		t.Errorf("includes cell = %q", got)
	}
	if got := doc.Find("p.count").Text(); got != `1 scholarships matching "TUITION"` {
		t.Errorf("count = %q", got)
	}
}

func TestBuildPageInvalidUTF8Query(t *testing.T) {
	records := []models.Scholarship{
		{Name: "Caf\xe9 Fund", Eligibility: "All", Includes: "Meals"},
		{Name: "Other", Eligibility: "All", Includes: "Books"},
	}

	r := NewRenderer("")
	page := r.BuildPage("Scholarships", records, models.ParseResult{}, "\xe9")
	if page.TotalCount != 1 || len(page.Rows) != 1 {
		t.Fatalf("TotalCount = %d with %d rows, want 1", page.TotalCount, len(page.Rows))
	}
	if got := string(page.Rows[0].Name); got != "Caf\xe9 Fund" {
		t.Errorf("Name = %q, want escaped text without marks", got)
	}
	if _, err := r.Render(page); err != nil {
		t.Errorf("Render() error = %v", err)
	}
}
