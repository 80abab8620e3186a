package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"time"

	"github.com/zabbix-tools/problem-report/internal/types"
)

//go:embed templates/problem_report.html
var templates embed.FS

// Page holds everything the report template needs: the chart datasets and
// the full problems table.
type Page struct {
	GeneratedAt string
	Severity    []SeveritySlice
	TimeOfDay   []SeriesPoint
	PerDay      []SeriesPoint
	Problems    []types.ResolvedProblem
}

func BuildPage(problems []types.ResolvedProblem, generatedAt time.Time) *Page {
	return &Page{
		GeneratedAt: generatedAt.UTC().Format(types.ClockLayout),
		Severity:    SeverityBreakdown(problems),
		TimeOfDay:   TimeOfDayFrequency(problems),
		PerDay:      ProblemsPerDay(problems),
		Problems:    problems,
	}
}

// Render produces the standalone HTML report document. Chart datasets are
// embedded as JSON and drawn client side.
func Render(problems []types.ResolvedProblem, generatedAt time.Time) ([]byte, error) {
	tmpl, err := template.New("problem_report.html").Funcs(template.FuncMap{
		"json": toJSON,
	}).ParseFS(templates, "templates/problem_report.html")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, BuildPage(problems, generatedAt)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toJSON(v interface{}) (template.JS, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(encoded), nil
}
