// Package export renders a generated plan as plain text. It is a read-only
// projection: clients use it for copy/print flows and the CLI prints it
// directly. It never mutates report state.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/clarity-tools/clarity-plan/pkg/models/domain"
)

type taskEntry struct {
	Index int
	Task  domain.Task
}

type taskGroup struct {
	Cadence domain.TaskCadence
	Tasks   []taskEntry
}

type planView struct {
	Report     *domain.ReportData
	TaskGroups []taskGroup
}

const planTemplate = `Your Leadership Clarity Plan

--- PLAN AT A GLANCE ---
Overall Score: {{.Report.ExecutiveSummary.OverallScore}}/100
Summary: {{.Report.ExecutiveSummary.OneSentenceAssessment}}
Primary Strength: {{.Report.ExecutiveSummary.PrimaryStrength}}
Key Insight: {{.Report.ExecutiveSummary.KeyInsight}}

--- WHERE TO FOCUS NOW ---
{{range .Report.FocusAreas}}{{.Area}}: {{.Score}}/100 ({{.Status}})
{{end}}
--- YOUR TOP 3 GOALS ---
{{range .Report.Top3Priorities}}Goal #{{.PriorityNumber}}: {{.Title}} {{checkbox .Completed}}
{{.Description}}
Month 1 Tasks:
{{bullets .Month1Tasks}}Expected Result: {{.ExpectedResult}}

{{end}}--- 6-MONTH ROADMAP ---
{{range .Report.SixMonthPlan}}Month {{.Month}}: {{.Theme}}
Tasks:
{{bullets .Tasks}}KPI: {{.KPI}}

{{end}}--- RECURRING TASKS ---
{{range .TaskGroups}}[{{.Cadence}}]
{{range .Tasks}}{{checkbox .Task.Completed}} {{.Task.Title}}: {{.Task.Description}} ({{.Task.Category}})
{{end}}
{{end}}`

// Render returns the plain-text projection of a plan.
func Render(data *domain.ReportData) (string, error) {
	funcMap := template.FuncMap{
		"bullets": func(items []string) string {
			var sb strings.Builder
			for _, item := range items {
				fmt.Fprintf(&sb, "- %s\n", item)
			}
			return sb.String()
		},
		"checkbox": func(done bool) string {
			if done {
				return "[x]"
			}
			return "[ ]"
		},
	}

	t, err := template.New("plan").Funcs(funcMap).Parse(planTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	view := planView{
		Report:     data,
		TaskGroups: groupTasks(data.DailyTasks),
	}

	var sb strings.Builder
	if err := t.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render plan: %w", err)
	}
	return sb.String(), nil
}

// groupTasks buckets tasks by cadence in Daily/Weekly/Monthly order while
// keeping each task's position in the underlying list, since tasks are
// addressed by that index.
func groupTasks(tasks []domain.Task) []taskGroup {
	order := []domain.TaskCadence{domain.CadenceDaily, domain.CadenceWeekly, domain.CadenceMonthly}

	byCadence := make(map[domain.TaskCadence][]taskEntry)
	for i, t := range tasks {
		cadence := t.Cadence
		if cadence == "" {
			cadence = domain.CadenceDaily
		}
		byCadence[cadence] = append(byCadence[cadence], taskEntry{Index: i, Task: t})
	}

	var groups []taskGroup
	for _, cadence := range order {
		if entries := byCadence[cadence]; len(entries) > 0 {
			groups = append(groups, taskGroup{Cadence: cadence, Tasks: entries})
		}
	}
	return groups
}

// Reporter writes rendered plans to a fixed destination.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(data *domain.ReportData) error {
	text, err := Render(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.writer, text)
	return err
}
