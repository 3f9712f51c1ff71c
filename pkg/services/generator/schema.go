package generator

// ResponseSchema is the structured-output schema sent with every generation
// call. It mirrors ReportData minus the two local-only completed flags, which
// the model is never asked for.
func ResponseSchema() map[string]any {
	statusEnum := []string{"Strong", "Developing", "Focus Area"}

	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"executiveSummary": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"overallScore":          map[string]any{"type": "NUMBER"},
					"oneSentenceAssessment": map[string]any{"type": "STRING"},
					"primaryStrength":       map[string]any{"type": "STRING"},
					"keyInsight":            map[string]any{"type": "STRING"},
					"positiveReinforcement": map[string]any{"type": "STRING"},
				},
				"required": []string{
					"overallScore", "oneSentenceAssessment", "primaryStrength",
					"keyInsight", "positiveReinforcement",
				},
			},
			"focusAreas": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"area":    map[string]any{"type": "STRING"},
						"status":  map[string]any{"type": "STRING", "enum": statusEnum},
						"score":   map[string]any{"type": "NUMBER"},
						"summary": map[string]any{"type": "STRING"},
					},
					"required": []string{"area", "status", "score", "summary"},
				},
			},
			"top3Priorities": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"priorityNumber": map[string]any{"type": "NUMBER"},
						"title":          map[string]any{"type": "STRING"},
						"description":    map[string]any{"type": "STRING"},
						"month1Tasks": map[string]any{
							"type":  "ARRAY",
							"items": map[string]any{"type": "STRING"},
						},
						"expectedResult": map[string]any{"type": "STRING"},
					},
					"required": []string{
						"priorityNumber", "title", "description", "month1Tasks", "expectedResult",
					},
				},
			},
			"detailedBreakdown": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"area":   map[string]any{"type": "STRING"},
						"score":  map[string]any{"type": "NUMBER"},
						"status": map[string]any{"type": "STRING", "enum": statusEnum},
						"intro":  map[string]any{"type": "STRING"},
						"whatsGoingWell": map[string]any{
							"type":  "ARRAY",
							"items": map[string]any{"type": "STRING"},
						},
						"whereToImprove": map[string]any{
							"type":  "ARRAY",
							"items": map[string]any{"type": "STRING"},
						},
						"howYouCompare": map[string]any{"type": "STRING"},
						"quickWins": map[string]any{
							"type":  "ARRAY",
							"items": map[string]any{"type": "STRING"},
						},
					},
					"required": []string{
						"area", "score", "status", "intro", "whatsGoingWell",
						"whereToImprove", "howYouCompare", "quickWins",
					},
				},
			},
			"sixMonthPlan": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"month": map[string]any{"type": "NUMBER"},
						"theme": map[string]any{"type": "STRING"},
						"tasks": map[string]any{
							"type":  "ARRAY",
							"items": map[string]any{"type": "STRING"},
						},
						"kpi": map[string]any{"type": "STRING"},
					},
					"required": []string{"month", "theme", "tasks", "kpi"},
				},
			},
			"dailyTasks": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"title":       map[string]any{"type": "STRING"},
						"description": map[string]any{"type": "STRING"},
						"category": map[string]any{
							"type": "STRING",
							"enum": []string{"Awareness", "Action", "Reflection", "Regulation", "Connection"},
						},
						"cadence": map[string]any{
							"type": "STRING",
							"enum": []string{"Daily", "Weekly", "Monthly"},
						},
					},
					"required": []string{"title", "description", "category", "cadence"},
				},
			},
		},
		"required": []string{
			"executiveSummary", "focusAreas", "top3Priorities",
			"detailedBreakdown", "sixMonthPlan", "dailyTasks",
		},
	}
}
