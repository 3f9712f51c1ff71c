package domain

// Clone returns a deep copy of the report so readers never alias the
// session-owned instance.
func (r *ReportData) Clone() *ReportData {
	if r == nil {
		return nil
	}

	out := &ReportData{
		ExecutiveSummary:  r.ExecutiveSummary,
		FocusAreas:        append([]FocusArea(nil), r.FocusAreas...),
		Top3Priorities:    make([]TopPriority, len(r.Top3Priorities)),
		DetailedBreakdown: make([]DetailedBreakdown, len(r.DetailedBreakdown)),
		SixMonthPlan:      make([]SixMonthPhase, len(r.SixMonthPlan)),
		DailyTasks:        append([]Task(nil), r.DailyTasks...),
	}

	for i, p := range r.Top3Priorities {
		p.Month1Tasks = append([]string(nil), p.Month1Tasks...)
		out.Top3Priorities[i] = p
	}
	for i, b := range r.DetailedBreakdown {
		b.WhatsGoingWell = append([]string(nil), b.WhatsGoingWell...)
		b.WhereToImprove = append([]string(nil), b.WhereToImprove...)
		b.QuickWins = append([]string(nil), b.QuickWins...)
		out.DetailedBreakdown[i] = b
	}
	for i, p := range r.SixMonthPlan {
		p.Tasks = append([]string(nil), p.Tasks...)
		out.SixMonthPlan[i] = p
	}
	return out
}
