package domain

// View identifies one screen of the client application. The session state
// machine gates transitions between them.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewQuiz        View = "quiz"
	ViewLoading     View = "loading"
	ViewReport      View = "report"
	ViewActionPlan  View = "actionPlan"
	ViewDailyTasks  View = "dailyTasks"
	ViewMiniCourse  View = "miniCourse"
	ViewClarityCall View = "clarityCall"
	ViewCalendar    View = "calendar"
	ViewRetreatInfo View = "retreatInfo"
)

// Valid reports whether v names a known view.
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewQuiz, ViewLoading, ViewReport, ViewActionPlan,
		ViewDailyTasks, ViewMiniCourse, ViewClarityCall, ViewCalendar, ViewRetreatInfo:
		return true
	}
	return false
}

// RequiresReport reports whether v is only reachable once a report exists.
func (v View) RequiresReport() bool {
	switch v {
	case ViewReport, ViewActionPlan, ViewDailyTasks:
		return true
	}
	return false
}
