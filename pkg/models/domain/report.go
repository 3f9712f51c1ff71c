package domain

// AreaStatus classifies a focus area relative to its score.
type AreaStatus string

const (
	StatusStrong     AreaStatus = "Strong"
	StatusDeveloping AreaStatus = "Developing"
	StatusFocusArea  AreaStatus = "Focus Area"
)

// The six leadership competency areas every report scores.
const (
	AreaSelfAwareness       = "Self-Awareness & Presence"
	AreaEmotionalRegulation = "Emotional Regulation"
	AreaStrategicThinking   = "Strategic Thinking"
	AreaCommunication       = "Communication & Influence"
	AreaTeamEmpowerment     = "Team Empowerment"
	AreaWellbeing           = "Leader's Well-being"
)

// FocusAreaNames returns the six required area names in canonical order.
func FocusAreaNames() []string {
	return []string{
		AreaSelfAwareness,
		AreaEmotionalRegulation,
		AreaStrategicThinking,
		AreaCommunication,
		AreaTeamEmpowerment,
		AreaWellbeing,
	}
}

// TaskCategory classifies a recurring task.
type TaskCategory string

const (
	CategoryAwareness  TaskCategory = "Awareness"
	CategoryAction     TaskCategory = "Action"
	CategoryReflection TaskCategory = "Reflection"
	CategoryRegulation TaskCategory = "Regulation"
	CategoryConnection TaskCategory = "Connection"
)

// Valid reports whether c is one of the five known categories.
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryAwareness, CategoryAction, CategoryReflection, CategoryRegulation, CategoryConnection:
		return true
	}
	return false
}

// TaskCadence is the recurrence frequency of a task.
type TaskCadence string

const (
	CadenceDaily   TaskCadence = "Daily"
	CadenceWeekly  TaskCadence = "Weekly"
	CadenceMonthly TaskCadence = "Monthly"
)

// Valid reports whether c is one of the three known cadences.
func (c TaskCadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	}
	return false
}

type ExecutiveSummary struct {
	OverallScore          int    `json:"overallScore"`
	OneSentenceAssessment string `json:"oneSentenceAssessment"`
	PrimaryStrength       string `json:"primaryStrength"`
	KeyInsight            string `json:"keyInsight"`
	PositiveReinforcement string `json:"positiveReinforcement"`
}

type FocusArea struct {
	Area    string     `json:"area"`
	Status  AreaStatus `json:"status"`
	Score   int        `json:"score"`
	Summary string     `json:"summary"`
}

// TopPriority is a user-trackable goal. Completed is local-only state and is
// never supplied by the generation boundary.
type TopPriority struct {
	PriorityNumber int      `json:"priorityNumber"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Month1Tasks    []string `json:"month1Tasks"`
	ExpectedResult string   `json:"expectedResult"`
	Completed      bool     `json:"completed"`
}

type DetailedBreakdown struct {
	Area           string     `json:"area"`
	Score          int        `json:"score"`
	Status         AreaStatus `json:"status"`
	Intro          string     `json:"intro"`
	WhatsGoingWell []string   `json:"whatsGoingWell"`
	WhereToImprove []string   `json:"whereToImprove"`
	HowYouCompare  string     `json:"howYouCompare"`
	QuickWins      []string   `json:"quickWins"`
}

type SixMonthPhase struct {
	Month int      `json:"month"`
	Theme string   `json:"theme"`
	Tasks []string `json:"tasks"`
	KPI   string   `json:"kpi"`
}

// Task is a recurring actionable item. Tasks are addressed by position in
// DailyTasks; Completed is local-only state.
type Task struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    TaskCategory `json:"category"`
	Cadence     TaskCadence  `json:"cadence"`
	Completed   bool         `json:"completed"`
}

// ReportData is the full generated clarity plan. It is created once per
// successful generation and discarded wholesale on retake.
type ReportData struct {
	ExecutiveSummary  ExecutiveSummary    `json:"executiveSummary"`
	FocusAreas        []FocusArea         `json:"focusAreas"`
	Top3Priorities    []TopPriority       `json:"top3Priorities"`
	DetailedBreakdown []DetailedBreakdown `json:"detailedBreakdown"`
	SixMonthPlan      []SixMonthPhase     `json:"sixMonthPlan"`
	DailyTasks        []Task              `json:"dailyTasks"`
}
