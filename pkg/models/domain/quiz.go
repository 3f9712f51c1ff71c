package domain

// Question is a single Likert-scale quiz statement.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Section groups questions; section order defines presentation and numbering.
type Section struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Answers maps question id to a rating in [1,5].
type Answers map[string]int

const (
	MinRating = 1
	MaxRating = 5
)

// AnswerOption is one selectable point on the rating scale.
type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}
