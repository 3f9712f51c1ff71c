// Package quiz holds the static question bank and the in-memory answer sheet
// for the Leadership Clarity Quiz.
package quiz

import "github.com/clarity-tools/clarity-plan/pkg/models/domain"

var sections = []domain.Section{
	{
		Title: "Welcome & Ease In",
		Questions: []domain.Question{
			{ID: "q1", Text: "I'm on a journey of growth as a leader, and I'm curious to understand myself more deeply."},
			{ID: "q2", Text: "I'm willing to be honest with myself about where I am right now—my challenges, my patterns, and what I want to change."},
			{ID: "q3", Text: "I'm interested in understanding myself better—how I think, how I respond to situations, and what drives my choices."},
			{ID: "q4", Text: "I sense that something could shift for me—in how I lead, how I show up, or how I feel about myself—and I'm open to exploring what that might be."},
		},
	},
	{
		Title: "Gentle Awareness & Presence",
		Questions: []domain.Question{
			{ID: "q5", Text: "I notice the voice in my head—the one that comments on what I'm doing, what I should be doing, or what others might think. Sometimes I'm aware of it, sometimes I'm not."},
			{ID: "q6", Text: "When something unexpected happens, I sometimes react quickly and sometimes pause to think about how I want to respond. It depends on the situation."},
			{ID: "q7", Text: "When I'm under pressure, I'd like to feel calm and access my clearest thinking. Sometimes I do, and sometimes I get caught in stress or emotion."},
			{ID: "q8", Text: "I've noticed patterns in how I respond to certain situations—maybe how I handle conflict, or what tends to trigger doubt or stress for me."},
			{ID: "q9", Text: "Sometimes I notice when my actions don't match my values—like when I say yes to something that doesn't feel right, or when I'm not being fully myself."},
			{ID: "q10", Text: "In my important relationships, I'd like to be fully present and listening. Sometimes I am, and sometimes my mind is elsewhere or I'm thinking about what to say next."},
		},
	},
	{
		Title: "Emotional Grounding",
		Questions: []domain.Question{
			{ID: "q11", Text: "When I get triggered or upset, I sometimes can calm myself down and think clearly. Other times, my thoughts spiral and it takes a while to access my clearer thinking."},
			{ID: "q12", Text: "I'm becoming more aware of how stress shows up in my body—maybe tension, racing thoughts, or a tight chest. I'm learning what helps me calm down."},
			{ID: "q13", Text: "In high-stakes situations, I'd like to feel confident and grounded. Sometimes I do, and sometimes I feel uncertain or anxious."},
			{ID: "q14", Text: "I sometimes experience self-doubt or wonder if I'm \"enough,\" especially when I'm stepping into something new or being more visible."},
			{ID: "q15", Text: "I'm learning to name what I'm feeling in the moment, and I'm discovering what my emotions are telling me about what matters to me."},
			{ID: "q16", Text: "When I experience a setback, I eventually bounce back and learn from it. Sometimes it takes a while, and sometimes I get stuck for a bit."},
		},
	},
}

var answerOptions = []domain.AnswerOption{
	{Value: 1, Label: "Strongly Disagree"},
	{Value: 2, Label: "Disagree"},
	{Value: 3, Label: "Neutral"},
	{Value: 4, Label: "Agree"},
	{Value: 5, Label: "Strongly Agree"},
}

// Sections returns the ordered question bank.
func Sections() []domain.Section {
	return sections
}

// AnswerOptions returns the rating scale presented for every question.
func AnswerOptions() []domain.AnswerOption {
	return answerOptions
}

// TotalQuestions is the number of questions across all sections.
func TotalQuestions() int {
	total := 0
	for _, s := range sections {
		total += len(s.Questions)
	}
	return total
}

// QuestionIDs returns every question id in bank order.
func QuestionIDs() []string {
	ids := make([]string, 0, TotalQuestions())
	for _, s := range sections {
		for _, q := range s.Questions {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
