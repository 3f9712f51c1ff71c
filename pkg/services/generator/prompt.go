package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/clarity-tools/clarity-plan/pkg/models/domain"
)

// leadershipBenchmarks is static reference text included in every prompt as
// qualitative grounding for the "howYouCompare" narrative.
var leadershipBenchmarks = map[string]string{
	"EmotionalIntelligence": "Top-quartile leaders demonstrate high emotional self-awareness, allowing them to regulate responses in over 90% of high-stress situations.",
	"StrategicThinking":     "Effective leaders dedicate 5-10 hours per week (12-25% of their time) to strategic thinking and planning, not just operational tasks.",
	"Communication":         "Highly influential leaders maintain a feedback ratio of approximately 4:1 (positive/reinforcing to constructive/redirecting) to foster psychological safety and growth.",
	"TeamDevelopment":       "Leaders in high-performing teams spend up to 20% of their time coaching and developing their direct reports.",
	"Wellbeing":             "Leaders who model and prioritize well-being report 30% higher team engagement and have a 40% lower burnout rate among their staff.",
}

// FormatAnswers renders answers as one "questionId: rating" line each, sorted
// by id so the same answers always produce the same prompt.
func FormatAnswers(answers domain.Answers) string {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	sb.WriteString("Here are the user's answers (on a scale of 1-5, where 1 is Strongly Disagree and 5 is Strongly Agree):\n")
	for _, id := range ids {
		fmt.Fprintf(&sb, "%s: %d\n", id, answers[id])
	}
	return sb.String()
}

// BuildPrompt assembles the fixed coaching instruction around the user's
// answers and the benchmark reference text.
func BuildPrompt(answers domain.Answers) string {
	benchmarks, _ := json.MarshalIndent(leadershipBenchmarks, "", "  ")

	return fmt.Sprintf(`
You are "Lizamari", an expert leadership coach who is warm, empowering, insightful, and completely non-judgmental. You combine values-driven insights with a possibility-focused approach to help leaders grow.

Your task is to analyze a user's answers from the 'Leadership Clarity Quiz' and generate a comprehensive, actionable, and personalized "Leadership Clarity Plan".

You MUST return the output as a single, valid JSON object that strictly adheres to the required structure below. Do not include any markdown formatting like `+"```json"+` around the object.

**USER'S QUIZ ANSWERS (Scale 1-5):**
%s

**LEADERSHIP BENCHMARKS (for your context):**
%s

**REQUIRED JSON OUTPUT STRUCTURE (LeadershipClarityReport):**
// Ensure your entire output is a single JSON object matching this structure.
{
    "executiveSummary": {
        "overallScore": number,       // 0-100 score based on overall analysis.
        "oneSentenceAssessment": string,
        "primaryStrength": string,
        "keyInsight": string,
        "positiveReinforcement": string
    },
    "focusAreas": [{
        "area": string,               // MUST be one of: %s
        "status": "Strong" | "Developing" | "Focus Area",  // Strong > 80, Developing 60-80, Focus Area < 60
        "score": number,              // 0-100 score for this specific area.
        "summary": string
    }],
    "top3Priorities": [{
        "priorityNumber": number,     // 1, 2, or 3
        "title": string,              // e.g., "Cultivate Mindful Presence in High-Stakes Meetings".
        "description": string,        // 2-3 sentences on why this is a priority.
        "month1Tasks": [string],      // 2-4 concrete tasks for the first month.
        "expectedResult": string      // The positive outcome.
    }],
    "detailedBreakdown": [{
        "area": string,               // Matches area from focusAreas.
        "score": number,
        "status": string,             // Matches status from focusAreas.
        "intro": string,
        "whatsGoingWell": [string],   // 2-3 bullet points.
        "whereToImprove": [string],   // 2-3 bullet points.
        "howYouCompare": string,      // Compare to the benchmarks provided.
        "quickWins": [string]         // 2-3 simple, high-impact tasks.
    }],
    "sixMonthPlan": [{
        "month": number,              // 1 through 6.
        "theme": string,              // e.g., "Month 1: Foundational Awareness".
        "tasks": [string],            // 3-5 key tasks.
        "kpi": string                 // The Key Performance Indicator.
    }],
    "dailyTasks": [{
        "title": string,
        "description": string,
        "category": "Awareness" | "Action" | "Reflection" | "Regulation" | "Connection",
        "cadence": "Daily" | "Weekly" | "Monthly"
    }]                                // 5-7 initial tasks, mixed cadence.
}

**ANALYSIS INSTRUCTIONS:**
1.  **Calculate Scores:** Analyze answers to determine scores for the **6 focus areas** and an overall score. Be realistic. Low scores on self-regulation questions should result in a low score for 'Emotional Regulation'.
2.  **Be a Coach:** Use an encouraging, professional, and highly actionable tone. Empower the user.
3.  **Prioritize:** The "Top 3 Priorities" should be the most impactful changes the user can make.
4.  **Actionable Advice:** All tasks must be specific and practical. Generate a mix of Daily, Weekly, and Monthly tasks.
5.  **Strict JSON:** The final output must be only the JSON object, starting with { and ending with }.
`,
		FormatAnswers(answers),
		string(benchmarks),
		quotedAreaList(),
	)
}

func quotedAreaList() string {
	names := domain.FocusAreaNames()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("'%s'", n)
	}
	return strings.Join(quoted, ", ")
}
