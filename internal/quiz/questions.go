package quiz

import "github.com/emberwick/storefront-api/pkg/enums"

type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Questions returns the quiz definition in display order.
func Questions() []Question {
	moods := enums.QuizMoods()
	moodOptions := make([]string, len(moods))
	for i, m := range moods {
		moodOptions[i] = m.String()
	}

	scents := enums.ScentTypes()
	scentOptions := make([]string, len(scents))
	for i, s := range scents {
		scentOptions[i] = s.String()
	}

	activities := enums.QuizActivities()
	activityOptions := make([]string, len(activities))
	for i, a := range activities {
		activityOptions[i] = string(a)
	}

	return []Question{
		{ID: QuestionMood, Prompt: "How do you want to feel?", Options: moodOptions},
		{ID: QuestionScentType, Prompt: "Which scent family do you reach for?", Options: scentOptions},
		{ID: QuestionActivity, Prompt: "What will you be doing while it burns?", Options: activityOptions},
	}
}
