package enums

import "fmt"

// QuizMood is the answer to the "how do you want to feel" question.
type QuizMood string

const (
	QuizMoodRelaxing   QuizMood = "Relaxing"
	QuizMoodEnergizing QuizMood = "Energizing"
	QuizMoodCozy       QuizMood = "Cozy"
	QuizMoodRomantic   QuizMood = "Romantic"
)

var validQuizMoods = []QuizMood{
	QuizMoodRelaxing,
	QuizMoodEnergizing,
	QuizMoodCozy,
	QuizMoodRomantic,
}

func (m QuizMood) String() string { return string(m) }

// IsValid reports whether the value is a known QuizMood.
func (m QuizMood) IsValid() bool {
	for _, candidate := range validQuizMoods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseQuizMood converts raw input into a QuizMood.
func ParseQuizMood(value string) (QuizMood, error) {
	for _, candidate := range validQuizMoods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quiz mood %q", value)
}

// QuizMoods lists the moods in display order.
func QuizMoods() []QuizMood {
	return append([]QuizMood(nil), validQuizMoods...)
}

// ScentType is the preferred scent family answer.
type ScentType string

const (
	ScentTypeFloral ScentType = "Floral"
	ScentTypeCitrus ScentType = "Citrus"
	ScentTypeWoody  ScentType = "Woody"
	ScentTypeFresh  ScentType = "Fresh"
	ScentTypeSweet  ScentType = "Sweet"
	ScentTypeFruity ScentType = "Fruity"
)

var validScentTypes = []ScentType{
	ScentTypeFloral,
	ScentTypeCitrus,
	ScentTypeWoody,
	ScentTypeFresh,
	ScentTypeSweet,
	ScentTypeFruity,
}

func (s ScentType) String() string { return string(s) }

// IsValid reports whether the value is a known ScentType.
func (s ScentType) IsValid() bool {
	for _, candidate := range validScentTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ScentTypes lists the scent families in display order.
func ScentTypes() []ScentType {
	return append([]ScentType(nil), validScentTypes...)
}

// QuizActivity is collected for display only; recommendations ignore it.
type QuizActivity string

const (
	QuizActivityReading   QuizActivity = "Reading"
	QuizActivityWorking   QuizActivity = "Working"
	QuizActivityBathing   QuizActivity = "Bathing"
	QuizActivityEntertain QuizActivity = "Entertaining"
)

// QuizActivities lists the activity options in display order.
func QuizActivities() []QuizActivity {
	return []QuizActivity{QuizActivityReading, QuizActivityWorking, QuizActivityBathing, QuizActivityEntertain}
}
