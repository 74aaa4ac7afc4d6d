package quiz

import (
	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/pkg/enums"
)

// MaxRecommendations caps how many products a single quiz result shows.
const MaxRecommendations = 2

// Answers maps a question id to the chosen option label.
type Answers map[string]string

const (
	QuestionMood      = "mood"
	QuestionScentType = "scentType"
	QuestionActivity  = "activity"
)

// moodRule lists the candle names recommended for one mood: per scent type, with a
// default when the scent type has no entry.
type moodRule struct {
	byScent  map[enums.ScentType][]string
	fallback []string
}

var rules = map[enums.QuizMood]moodRule{
	enums.QuizMoodRelaxing: {
		byScent: map[enums.ScentType][]string{
			enums.ScentTypeFloral: {"Lavender Dreams"},
			enums.ScentTypeSweet:  {"Vanilla Bean Bliss"},
		},
		fallback: []string{"Lavender Dreams"},
	},
	enums.QuizMoodEnergizing: {
		byScent: map[enums.ScentType][]string{
			enums.ScentTypeCitrus: {"Sunrise Citrus"},
			enums.ScentTypeFresh:  {"Mint Mojito"},
		},
		fallback: []string{"Sunrise Citrus"},
	},
	enums.QuizMoodCozy: {
		byScent: map[enums.ScentType][]string{
			enums.ScentTypeSweet:  {"Vanilla Bean Bliss"},
			enums.ScentTypeFruity: {"Spiced Apple"},
		},
		fallback: []string{"Vanilla Bean Bliss"},
	},
	enums.QuizMoodRomantic: {
		byScent: map[enums.ScentType][]string{
			enums.ScentTypeFloral: {"Lavender Dreams"},
			enums.ScentTypeSweet:  {"Vanilla Bean Bliss"},
		},
		fallback: []string{"Lavender Dreams"},
	},
}

// matchNames returns the rule's candle names for answers; nil when the mood is
// missing or unknown.
func matchNames(answers Answers) []string {
	rule, ok := rules[enums.QuizMood(answers[QuestionMood])]
	if !ok {
		return nil
	}
	if names, ok := rule.byScent[enums.ScentType(answers[QuestionScentType])]; ok {
		return names
	}
	return rule.fallback
}

// Recommend resolves the rule table against candidates. When nothing resolves and
// candidates is non-empty, exactly one candidate chosen by pick is returned. pick
// must return a value in [0, n).
func Recommend(answers Answers, candidates []catalog.Product, pick func(n int) int) []catalog.Product {
	out, _ := recommend(answers, candidates, pick)
	return out
}

func recommend(answers Answers, candidates []catalog.Product, pick func(n int) int) ([]catalog.Product, bool) {
	byName := make(map[string]catalog.Product, len(candidates))
	for _, c := range candidates {
		if _, seen := byName[c.Name]; !seen {
			byName[c.Name] = c
		}
	}

	out := make([]catalog.Product, 0, MaxRecommendations)
	seen := map[string]struct{}{}
	for _, name := range matchNames(answers) {
		p, ok := byName[name]
		if !ok {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
		if len(out) == MaxRecommendations {
			break
		}
	}
	if len(out) > 0 {
		return out, true
	}
	if len(candidates) == 0 {
		return out, false
	}
	return append(out, candidates[pick(len(candidates))]), false
}
