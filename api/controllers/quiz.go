package controllers

import (
	"net/http"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/api/validators"
	"github.com/emberwick/storefront-api/internal/quiz"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

type quizAnswersRequest struct {
	Mood      string `json:"mood" validate:"max=64"`
	ScentType string `json:"scentType" validate:"max=64"`
	Activity  string `json:"activity" validate:"max=64"`
}

func (q quizAnswersRequest) toAnswers() quiz.Answers {
	answers := quiz.Answers{}
	if v := validators.SanitizeString(q.Mood, 64); v != "" {
		answers[quiz.QuestionMood] = v
	}
	if v := validators.SanitizeString(q.ScentType, 64); v != "" {
		answers[quiz.QuestionScentType] = v
	}
	if v := validators.SanitizeString(q.Activity, 64); v != "" {
		answers[quiz.QuestionActivity] = v
	}
	return answers
}

func QuizQuestions(svc quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"questions": svc.Questions()})
	}
}

// QuizRecommend matches the submitted answers against the live catalog.
func QuizRecommend(svc quiz.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quiz service unavailable"))
			return
		}

		var payload quizAnswersRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Recommend(r.Context(), payload.toAnswers())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
