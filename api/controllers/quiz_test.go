package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberwick/storefront-api/internal/quiz"
)

func newQuiz(t *testing.T, sf *storefront) quiz.Service {
	t.Helper()
	svc, err := quiz.NewService(quiz.ServiceParams{
		Catalog: sf.catalog,
		Logger:  testLogger(),
		Pick:    func(int) int { return 0 },
	})
	require.NoError(t, err)
	return svc
}

func TestQuizQuestions(t *testing.T) {
	svc := newQuiz(t, newStorefront(t))

	rec := serve(t, http.MethodGet, "/quiz", "/quiz", "", "", QuizQuestions(svc))
	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Questions []quiz.Question `json:"questions"`
	}
	decodeData(t, rec, &payload)
	assert.Len(t, payload.Questions, 3)
}

func TestQuizRecommend(t *testing.T) {
	svc := newQuiz(t, newStorefront(t))
	h := QuizRecommend(svc, nil)

	rec := serve(t, http.MethodPost, "/quiz/recommendations", "/quiz/recommendations", "", `{"mood":"Energizing","scentType":"Citrus","activity":"Work"}`, h)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result quiz.Result
	decodeData(t, rec, &result)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Sunrise Citrus", result.Products[0].Name)
	assert.Equal(t, "rule", result.Outcome)

	rec = serve(t, http.MethodPost, "/quiz/recommendations", "/quiz/recommendations", "", `{"mood":"Melancholy"}`, h)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &result)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "fallback", result.Outcome)
}
