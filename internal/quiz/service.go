package quiz

import (
	"context"
	"math/rand/v2"

	"github.com/emberwick/storefront-api/internal/catalog"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/metrics"
)

// ServiceParams groups dependencies for the quiz service.
type ServiceParams struct {
	Catalog catalog.Service
	Metrics *metrics.QuizMetrics
	Logger  *logger.Logger
	// Pick overrides the random fallback source; nil uses math/rand/v2.
	Pick func(n int) int
}

// Result is the recommendation payload returned to clients.
type Result struct {
	Products []catalog.Product `json:"products"`
	Outcome  string            `json:"outcome"`
}

// Service answers quiz submissions against the live catalog.
type Service interface {
	Questions() []Question
	Recommend(ctx context.Context, answers Answers) (Result, error)
}

type service struct {
	catalog catalog.Service
	metrics *metrics.QuizMetrics
	logg    *logger.Logger
	pick    func(n int) int
}

// NewService builds a quiz service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog service is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	pick := params.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return &service{
		catalog: params.Catalog,
		metrics: params.Metrics,
		logg:    params.Logger,
		pick:    pick,
	}, nil
}

func (s *service) Questions() []Question {
	return Questions()
}

// Recommend uses the whole active catalog as the candidate set.
func (s *service) Recommend(ctx context.Context, answers Answers) (Result, error) {
	candidates, err := s.catalog.Catalog(ctx)
	if err != nil {
		return Result{}, err
	}

	products, matched := recommend(answers, candidates, s.pick)
	outcome := metrics.QuizOutcomeRule
	switch {
	case len(products) == 0:
		outcome = metrics.QuizOutcomeEmpty
	case !matched:
		outcome = metrics.QuizOutcomeFallback
	}
	s.metrics.IncOutcome(outcome)

	s.logg.Debug(s.logg.WithFields(ctx, map[string]any{
		"mood":       answers[QuestionMood],
		"scent_type": answers[QuestionScentType],
		"outcome":    outcome,
	}), "quiz recommendation served")

	return Result{Products: products, Outcome: outcome}, nil
}
