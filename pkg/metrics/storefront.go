package metrics

import "github.com/prometheus/client_golang/prometheus"

// Quiz recommendation outcomes.
const (
	QuizOutcomeRule     = "rule"
	QuizOutcomeFallback = "fallback"
	QuizOutcomeEmpty    = "empty"
)

// QuizMetrics counts recommendation results by how they were produced.
type QuizMetrics struct {
	outcomes *prometheus.CounterVec
}

// NewQuizMetrics registers the quiz counters on the provided registerer.
func NewQuizMetrics(reg prometheus.Registerer) *QuizMetrics {
	if reg == nil {
		return &QuizMetrics{}
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_quiz_recommendations_total",
		Help: "Scent quiz recommendations served, by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(outcomes)
	return &QuizMetrics{outcomes: outcomes}
}

// IncOutcome increments the counter for outcome.
func (q *QuizMetrics) IncOutcome(outcome string) {
	if q == nil || q.outcomes == nil {
		return
	}
	q.outcomes.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// LedgerMetrics counts cart and wishlist mutations.
type LedgerMetrics struct {
	mutations *prometheus.CounterVec
}

// NewLedgerMetrics registers the ledger counters on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_ledger_mutations_total",
		Help: "Cart and wishlist mutations, by ledger kind and operation.",
	}, []string{"kind", "op"})
	reg.MustRegister(mutations)
	return &LedgerMetrics{mutations: mutations}
}

// IncMutation increments the counter for one ledger operation.
func (l *LedgerMetrics) IncMutation(kind, op string) {
	if l == nil || l.mutations == nil {
		return
	}
	l.mutations.WithLabelValues(normalizeLabel(kind), normalizeLabel(op)).Inc()
}
