package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess  = "success"
	outcomeFailure  = "failure"
	outcomeNotFound = "not_found"
	outcomeSkipped  = "skipped"
)

var (
	recipeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinner_recipe_operations_total",
			Help: "Total number of recipe store operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	recipesSeededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dinner_recipes_seeded_total",
			Help: "Total number of recipes inserted by seeding",
		},
	)
)

func observe(operation string, err error) {
	if err != nil {
		recipeOperationsTotal.WithLabelValues(operation, outcomeFailure).Inc()
		return
	}
	recipeOperationsTotal.WithLabelValues(operation, outcomeSuccess).Inc()
}
