// Package metrics holds the record types, CSV writer and summary
// statistics for search experiments.
package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// BudgetConfig identifies one experimental arm: how many iterations
// each search may spend.
type BudgetConfig struct {
	ID         int
	Iterations int
}

// RunRecord captures the outcome of one search run.
type RunRecord struct {
	Budget     int // BudgetConfig.ID
	Run        int
	BestAction int
	Correct    bool // Whether BestAction matched the process's true best arm
	NodeCount  int
	MaxDepth   int
	Duration   time.Duration
}

// BudgetSummary aggregates the runs of one budget.
type BudgetSummary struct {
	Budget       int
	Runs         int
	Accuracy     float64
	MeanNodes    float64
	MeanDepth    float64
	StdDevDepth  float64
	MeanDuration time.Duration
}

// Summarize groups records by budget and computes per-budget
// aggregates. Budgets appear in the order they are first seen.
func Summarize(records []RunRecord) []BudgetSummary {
	order := []int{}
	grouped := map[int][]RunRecord{}
	for _, r := range records {
		if _, ok := grouped[r.Budget]; !ok {
			order = append(order, r.Budget)
		}
		grouped[r.Budget] = append(grouped[r.Budget], r)
	}

	summaries := make([]BudgetSummary, 0, len(order))
	for _, budget := range order {
		runs := grouped[budget]
		correct := 0.0
		nodes := make([]float64, len(runs))
		depths := make([]float64, len(runs))
		var elapsed time.Duration
		for i, r := range runs {
			if r.Correct {
				correct++
			}
			nodes[i] = float64(r.NodeCount)
			depths[i] = float64(r.MaxDepth)
			elapsed += r.Duration
		}

		summaries = append(summaries, BudgetSummary{
			Budget:       budget,
			Runs:         len(runs),
			Accuracy:     correct / float64(len(runs)),
			MeanNodes:    stat.Mean(nodes, nil),
			MeanDepth:    stat.Mean(depths, nil),
			StdDevDepth:  stat.StdDev(depths, nil),
			MeanDuration: elapsed / time.Duration(len(runs)),
		})
	}
	return summaries
}
