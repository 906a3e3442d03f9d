// Package experiments runs batch search experiments over a reference
// bandit and stores the results as CSV.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"uct/experiments/metrics"
	"uct/mdp"
	"uct/searcher"
)

const (
	NumRuns = 30 // Per budget
	OutDir  = "experiments"
)

// Arm means for the reference process; arm 3 is the true best.
var armMeans = []float64{0.2, 0.5, 0.4, 0.8}

const armStdDev = 0.1

var budgetConfigs = []metrics.BudgetConfig{
	{ID: 1, Iterations: 10},
	{ID: 2, Iterations: 50},
	{ID: 3, Iterations: 100},
	{ID: 4, Iterations: 500},
	{ID: 5, Iterations: 1000},
}

// RunBudgetExperiment sweeps search budgets over the reference bandit
// and records how often each budget identifies the best arm, along
// with tree size and depth.
func RunBudgetExperiment() {
	log.Info().Msg("starting budget experiment...")

	bestArm := mdp.BestArm(armMeans)
	runRecords := []metrics.RunRecord{}

	for bi, config := range budgetConfigs {
		log.Info().Msgf("starting budget %d of %d with %d iterations...", bi+1, len(budgetConfigs), config.Iterations)

		for run := 0; run < NumRuns; run++ {
			record := runSearch(config, run, bestArm)
			runRecords = append(runRecords, record)
		}

		log.Info().Msgf("completed budget %d of %d", bi+1, len(budgetConfigs))
	}

	log.Info().Msg("completed budget experiment")

	writer, err := metrics.NewWriter(OutDir, "budget")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteBudgetConfigs(budgetConfigs)
	if err != nil {
		panic(fmt.Sprintf("failed to store budget configs: %v", err))
	}
	log.Info().Msg("stored budget configs")

	err = writer.WriteRunRecords(runRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write run records: %v", err))
	}
	log.Info().Msg("stored run records")

	summaries := metrics.Summarize(runRecords)
	err = writer.WriteSummaries(summaries)
	if err != nil {
		panic(fmt.Sprintf("failed to write summaries: %v", err))
	}
	for _, s := range summaries {
		log.Info().Msgf("budget %d: accuracy %.2f over %d runs (mean depth %.1f, mean duration %s)",
			s.Budget, s.Accuracy, s.Runs, s.MeanDepth, s.MeanDuration)
	}
	log.Info().Msgf("stored summaries in %s", writer.Dir())
}

// runSearch executes a single search with a per-run deterministic
// seed and returns its record.
func runSearch(config metrics.BudgetConfig, run int, bestArm int) metrics.RunRecord {
	seed := int64(config.ID)*1000 + int64(run)
	source := mdp.NewMersenneTwister(seed)
	arms := rand.New(rand.NewSource(uint64(seed)))
	gen := mdp.GaussianArms(armMeans, armStdDev, arms)

	tree := searcher.New(len(armMeans), searcher.WithRand(source))

	start := time.Now()
	for i := 0; i < config.Iterations; i++ {
		tree.Iterate(gen)
	}

	best := tree.BestAction()
	return metrics.RunRecord{
		Budget:     config.ID,
		Run:        run + 1,
		BestAction: best,
		Correct:    best == bestArm,
		NodeCount:  tree.NodeCount(),
		MaxDepth:   tree.MaxDepth(),
		Duration:   time.Since(start),
	}
}
