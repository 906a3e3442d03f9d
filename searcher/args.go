package searcher

// Hyperparameters for UCT search

const DefaultDiscount = 0.9 // Per-step decay applied to future rewards

const DefaultHorizon = 50 // Simulated steps per rollout

// DefaultEpsilon guards divisions by zero visit counts and scales the
// random perturbation used to break exact score ties.
const DefaultEpsilon = 1e-6
