package mdp

import "golang.org/x/exp/rand"

// Reference reward processes for demos and tests.

// UniformBandit pays a uniform [0,1) reward for every action.
func UniformBandit(rng Source) Generator {
	if rng == nil {
		panic("nil random source")
	}
	return func(action int) float64 {
		return rng()
	}
}

// Constant pays the same reward for every action.
func Constant(reward float64) Generator {
	return func(action int) float64 {
		return reward
	}
}

// Linear pays a reward equal to the action index, so higher-indexed
// actions are strictly better.
func Linear() Generator {
	return func(action int) float64 {
		return float64(action)
	}
}

// GaussianArms is a k-armed testbed bandit: arm i pays a normally
// distributed reward with the given mean and shared standard
// deviation.
func GaussianArms(means []float64, stddev float64, r *rand.Rand) Generator {
	if len(means) == 0 {
		panic("need at least one arm")
	}
	if r == nil {
		panic("nil rand generator")
	}
	return func(action int) float64 {
		if action < 0 || action >= len(means) {
			panic("action index out of range")
		}
		return means[action] + stddev*r.NormFloat64()
	}
}

// BestArm returns the index of the arm with the highest mean, ties
// going to the later index.
func BestArm(means []float64) int {
	best := 0
	for i, m := range means {
		if m >= means[best] {
			best = i
		}
	}
	return best
}
