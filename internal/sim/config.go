// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

var DefaultConfig = Config{
	Count:    BiasedIntConfig{Min: 1, Med: 5, Max: 12},
	Gap:      BiasedIntConfig{Min: 0, Med: 2, Max: 10},
	Burst:    BiasedIntConfig{Min: 1, Med: 4, Max: 20},
	Priority: BiasedIntConfig{Min: 1, Med: 2, Max: 5},
	Quantum:  BiasedIntConfig{Min: 1, Med: 2, Max: 6},

	// Arrival order is shuffled this often so that caller order and arrival
	// order disagree.
	ShuffleProbability: 0.5,
}

type Config struct {
	// Count is the number of processes in a set.
	Count BiasedIntConfig

	// Gap is the distance between consecutive arrivals before shuffling.
	// Zero gaps produce simultaneous arrivals.
	Gap BiasedIntConfig

	Burst    BiasedIntConfig
	Priority BiasedIntConfig
	Quantum  BiasedIntConfig

	ShuffleProbability float64
}
