// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"fmt"

	"pgregory.net/rapid"
)

// BiasedIntConfig describes an integer drawn from [Min, Max] with a bias
// toward Med, the typical value, as well as toward the bounds. Every quantity
// in a generated workload is drawn this way.
type BiasedIntConfig struct {
	Min int
	Med int
	Max int
}

// Draw draws a value labelled name. It panics if Med lies outside [Min, Max].
func (c *BiasedIntConfig) Draw(t *rapid.T, name string) int {
	if c.Med < c.Min || c.Max < c.Med {
		panic(fmt.Sprint("invalid BiasedIntConfig:", *c))
	}
	return rapid.Custom(func(t *rapid.T) int {
		// Generate a value in the range [min-med, max-med] instead of [min,
		// max] to take advantage of rapid's bias toward generating numbers near
		// zero as well as at the provided bounds.
		return c.Med + rapid.IntRange(c.Min-c.Med, c.Max-c.Med).Draw(t, name+"(internal)")
	}).Draw(t, name)
}

// BiasedBool returns a rapid generator for boolean values that are true with
// probability p.
func BiasedBool(p float64) *rapid.Generator[bool] {
	notOne := func(v float64) bool { return v != 1 }
	return rapid.Custom(func(t *rapid.T) bool {
		return rapid.Float64Range(0, 1).Filter(notOne).Draw(t, "p") < p || p == 1.0
	})
}
