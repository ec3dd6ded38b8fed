// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package sim generates random workloads for property-based tests of the
// schedulers and checks the invariants every timeline must satisfy. Workloads
// are drawn with rapid so that failures shrink to small, readable process
// sets. The shape of the generated sets (how many processes, how spread out
// their arrivals, how long their bursts) is controlled by a [Config].
package sim
