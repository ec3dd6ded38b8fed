// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrInvalidProcessSet is wrapped by every rejection from [NewProcessSet].
const ErrInvalidProcessSet = constError("invalid process set")

// ErrInvalidQuantum is returned when a Round Robin quantum is less than one.
const ErrInvalidQuantum = constError("invalid quantum")

// ErrUnknownPolicy is returned when a policy name is not one of [Policies].
const ErrUnknownPolicy = constError("unknown policy")

// ErrInvalidTimeline is wrapped when a timeline does not describe a complete,
// well-formed execution of its process set.
const ErrInvalidTimeline = constError("invalid timeline")
