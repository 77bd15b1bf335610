package model

import "github.com/limaJavier/grouping/pkg/partition"

type Planner interface {
	Build(
		input Input,
	) (Result, error)

	Verify(
		result Result,
		input Input,
	) bool
}

type Result struct {
	Mode       Mode                  `json:"mode"`
	Groups     []partition.Group     `json:"groups,omitempty"`
	Seats      []partition.Seat      `json:"seats,omitempty"`
	Violation  bool                  `json:"hasUnavoidableViolation"`
	Violations []partition.Violation `json:"violations"`
}

// Partition returns the result's units regardless of the mode it was built with
func (result Result) Partition() partition.Partition {
	if result.Mode == ModeSeats {
		return partition.SeatsToPartition(result.Seats)
	}
	return partition.GroupsToPartition(result.Groups)
}
