package model

import (
	"log/slog"

	"github.com/limaJavier/grouping/pkg/partition"
	"github.com/limaJavier/grouping/pkg/random"
)

type seatPlanner struct {
	partitioner partition.Partitioner
	log         *slog.Logger
}

func NewSeatPlanner(source random.Source, log *slog.Logger) Planner {
	if log == nil {
		log = slog.Default()
	}
	return &seatPlanner{
		partitioner: partition.NewPartitioner(source),
		log:         log,
	}
}

// Build seats students two by two; the input's unit count is ignored
func (planner *seatPlanner) Build(input Input) (Result, error) {
	if len(input.Roster) == 0 {
		return Result{}, ErrEmptyRoster
	}
	conflicts := snapshot(input)

	result := Result{
		Mode:  ModeSeats,
		Seats: partition.BuildPairs(planner.partitioner, input.Roster, conflicts),
	}
	audit(&result, conflicts, planner.log)
	return result, nil
}

func (planner *seatPlanner) Verify(result Result, input Input) bool {
	return verify(result, input) && len(result.Seats) == partition.UnitCountForSize(len(input.Roster), 2)
}
