package model

import (
	"log/slog"

	"github.com/limaJavier/grouping/pkg/partition"
	"github.com/limaJavier/grouping/pkg/random"
)

type groupPlanner struct {
	source      random.Source
	partitioner partition.Partitioner
	log         *slog.Logger
}

func NewGroupPlanner(source random.Source, log *slog.Logger) Planner {
	if log == nil {
		log = slog.Default()
	}
	return &groupPlanner{
		source:      source,
		partitioner: partition.NewPartitioner(source),
		log:         log,
	}
}

func (planner *groupPlanner) Build(input Input) (Result, error) {
	if len(input.Roster) == 0 {
		return Result{}, ErrEmptyRoster
	}
	conflicts := snapshot(input)

	groups, err := partition.BuildGroups(planner.partitioner, input.Roster, input.UnitCount, conflicts, random.Reader(planner.source))
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Mode:   ModeGroups,
		Groups: groups,
	}
	audit(&result, conflicts, planner.log)
	return result, nil
}

func (planner *groupPlanner) Verify(result Result, input Input) bool {
	return verify(result, input)
}
