package model

import (
	"log/slog"

	"github.com/limaJavier/grouping/pkg/conflict"
	"github.com/limaJavier/grouping/pkg/partition"

	"github.com/samber/lo"
)

// snapshot freezes the input's relation so edits made by its owner during the computation go unnoticed
func snapshot(input Input) *conflict.Relation {
	if input.Conflicts == nil {
		return conflict.NewRelation()
	}
	return input.Conflicts.Snapshot()
}

func audit(result *Result, conflicts *conflict.Relation, log *slog.Logger) {
	units := result.Partition()
	result.Violations = partition.Violations(units, conflicts)
	result.Violation = len(result.Violations) > 0

	log.Debug("arrangement built",
		"mode", result.Mode,
		"students", len(units.Members()),
		"units", len(units),
		"sizes", units.Sizes(),
		"conflicts", conflicts.Len(),
	)

	if result.Violation {
		log.Warn("conflicting students share a unit, consider more units",
			"mode", result.Mode,
			"pairs", lo.Map(result.Violations, func(violation partition.Violation, _ int) string { return violation.Pair.String() }),
		)
	}
}

func verify(result Result, input Input) bool {
	units := result.Partition()
	conflicts := snapshot(input)

	// Check that:
	// - Every present student is placed exactly once
	// - Unit sizes differ by at most one
	// - The reported violation flag matches the arrangement
	return partition.Verify(units, input.Roster) &&
		partition.Balanced(units) &&
		result.Violation == partition.HasUnavoidableViolation(units, conflicts)
}
