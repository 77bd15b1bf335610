package partition

import (
	"slices"

	"github.com/limaJavier/grouping/pkg/random"

	"github.com/samber/lo"
)

type greedyPartitioner struct {
	source random.Source
}

func (partitioner *greedyPartitioner) Partition(roster []string, unitCount int, conflicts Conflicts) Partition {
	if len(roster) == 0 {
		return Partition{}
	}
	unitCount = max(1, min(unitCount, len(roster)))

	//** Initialize units
	units := make(Partition, unitCount)
	for i := range units {
		units[i] = Unit{Index: i, Members: make([]string, 0, len(roster)/unitCount+1)}
	}

	//** Shuffle a copy of the roster, the caller's slice is never reordered
	students := slices.Clone(roster)
	partitioner.source.Shuffle(len(students), func(i, j int) {
		students[i], students[j] = students[j], students[i]
	})

	allowance := newBalanceAllowance(len(students), unitCount)
	for _, student := range students {
		eligible := lo.Filter(units, func(unit Unit, _ int) bool {
			return allowance.accepts(unit.Size())
		})

		// Phase 1: smallest eligible unit with no member conflicting with the student
		safe := lo.Filter(eligible, func(unit Unit, _ int) bool {
			return !lo.SomeBy(unit.Members, func(member string) bool {
				return conflicts.Contains(student, member)
			})
		})

		var target Unit
		if len(safe) > 0 {
			target = smallest(safe)
		} else {
			// Phase 2: forced placement, the smallest unit overall is always eligible
			target = smallest(units)
		}

		allowance.record(target.Size())
		units[target.Index].Members = append(units[target.Index].Members, student)
	}

	return units
}

// smallest returns the unit with fewest members, the first one wins ties
func smallest(units []Unit) Unit {
	return lo.MinBy(units, func(unit Unit, currentMin Unit) bool {
		return unit.Size() < currentMin.Size()
	})
}

// balanceAllowance keeps every unit's final size at floor(n/k) or floor(n/k)+1 with exactly n mod k units
// holding the larger size
type balanceAllowance struct {
	base      int // floor(n/k)
	oversized int // Units allowed to reach base+1
	reached   int // Units that already reached base+1
}

func newBalanceAllowance(students, units int) *balanceAllowance {
	return &balanceAllowance{
		base:      students / units,
		oversized: students % units,
	}
}

// Checks whether a unit currently holding size members may take one more
func (allowance *balanceAllowance) accepts(size int) bool {
	return size < allowance.base || (size == allowance.base && allowance.reached < allowance.oversized)
}

func (allowance *balanceAllowance) record(size int) {
	if size == allowance.base {
		allowance.reached++
	}
}
