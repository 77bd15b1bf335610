package partition

import "github.com/limaJavier/grouping/pkg/conflict"

// Violation is a conflicting pair the partitioner had to co-locate
type Violation struct {
	Unit int           `json:"unit"`
	Pair conflict.Pair `json:"pair"`
}

// HasUnavoidableViolation checks whether any unit holds two conflicting members
func HasUnavoidableViolation(partition Partition, conflicts Conflicts) bool {
	for _, unit := range partition {
		for i := range len(unit.Members) - 1 {
			for j := i + 1; j < len(unit.Members); j++ {
				if conflicts.Contains(unit.Members[i], unit.Members[j]) {
					return true
				}
			}
		}
	}
	return false
}

// Violations lists every conflicting pair found inside a unit, in unit order
func Violations(partition Partition, conflicts Conflicts) []Violation {
	violations := make([]Violation, 0)
	for _, unit := range partition {
		for i := range len(unit.Members) - 1 {
			for j := i + 1; j < len(unit.Members); j++ {
				a, b := unit.Members[i], unit.Members[j]
				if !conflicts.Contains(a, b) {
					continue
				}

				pair, err := conflict.NewPair(a, b)
				if err != nil { // Only possible if a member is duplicated, which Verify reports
					continue
				}
				violations = append(violations, Violation{Unit: unit.Index, Pair: pair})
			}
		}
	}
	return violations
}
