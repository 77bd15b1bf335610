package partition

import "github.com/samber/lo"

// Verify checks that every student of the roster appears exactly once across the partition and nobody else does
func Verify(partition Partition, roster []string) bool {
	expected := lo.SliceToMap(roster, func(student string) (string, bool) { return student, false })
	if len(expected) != len(roster) {
		return false // The roster itself has duplicates
	}

	for _, unit := range partition {
		for _, member := range unit.Members {
			seen, ok := expected[member]
			if !ok || seen {
				return false
			}
			expected[member] = true
		}
	}

	return lo.EveryBy(lo.Values(expected), func(seen bool) bool { return seen })
}

// Balanced checks that unit sizes differ by at most one
func Balanced(partition Partition) bool {
	if len(partition) == 0 {
		return true
	}
	sizes := partition.Sizes()
	return lo.Max(sizes)-lo.Min(sizes) <= 1
}
