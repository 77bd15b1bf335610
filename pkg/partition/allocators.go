package partition

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// UnitCountForSize derives how many units are needed so that none exceeds size members (ceil(students/size))
func UnitCountForSize(students, size int) int {
	size = max(size, 1)
	return (students + size - 1) / size
}

// BuildPairs seats the roster two by two. Since the unit count is ceil(n/2), balance alone keeps every seat at one or two occupants
func BuildPairs(partitioner Partitioner, roster []string, conflicts Conflicts) []Seat {
	partition := partitioner.Partition(roster, UnitCountForSize(len(roster), 2), conflicts)

	return lo.Map(partition, func(unit Unit, _ int) Seat {
		return Seat{
			Index:   unit.Index,
			Members: unit.Members,
		}
	})
}

// BuildGroups divides the roster into count named groups whose identifiers are drawn from ids
func BuildGroups(partitioner Partitioner, roster []string, count int, conflicts Conflicts, ids io.Reader) ([]Group, error) {
	partition := partitioner.Partition(roster, count, conflicts)

	groups := make([]Group, 0, len(partition))
	for _, unit := range partition {
		id, err := uuid.NewRandomFromReader(ids)
		if err != nil {
			return nil, fmt.Errorf("cannot generate identifier for group %d: %w", unit.Index+1, err)
		}

		groups = append(groups, Group{
			Id:      id,
			Name:    fmt.Sprintf("Group %d", unit.Index+1),
			Members: unit.Members,
		})
	}
	return groups, nil
}

// SeatsToPartition and GroupsToPartition turn allocator results back into units for auditing and verification

func SeatsToPartition(seats []Seat) Partition {
	return lo.Map(seats, func(seat Seat, _ int) Unit {
		return Unit{Index: seat.Index, Members: seat.Members}
	})
}

func GroupsToPartition(groups []Group) Partition {
	return lo.Map(groups, func(group Group, i int) Unit {
		return Unit{Index: i, Members: group.Members}
	})
}
