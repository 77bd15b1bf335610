package partition

import "github.com/google/uuid"

// Unit is the atomic container produced by the partitioner
type Unit struct {
	Index   int
	Members []string
}

func (unit Unit) Size() int {
	return len(unit.Members)
}

// Partition is an ordered sequence of disjoint units whose union is the partitioned roster
type Partition []Unit

func (partition Partition) Sizes() []int {
	sizes := make([]int, len(partition))
	for i, unit := range partition {
		sizes[i] = unit.Size()
	}
	return sizes
}

// Members returns every member of every unit in unit order
func (partition Partition) Members() []string {
	members := make([]string, 0)
	for _, unit := range partition {
		members = append(members, unit.Members...)
	}
	return members
}

type Group struct {
	Id      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Members []string  `json:"members"`
}

type Seat struct {
	Index   int      `json:"index"`
	Members []string `json:"members"` // One or two occupants
}

// Conflicts is the read-only view of a conflict relation the partitioner needs
type Conflicts interface {
	Contains(a, b string) bool
}
