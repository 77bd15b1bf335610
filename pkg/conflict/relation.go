package conflict

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Relation is a set of unordered conflict pairs. It is safe for concurrent use, although computations
// are expected to work on a Snapshot so later edits stay invisible to them
type Relation struct {
	mutex sync.RWMutex
	pairs map[Pair]struct{}
}

func NewRelation() *Relation {
	return &Relation{pairs: make(map[Pair]struct{})}
}

// FromPairs builds a relation out of raw two-element pairs, rejecting self pairs
func FromPairs(rawPairs [][2]string) (*Relation, error) {
	relation := NewRelation()
	for _, rawPair := range rawPairs {
		if err := relation.Add(rawPair[0], rawPair[1]); err != nil {
			return nil, err
		}
	}
	return relation, nil
}

// Adds the unordered pair (a, b). Adding an existing pair is a no-op
func (relation *Relation) Add(a, b string) error {
	pair, err := NewPair(a, b)
	if err != nil {
		return err
	}

	relation.mutex.Lock()
	defer relation.mutex.Unlock()
	relation.pairs[pair] = struct{}{}
	return nil
}

// Removes the unordered pair (a, b) if present
func (relation *Relation) Remove(a, b string) {
	relation.mutex.Lock()
	defer relation.mutex.Unlock()
	delete(relation.pairs, normalize(a, b))
}

// Checks whether a and b conflict, regardless of the order they're given in
func (relation *Relation) Contains(a, b string) bool {
	if a == b {
		return false
	}

	relation.mutex.RLock()
	defer relation.mutex.RUnlock()
	_, ok := relation.pairs[normalize(a, b)]
	return ok
}

func (relation *Relation) Len() int {
	relation.mutex.RLock()
	defer relation.mutex.RUnlock()
	return len(relation.pairs)
}

// Pairs returns every pair sorted by (A, B)
func (relation *Relation) Pairs() []Pair {
	relation.mutex.RLock()
	pairs := lo.Keys(relation.pairs)
	relation.mutex.RUnlock()

	slices.SortFunc(pairs, func(p1, p2 Pair) int {
		if comparison := strings.Compare(p1.A, p2.A); comparison != 0 {
			return comparison
		}
		return strings.Compare(p1.B, p2.B)
	})
	return pairs
}

// Involving returns the sorted ids that conflict with student
func (relation *Relation) Involving(student string) []string {
	others := lo.FilterMap(relation.Pairs(), func(pair Pair, _ int) (string, bool) {
		return pair.Other(student)
	})
	slices.Sort(others)
	return others
}

// Snapshot returns an independent copy of the relation
func (relation *Relation) Snapshot() *Relation {
	relation.mutex.RLock()
	defer relation.mutex.RUnlock()

	snapshot := &Relation{pairs: make(map[Pair]struct{}, len(relation.pairs))}
	for pair := range relation.pairs {
		snapshot.pairs[pair] = struct{}{}
	}
	return snapshot
}

func (relation *Relation) String() string {
	return fmt.Sprintf("%v", lo.Map(relation.Pairs(), func(pair Pair, _ int) string { return pair.String() }))
}
