package partition

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/limaJavier/grouping/pkg/conflict"
	"github.com/limaJavier/grouping/pkg/random"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCountForSize(t *testing.T) {
	assert.Equal(t, 3, UnitCountForSize(5, 2))
	assert.Equal(t, 2, UnitCountForSize(8, 4))
	assert.Equal(t, 3, UnitCountForSize(9, 4))
	assert.Equal(t, 9, UnitCountForSize(9, 0))
	assert.Equal(t, 1, UnitCountForSize(3, 10))
	assert.Equal(t, 0, UnitCountForSize(0, 3))
}

func TestBuildPairs(t *testing.T) {
	t.Run("Five students take three seats", func(t *testing.T) {
		g := gomega.NewWithT(t)
		roster := []string{"A", "B", "C", "D", "E"}

		seats := BuildPairs(NewPartitioner(random.NewSeededSource(11)), roster, conflict.NewRelation())

		g.Expect(seats).To(gomega.HaveLen(3))
		g.Expect(SeatsToPartition(seats).Sizes()).To(gomega.ConsistOf(2, 2, 1))
		g.Expect(SeatsToPartition(seats).Members()).To(gomega.ConsistOf(roster))
	})

	t.Run("Seats hold one or two occupants", func(t *testing.T) {
		for seed := range uint64(100) {
			roster := newRoster(int(seed%31) + 1)
			relation := conflict.NewRelation()
			if len(roster) > 1 {
				require.NoError(t, relation.Add(roster[0], roster[len(roster)-1]))
			}

			seats := BuildPairs(NewPartitioner(random.NewSeededSource(seed)), roster, relation)

			assert.Len(t, seats, (len(roster)+1)/2)
			for i, seat := range seats {
				assert.Equal(t, i, seat.Index)
				assert.True(t, len(seat.Members) == 1 || len(seat.Members) == 2, "seat %d has %d occupants", i, len(seat.Members))
			}
			assert.True(t, Verify(SeatsToPartition(seats), roster))
		}
	})

	t.Run("Conflicting deskmates are split", func(t *testing.T) {
		roster := []string{"A", "B", "C", "D", "E", "F"}
		relation, err := conflict.FromPairs([][2]string{{"A", "B"}, {"C", "D"}})
		require.NoError(t, err)

		seats := BuildPairs(NewPartitioner(random.NewPinnedSource()), roster, relation)

		assert.False(t, HasUnavoidableViolation(SeatsToPartition(seats), relation))
	})
}

func TestBuildGroups(t *testing.T) {
	roster := newRoster(10)

	t.Run("Names and identifiers", func(t *testing.T) {
		g := gomega.NewWithT(t)
		source := random.NewSeededSource(4)

		groups, err := BuildGroups(NewPartitioner(source), roster, 3, conflict.NewRelation(), random.Reader(source))

		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(groups).To(gomega.HaveLen(3))
		g.Expect([]string{groups[0].Name, groups[1].Name, groups[2].Name}).To(gomega.Equal([]string{"Group 1", "Group 2", "Group 3"}))
		g.Expect(GroupsToPartition(groups).Sizes()).To(gomega.ConsistOf(4, 3, 3))
		for _, group := range groups {
			g.Expect(group.Id.Version()).To(gomega.Equal(uuid.Version(4)))
		}
		g.Expect(groups[0].Id).NotTo(gomega.Equal(groups[1].Id))
	})

	t.Run("Identifiers follow the source", func(t *testing.T) {
		first, err := BuildGroups(NewPartitioner(random.NewSeededSource(8)), roster, 2, conflict.NewRelation(), random.Reader(random.NewSeededSource(8)))
		require.NoError(t, err)
		second, err := BuildGroups(NewPartitioner(random.NewSeededSource(8)), roster, 2, conflict.NewRelation(), random.Reader(random.NewSeededSource(8)))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Identifier source failure", func(t *testing.T) {
		groups, err := BuildGroups(NewPartitioner(random.NewPinnedSource()), roster, 2, conflict.NewRelation(), failingReader{})

		assert.Nil(t, groups)
		assert.ErrorIs(t, err, errExhausted)
	})
}

var errExhausted = errors.New("exhausted")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errExhausted
}
