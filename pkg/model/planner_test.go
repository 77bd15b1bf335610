package model

import (
	"log/slog"
	"os"
	"testing"

	"github.com/limaJavier/grouping/pkg/conflict"
	"github.com/limaJavier/grouping/pkg/partition"
	"github.com/limaJavier/grouping/pkg/random"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLog = slog.New(slog.DiscardHandler)

func TestGroupPlanner(t *testing.T) {
	planner := NewGroupPlanner(random.NewSeededSource(1), discardLog)

	t.Run("Input files", func(t *testing.T) {
		testFiles, err := os.ReadDir(inputTestDirectory)
		require.NoError(t, err)

		for _, file := range testFiles {
			//** Arrange
			input, err := InputFromJson(inputTestDirectory + file.Name())
			require.NoError(t, err)
			if input.Mode != ModeGroups {
				continue
			}

			//** Act
			result, err := planner.Build(input)

			//** Assert
			require.NoError(t, err)
			assert.Len(t, result.Groups, input.UnitCount)
			assert.True(t, planner.Verify(result, input), "file %v", file.Name())
		}
	})

	t.Run("Unavoidable violation", func(t *testing.T) {
		g := gomega.NewWithT(t)
		relation, err := conflict.FromPairs([][2]string{{"A", "B"}})
		require.NoError(t, err)

		result, err := planner.Build(Input{Mode: ModeGroups, Roster: []string{"A", "B"}, Conflicts: relation, UnitCount: 1})

		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(result.Violation).To(gomega.BeTrue())
		g.Expect(result.Violations).To(gomega.ConsistOf(partition.Violation{Unit: 0, Pair: conflict.Pair{A: "A", B: "B"}}))
		g.Expect(planner.Verify(result, Input{Roster: []string{"A", "B"}, Conflicts: relation})).To(gomega.BeTrue())
	})

	t.Run("Empty roster", func(t *testing.T) {
		_, err := planner.Build(Input{Mode: ModeGroups, UnitCount: 2})

		assert.ErrorIs(t, err, ErrEmptyRoster)
	})

	t.Run("Missing relation", func(t *testing.T) {
		result, err := planner.Build(Input{Mode: ModeGroups, Roster: []string{"A", "B", "C"}, UnitCount: 2})

		require.NoError(t, err)
		assert.False(t, result.Violation)
		assert.Empty(t, result.Violations)
	})
}

func TestSeatPlanner(t *testing.T) {
	planner := NewSeatPlanner(random.NewSeededSource(2), discardLog)

	t.Run("Five students", func(t *testing.T) {
		g := gomega.NewWithT(t)
		input, err := InputFromJson(inputTestDirectory + "seats.json")
		require.NoError(t, err)

		result, err := planner.Build(input)

		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(result.Mode).To(gomega.Equal(ModeSeats))
		g.Expect(result.Groups).To(gomega.BeEmpty())
		g.Expect(result.Partition().Sizes()).To(gomega.ConsistOf(2, 2, 1))
		g.Expect(planner.Verify(result, input)).To(gomega.BeTrue())
	})

	t.Run("Tampered result fails verification", func(t *testing.T) {
		input, err := InputFromJson(inputTestDirectory + "seats.json")
		require.NoError(t, err)
		result, err := planner.Build(input)
		require.NoError(t, err)

		result.Seats = result.Seats[1:]

		assert.False(t, planner.Verify(result, input))
	})

	t.Run("Wrong violation flag fails verification", func(t *testing.T) {
		input := Input{Mode: ModeSeats, Roster: []string{"A", "B"}, Conflicts: conflict.NewRelation()}
		result, err := planner.Build(input)
		require.NoError(t, err)

		result.Violation = true

		assert.False(t, planner.Verify(result, input))
	})
}

func TestGroupPlannerSeparatesConflicts(t *testing.T) {
	//** Arrange
	relation, err := conflict.FromPairs([][2]string{{"A", "B"}})
	require.NoError(t, err)
	input := Input{Mode: ModeGroups, Roster: []string{"A", "B", "C", "D"}, Conflicts: relation, UnitCount: 2}
	planner := NewGroupPlanner(random.NewPinnedSource(), nil)

	for trial := range 10 {
		//** Act
		result, err := planner.Build(input)

		//** Assert
		require.NoError(t, err)
		require.False(t, result.Violation, "trial %d: %v", trial, result.Groups)
		assert.True(t, planner.Verify(result, input))
		assert.Equal(t, 1, relation.Len()) // The caller's relation is left untouched
	}
}
