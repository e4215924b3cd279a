package lesson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/lesson"
)

func TestLookup(t *testing.T) {
	for _, key := range []string{lesson.Eulerian, lesson.Hamiltonian, lesson.Connectivity, lesson.Trees} {
		c, ok := lesson.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, key, c.Key)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Insight)
		assert.Len(t, c.Conditions, 2)
	}

	c, ok := lesson.Lookup("planarity")
	assert.False(t, ok)
	assert.Equal(t, "planarity", c.Key)
	assert.Equal(t, "Unknown Concept", c.Name)
	assert.Equal(t, c.Insight, lesson.Insight("planarity"))
}

func TestLookup_ReturnsCopies(t *testing.T) {
	c, _ := lesson.Lookup(lesson.Eulerian)
	c.Conditions[0].Rule = "mutated"

	again, _ := lesson.Lookup(lesson.Eulerian)
	assert.Equal(t, "All vertices have even degree", again.Conditions[0].Rule)
}

func TestConceptsSorted(t *testing.T) {
	var keys []string
	for _, c := range lesson.Concepts() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"connectivity", "eulerian", "hamiltonian", "trees"}, keys)
}

func TestProgression(t *testing.T) {
	stages := lesson.Progression()
	require.Len(t, stages, 6)
	for i, s := range stages {
		assert.Equal(t, i+1, s.Number)
	}

	s, err := lesson.StageByNumber(4)
	require.NoError(t, err)
	assert.Equal(t, "Eulerian Paths", s.Title)

	_, err = lesson.StageByNumber(0)
	assert.ErrorIs(t, err, lesson.ErrUnknownStage)
	_, err = lesson.StageByNumber(7)
	assert.ErrorIs(t, err, lesson.ErrUnknownStage)
}
