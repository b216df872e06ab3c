package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildChain creates employers 1 -> 2 -> 3 (1 manages 2, 2 manages 3).
func buildChain(t *testing.T) *Graph {
	g := NewGraph()
	g.AddPerson(1, true)
	g.AddPerson(2, true)
	g.AddPerson(3, true)
	require.NoError(t, g.AssignManager(2, 1))
	require.NoError(t, g.AssignManager(3, 2))
	return g
}

func TestGraph_AssignManager_Success(t *testing.T) {
	g := NewGraph()
	g.AddPerson(1, true)
	g.AddPerson(2, false)

	err := g.AssignManager(2, 1)

	assert.NoError(t, err)
	assert.Equal(t, []int64{2}, g.DirectReports(1))
}

func TestGraph_AssignManager_UnknownPerson(t *testing.T) {
	g := NewGraph()
	g.AddPerson(1, true)

	assert.ErrorIs(t, g.AssignManager(99, 1), ErrPersonNotFound)
	assert.ErrorIs(t, g.AssignManager(1, 99), ErrPersonNotFound)
}

func TestGraph_AssignManager_NotAnEmployer(t *testing.T) {
	g := NewGraph()
	g.AddPerson(1, false)
	g.AddPerson(2, false)

	assert.ErrorIs(t, g.AssignManager(2, 1), ErrNotAnEmployer)
}

func TestGraph_AssignManager_SelfCycle(t *testing.T) {
	g := NewGraph()
	g.AddPerson(1, true)

	assert.ErrorIs(t, g.AssignManager(1, 1), ErrCycleDetected)
}

func TestGraph_AssignManager_CycleLeavesGraphUnchanged(t *testing.T) {
	g := buildChain(t)

	// Making 3 the manager of 1 would close the loop 1 -> 2 -> 3 -> 1.
	err := g.AssignManager(1, 3)

	assert.ErrorIs(t, err, ErrCycleDetected)
	assert.Equal(t, []int64{2}, g.DirectReports(1))
	assert.Equal(t, []int64{3}, g.DirectReports(2))
	assert.Empty(t, g.DirectReports(3))
}

func TestGraph_AssignManager_ReplacesExistingEdge(t *testing.T) {
	g := NewGraph()
	g.AddPerson(1, true)
	g.AddPerson(2, true)
	g.AddPerson(3, false)
	require.NoError(t, g.AssignManager(3, 1))

	require.NoError(t, g.AssignManager(3, 2))

	assert.Empty(t, g.DirectReports(1))
	assert.Equal(t, []int64{3}, g.DirectReports(2))
}

func TestGraph_IsAncestor(t *testing.T) {
	g := buildChain(t)

	assert.True(t, g.IsAncestor(1, 3), "grandmanager is an ancestor")
	assert.True(t, g.IsAncestor(2, 3))
	assert.False(t, g.IsAncestor(3, 1), "descendant is not an ancestor")
	assert.False(t, g.IsAncestor(1, 1), "a person is never their own ancestor")
}

func TestGraph_ClearManager(t *testing.T) {
	g := buildChain(t)

	g.ClearManager(3)

	assert.Empty(t, g.DirectReports(2))
	assert.False(t, g.IsAncestor(2, 3))
}

func TestGraph_RemovePerson_ReportsBecomeManagerless(t *testing.T) {
	g := buildChain(t)

	g.RemovePerson(2)

	assert.False(t, g.Contains(2))
	assert.Empty(t, g.DirectReports(1))
	assert.False(t, g.IsAncestor(1, 3), "removing the middle manager severs the chain")
}

func TestGraph_DirectReports_Sorted(t *testing.T) {
	g := NewGraph()
	g.AddPerson(1, true)
	for _, id := range []int64{9, 4, 7} {
		g.AddPerson(id, false)
		require.NoError(t, g.AssignManager(id, 1))
	}

	assert.Equal(t, []int64{4, 7, 9}, g.DirectReports(1))
}
