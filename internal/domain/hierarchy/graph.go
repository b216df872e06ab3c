package hierarchy

import (
	"sort"
	"sync"
)

// Graph holds the manager/direct-report edges between business persons.
// Every employee has at most one direct manager, so edges are stored as an
// employee -> manager adjacency map. The whole graph is guarded by a single
// lock; organizational graphs are small enough that finer locking buys nothing.
type Graph struct {
	mu        sync.RWMutex
	employers map[int64]bool  // person id -> can manage others
	manager   map[int64]int64 // employee id -> direct manager id
}

func NewGraph() *Graph {
	return &Graph{
		employers: make(map[int64]bool),
		manager:   make(map[int64]int64),
	}
}

// AddPerson registers a person as a node. Re-adding an existing person only
// updates the employer capability flag.
func (g *Graph) AddPerson(id int64, employer bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.employers[id] = employer
}

// Contains reports whether the person is a node in the graph.
func (g *Graph) Contains(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.employers[id]
	return ok
}

// IsEmployer reports whether the person exists and may manage others.
func (g *Graph) IsEmployer(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.employers[id]
}

// AssignManager sets managerID as the direct manager of employeeID, replacing
// any prior edge. The assignment is rejected if managerID is a descendant of
// employeeID (employeeID itself included), so the relation stays a forest.
func (g *Graph) AssignManager(employeeID, managerID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.employers[employeeID]; !ok {
		return ErrPersonNotFound
	}
	canManage, ok := g.employers[managerID]
	if !ok {
		return ErrPersonNotFound
	}
	if !canManage {
		return ErrNotAnEmployer
	}

	// Walking up from the candidate manager must never reach the employee.
	if employeeID == managerID {
		return ErrCycleDetected
	}
	for cur, ok := managerID, true; ok; cur, ok = g.lookupManager(cur) {
		if cur == employeeID {
			return ErrCycleDetected
		}
	}

	g.manager[employeeID] = managerID
	return nil
}

// ClearManager drops the manager edge for employeeID, if any.
func (g *Graph) ClearManager(employeeID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.manager, employeeID)
}

// DirectReports returns the ids of employees whose current manager is
// employerID, sorted ascending. Empty slice if none.
func (g *Graph) DirectReports(employerID int64) []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	reports := make([]int64, 0)
	for emp, mgr := range g.manager {
		if mgr == employerID {
			reports = append(reports, emp)
		}
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i] < reports[j] })
	return reports
}

// IsAncestor reports whether candidateID is the direct manager of employeeID
// or an ancestor of that manager. A person is never their own ancestor.
func (g *Graph) IsAncestor(candidateID, employeeID int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cur, ok := g.lookupManager(employeeID)
	for ok {
		if cur == candidateID {
			return true
		}
		cur, ok = g.lookupManager(cur)
	}
	return false
}

// RemovePerson removes the person as a node. Direct reports of the removed
// person become managerless; they are not reassigned to anyone else, the
// caller decides how to repair the hierarchy.
func (g *Graph) RemovePerson(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.employers, id)
	delete(g.manager, id)
	for emp, mgr := range g.manager {
		if mgr == id {
			delete(g.manager, emp)
		}
	}
}

// lookupManager must be called with the lock held.
func (g *Graph) lookupManager(id int64) (int64, bool) {
	mgr, ok := g.manager[id]
	return mgr, ok
}
