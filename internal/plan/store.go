package plan

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the single authoritative collection of tasks for one plan.
// All mutation goes through it; every operation either fully succeeds
// or leaves the store unchanged. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	order []string // insertion order, for deterministic listings
}

// NewStore creates an empty task store.
func NewStore() *Store {
	return &Store{
		tasks: make(map[string]*Task),
	}
}

// Draft describes a task to be added to the store.
type Draft struct {
	Title         string
	RequiredTime  float64
	IdealDeadline time.Time
	Importance    Importance
	ParentID      string
}

// Patch holds optional field updates for Update. Nil fields are left
// unchanged.
type Patch struct {
	Title         *string
	RequiredTime  *float64
	IdealDeadline *time.Time
	Importance    *Importance
}

// Add validates the draft, assigns a fresh id and stores the task.
// If ParentID is set, the parent's child list gains the new id in the
// same operation.
func (s *Store) Add(d Draft) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateRequiredTime(d.RequiredTime); err != nil {
		return Task{}, err
	}
	if !d.Importance.IsValid() {
		return Task{}, &ValidationError{Field: "importance", Reason: "must be 1 (must) to 4 (optional)"}
	}

	var parent *Task
	if d.ParentID != "" {
		var ok bool
		parent, ok = s.tasks[d.ParentID]
		if !ok {
			return Task{}, fmt.Errorf("parent %s: %w", d.ParentID, ErrNotFound)
		}
	}

	t := &Task{
		ID:            uuid.NewString(),
		Title:         d.Title,
		RequiredTime:  d.RequiredTime,
		IdealDeadline: d.IdealDeadline,
		Importance:    d.Importance,
		CreatedAt:     time.Now(),
		ParentID:      d.ParentID,
	}

	s.tasks[t.ID] = t
	s.order = append(s.order, t.ID)
	if parent != nil {
		parent.ChildIDs = append(parent.ChildIDs, t.ID)
	}

	return cloneTask(t), nil
}

// Update merges the patch into the task. All fields present in the
// patch are re-validated before anything is applied.
func (s *Store) Update(id string, p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("update %s: %w", id, ErrNotFound)
	}

	if p.RequiredTime != nil {
		if err := validateRequiredTime(*p.RequiredTime); err != nil {
			return err
		}
	}
	if p.Importance != nil && !p.Importance.IsValid() {
		return &ValidationError{Field: "importance", Reason: "must be 1 (must) to 4 (optional)"}
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.RequiredTime != nil {
		t.RequiredTime = *p.RequiredTime
	}
	if p.IdealDeadline != nil {
		t.IdealDeadline = *p.IdealDeadline
	}
	if p.Importance != nil {
		t.Importance = *p.Importance
	}

	return nil
}

// ToggleCompletion flips the completion state. Completing a task
// completes every descendant with the same timestamp; un-completing
// affects only the task itself.
func (s *Store) ToggleCompletion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}

	if t.Completed {
		t.Completed = false
		t.CompletedAt = time.Time{}
		return nil
	}

	now := time.Now()
	t.Completed = true
	t.CompletedAt = now
	for _, descID := range s.descendants(id) {
		desc := s.tasks[descID]
		desc.Completed = true
		desc.CompletedAt = now
	}

	return nil
}

// Delete removes the task, its entire subtree, and every reference to
// the removed ids from surviving tasks. Deleting an absent id is a
// no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil
	}

	removed := map[string]bool{id: true}
	for _, descID := range s.descendants(id) {
		removed[descID] = true
	}

	if t.ParentID != "" {
		if parent, ok := s.tasks[t.ParentID]; ok {
			parent.ChildIDs = removeID(parent.ChildIDs, id)
		}
	}

	s.remove(removed)
	return nil
}

// Link records a directed link from one task to another. Both sides of
// the relation are updated together; linking twice is a no-op.
func (s *Store) Link(fromID, toID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fromID == toID {
		return fmt.Errorf("self-link %s: %w", fromID, ErrInvalidOperation)
	}
	from, to, err := s.endpoints(fromID, toID)
	if err != nil {
		return err
	}

	from.LinksTo = appendID(from.LinksTo, toID)
	to.LinkedFrom = appendID(to.LinkedFrom, fromID)
	return nil
}

// Unlink removes a directed link. Removing an absent link is a no-op.
func (s *Store) Unlink(fromID, toID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to, err := s.endpoints(fromID, toID)
	if err != nil {
		return err
	}

	from.LinksTo = removeID(from.LinksTo, toID)
	to.LinkedFrom = removeID(to.LinkedFrom, fromID)
	return nil
}

// AddDependency records that a task cannot start until the
// prerequisite is completed. The edge is recorded only; no operation
// blocks on it (see IsStartable).
func (s *Store) AddDependency(id, prereqID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == prereqID {
		return fmt.Errorf("self-dependency %s: %w", id, ErrInvalidOperation)
	}
	t, _, err := s.endpoints(id, prereqID)
	if err != nil {
		return err
	}

	t.Prerequisites = appendID(t.Prerequisites, prereqID)
	return nil
}

// RemoveDependency removes a recorded prerequisite edge.
func (s *Store) RemoveDependency(id, prereqID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, _, err := s.endpoints(id, prereqID)
	if err != nil {
		return err
	}

	t.Prerequisites = removeID(t.Prerequisites, prereqID)
	return nil
}

// Prerequisites returns the tasks recorded as prerequisites of the
// given task.
func (s *Store) Prerequisites(id string) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("prerequisites %s: %w", id, ErrNotFound)
	}

	var prereqs []Task
	for _, prereqID := range t.Prerequisites {
		if prereq, ok := s.tasks[prereqID]; ok {
			prereqs = append(prereqs, cloneTask(prereq))
		}
	}
	return prereqs, nil
}

// IsStartable reports whether every recorded prerequisite of the task
// is completed.
func (s *Store) IsStartable(id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return false, fmt.Errorf("startable %s: %w", id, ErrNotFound)
	}

	for _, prereqID := range t.Prerequisites {
		if prereq, ok := s.tasks[prereqID]; ok && !prereq.Completed {
			return false, nil
		}
	}
	return true, nil
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	return cloneTask(t), true
}

// Roots returns all tasks without a parent, in insertion order.
func (s *Store) Roots() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var roots []Task
	for _, id := range s.order {
		if t := s.tasks[id]; t.ParentID == "" {
			roots = append(roots, cloneTask(t))
		}
	}
	return roots
}

// Children returns the direct children of a task in child-list order.
// An unknown id yields an empty slice.
func (s *Store) Children(id string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil
	}

	var children []Task
	for _, childID := range t.ChildIDs {
		if child, ok := s.tasks[childID]; ok {
			children = append(children, cloneTask(child))
		}
	}
	return children
}

// Tasks returns a snapshot of every task in insertion order.
func (s *Store) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, cloneTask(s.tasks[id]))
	}
	return tasks
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// endpoints resolves two task ids under an already-held lock.
func (s *Store) endpoints(aID, bID string) (*Task, *Task, error) {
	a, ok := s.tasks[aID]
	if !ok {
		return nil, nil, fmt.Errorf("task %s: %w", aID, ErrNotFound)
	}
	b, ok := s.tasks[bID]
	if !ok {
		return nil, nil, fmt.Errorf("task %s: %w", bID, ErrNotFound)
	}
	return a, b, nil
}

// remove deletes the given ids and strips every reference to them from
// the surviving tasks. Callers hold the write lock.
func (s *Store) remove(removed map[string]bool) {
	for id := range removed {
		delete(s.tasks, id)
	}

	kept := s.order[:0]
	for _, id := range s.order {
		if !removed[id] {
			kept = append(kept, id)
		}
	}
	s.order = kept

	for _, t := range s.tasks {
		t.ChildIDs = removeIDs(t.ChildIDs, removed)
		t.LinksTo = removeIDs(t.LinksTo, removed)
		t.LinkedFrom = removeIDs(t.LinkedFrom, removed)
		t.Prerequisites = removeIDs(t.Prerequisites, removed)
		if removed[t.ParentID] {
			t.ParentID = ""
		}
	}
}

func validateRequiredTime(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return &ValidationError{Field: "required time", Reason: "not a number"}
	}
	if hours < 0 {
		return &ValidationError{Field: "required time", Reason: "must not be negative"}
	}
	return nil
}

func cloneTask(t *Task) Task {
	c := *t
	c.ChildIDs = append([]string(nil), t.ChildIDs...)
	c.LinksTo = append([]string(nil), t.LinksTo...)
	c.LinkedFrom = append([]string(nil), t.LinkedFrom...)
	c.Prerequisites = append([]string(nil), t.Prerequisites...)
	return c
}

func appendID(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func removeIDs(ids []string, removed map[string]bool) []string {
	kept := ids[:0]
	for _, id := range ids {
		if !removed[id] {
			kept = append(kept, id)
		}
	}
	return kept
}
