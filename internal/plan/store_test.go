package plan

import (
	"errors"
	"testing"
	"time"
)

func mustAdd(t *testing.T, s *Store, d Draft) Task {
	t.Helper()
	task, err := s.Add(d)
	if err != nil {
		t.Fatalf("Add(%+v) failed: %v", d, err)
	}
	return task
}

func TestAdd_AssignsIDAndStores(t *testing.T) {
	s := NewStore()

	task := mustAdd(t, s, Draft{Title: "Write report", RequiredTime: 2, Importance: High})

	if task.ID == "" {
		t.Error("expected a non-empty id")
	}
	if task.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if s.Len() != 1 {
		t.Errorf("expected store length 1, got %d", s.Len())
	}

	got, ok := s.Get(task.ID)
	if !ok {
		t.Fatal("expected task to be retrievable")
	}
	if got.Title != "Write report" {
		t.Errorf("got title %q, want %q", got.Title, "Write report")
	}
}

func TestAdd_WiresParentChild(t *testing.T) {
	s := NewStore()
	parent := mustAdd(t, s, Draft{Title: "Parent", Importance: Must})

	child := mustAdd(t, s, Draft{Title: "Child", Importance: Medium, ParentID: parent.ID})

	gotParent, _ := s.Get(parent.ID)
	if len(gotParent.ChildIDs) != 1 || gotParent.ChildIDs[0] != child.ID {
		t.Errorf("parent ChildIDs = %v, want [%s]", gotParent.ChildIDs, child.ID)
	}
	if child.ParentID != parent.ID {
		t.Errorf("child ParentID = %q, want %q", child.ParentID, parent.ID)
	}
}

func TestAdd_UnknownParent(t *testing.T) {
	s := NewStore()

	_, err := s.Add(Draft{Title: "Orphan", Importance: Medium, ParentID: "missing"})

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("store should be unchanged, got %d tasks", s.Len())
	}
}

func TestAdd_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		draft Draft
	}{
		{name: "negative required time", draft: Draft{Title: "Bad", RequiredTime: -1, Importance: Medium}},
		{name: "importance zero", draft: Draft{Title: "Bad", Importance: 0}},
		{name: "importance out of range", draft: Draft{Title: "Bad", Importance: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			_, err := s.Add(tc.draft)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if s.Len() != 0 {
				t.Errorf("store should be unchanged, got %d tasks", s.Len())
			}
		})
	}
}

func TestUpdate_MergesFields(t *testing.T) {
	s := NewStore()
	task := mustAdd(t, s, Draft{Title: "Old", RequiredTime: 1, Importance: Medium})

	newTitle := "New"
	newHours := 3.5
	deadline := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	importance := Must
	err := s.Update(task.ID, Patch{
		Title:         &newTitle,
		RequiredTime:  &newHours,
		IdealDeadline: &deadline,
		Importance:    &importance,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := s.Get(task.ID)
	if got.Title != "New" {
		t.Errorf("got title %q, want %q", got.Title, "New")
	}
	if got.RequiredTime != 3.5 {
		t.Errorf("got required time %v, want 3.5", got.RequiredTime)
	}
	if !got.IdealDeadline.Equal(deadline) {
		t.Errorf("got deadline %v, want %v", got.IdealDeadline, deadline)
	}
	if got.Importance != Must {
		t.Errorf("got importance %v, want %v", got.Importance, Must)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	s := NewStore()

	err := s.Update("missing", Patch{})

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_InvalidPatchLeavesTaskUnchanged(t *testing.T) {
	s := NewStore()
	task := mustAdd(t, s, Draft{Title: "Keep", RequiredTime: 2, Importance: High})

	newTitle := "Changed"
	badHours := -4.0
	err := s.Update(task.ID, Patch{Title: &newTitle, RequiredTime: &badHours})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	got, _ := s.Get(task.ID)
	if got.Title != "Keep" {
		t.Errorf("title should be unchanged, got %q", got.Title)
	}
	if got.RequiredTime != 2 {
		t.Errorf("required time should be unchanged, got %v", got.RequiredTime)
	}
}

func TestToggleCompletion_CascadesDown(t *testing.T) {
	s := NewStore()
	root := mustAdd(t, s, Draft{Title: "Root", Importance: Must})
	child := mustAdd(t, s, Draft{Title: "Child", Importance: Medium, ParentID: root.ID})
	grandchild := mustAdd(t, s, Draft{Title: "Grandchild", Importance: Optional, ParentID: child.ID})

	if err := s.ToggleCompletion(root.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotRoot, _ := s.Get(root.ID)
	gotChild, _ := s.Get(child.ID)
	gotGrandchild, _ := s.Get(grandchild.ID)

	for name, task := range map[string]Task{"root": gotRoot, "child": gotChild, "grandchild": gotGrandchild} {
		if !task.Completed {
			t.Errorf("%s should be completed", name)
		}
	}
	if !gotChild.CompletedAt.Equal(gotRoot.CompletedAt) || !gotGrandchild.CompletedAt.Equal(gotRoot.CompletedAt) {
		t.Error("all descendants should share the root's completion timestamp")
	}
}

func TestToggleCompletion_UncompleteDoesNotCascade(t *testing.T) {
	s := NewStore()
	root := mustAdd(t, s, Draft{Title: "Root", Importance: Must})
	child := mustAdd(t, s, Draft{Title: "Child", Importance: Medium, ParentID: root.ID})

	s.ToggleCompletion(root.ID)
	if err := s.ToggleCompletion(root.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotRoot, _ := s.Get(root.ID)
	gotChild, _ := s.Get(child.ID)

	if gotRoot.Completed {
		t.Error("root should be incomplete again")
	}
	if !gotRoot.CompletedAt.IsZero() {
		t.Error("root CompletedAt should be cleared")
	}
	if !gotChild.Completed {
		t.Error("child should stay completed")
	}
}

func TestToggleCompletion_NotFound(t *testing.T) {
	s := NewStore()

	err := s.ToggleCompletion("missing")

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_CascadesAndStripsReferences(t *testing.T) {
	s := NewStore()
	root := mustAdd(t, s, Draft{Title: "Root", Importance: Must})
	child := mustAdd(t, s, Draft{Title: "Child", Importance: Medium, ParentID: root.ID})
	other := mustAdd(t, s, Draft{Title: "Other", Importance: High})

	s.Link(other.ID, child.ID)
	s.Link(root.ID, other.ID)
	s.AddDependency(other.ID, child.ID)

	if err := s.Delete(root.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.Get(root.ID); ok {
		t.Error("root should be deleted")
	}
	if _, ok := s.Get(child.ID); ok {
		t.Error("descendant should be deleted")
	}

	gotOther, _ := s.Get(other.ID)
	if len(gotOther.LinksTo) != 0 {
		t.Errorf("survivor LinksTo should be stripped, got %v", gotOther.LinksTo)
	}
	if len(gotOther.LinkedFrom) != 0 {
		t.Errorf("survivor LinkedFrom should be stripped, got %v", gotOther.LinkedFrom)
	}
	if len(gotOther.Prerequisites) != 0 {
		t.Errorf("survivor Prerequisites should be stripped, got %v", gotOther.Prerequisites)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 surviving task, got %d", s.Len())
	}
}

func TestDelete_DetachesFromParent(t *testing.T) {
	s := NewStore()
	parent := mustAdd(t, s, Draft{Title: "Parent", Importance: Must})
	child := mustAdd(t, s, Draft{Title: "Child", Importance: Medium, ParentID: parent.ID})

	s.Delete(child.ID)

	gotParent, _ := s.Get(parent.ID)
	if len(gotParent.ChildIDs) != 0 {
		t.Errorf("parent ChildIDs should be empty, got %v", gotParent.ChildIDs)
	}
}

func TestDelete_AbsentIDIsNoop(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, Draft{Title: "Stay", Importance: Must})

	if err := s.Delete("missing"); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 task, got %d", s.Len())
	}
}

func TestLink_BidirectionalConsistency(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, Draft{Title: "A", Importance: Must})
	b := mustAdd(t, s, Draft{Title: "B", Importance: High})

	if err := s.Link(a.ID, b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotA, _ := s.Get(a.ID)
	gotB, _ := s.Get(b.ID)
	if len(gotA.LinksTo) != 1 || gotA.LinksTo[0] != b.ID {
		t.Errorf("A.LinksTo = %v, want [%s]", gotA.LinksTo, b.ID)
	}
	if len(gotB.LinkedFrom) != 1 || gotB.LinkedFrom[0] != a.ID {
		t.Errorf("B.LinkedFrom = %v, want [%s]", gotB.LinkedFrom, a.ID)
	}
}

func TestLink_Idempotent(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, Draft{Title: "A", Importance: Must})
	b := mustAdd(t, s, Draft{Title: "B", Importance: High})

	s.Link(a.ID, b.ID)
	s.Link(a.ID, b.ID)

	gotA, _ := s.Get(a.ID)
	if len(gotA.LinksTo) != 1 {
		t.Errorf("expected a single link, got %v", gotA.LinksTo)
	}
}

func TestLink_SelfLinkRejected(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, Draft{Title: "A", Importance: Must})

	err := s.Link(a.ID, a.ID)

	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}

	gotA, _ := s.Get(a.ID)
	if len(gotA.LinksTo) != 0 || len(gotA.LinkedFrom) != 0 {
		t.Errorf("links should be unchanged, got linksTo=%v linkedFrom=%v", gotA.LinksTo, gotA.LinkedFrom)
	}
}

func TestLink_UnknownEndpoint(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, Draft{Title: "A", Importance: Must})

	if err := s.Link(a.ID, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.Link("missing", a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUnlink_RemovesBothSides(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, Draft{Title: "A", Importance: Must})
	b := mustAdd(t, s, Draft{Title: "B", Importance: High})

	s.Link(a.ID, b.ID)
	if err := s.Unlink(a.ID, b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotA, _ := s.Get(a.ID)
	gotB, _ := s.Get(b.ID)
	if len(gotA.LinksTo) != 0 {
		t.Errorf("A.LinksTo should be empty, got %v", gotA.LinksTo)
	}
	if len(gotB.LinkedFrom) != 0 {
		t.Errorf("B.LinkedFrom should be empty, got %v", gotB.LinkedFrom)
	}
}

func TestUnlink_AbsentLinkIsNoop(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, Draft{Title: "A", Importance: Must})
	b := mustAdd(t, s, Draft{Title: "B", Importance: High})

	if err := s.Unlink(a.ID, b.ID); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestAddDependency_RecordsEdge(t *testing.T) {
	s := NewStore()
	task := mustAdd(t, s, Draft{Title: "Task", Importance: Must})
	prereq := mustAdd(t, s, Draft{Title: "Prereq", Importance: Optional})

	if err := s.AddDependency(task.ID, prereq.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prereqs, err := s.Prerequisites(task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prereqs) != 1 || prereqs[0].ID != prereq.ID {
		t.Errorf("expected [%s], got %v", prereq.ID, prereqs)
	}
}

func TestAddDependency_SelfRejected(t *testing.T) {
	s := NewStore()
	task := mustAdd(t, s, Draft{Title: "Task", Importance: Must})

	err := s.AddDependency(task.ID, task.ID)

	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestIsStartable(t *testing.T) {
	s := NewStore()
	task := mustAdd(t, s, Draft{Title: "Task", Importance: Must})
	prereq := mustAdd(t, s, Draft{Title: "Prereq", Importance: Optional})
	s.AddDependency(task.ID, prereq.ID)

	startable, err := s.IsStartable(task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if startable {
		t.Error("task with an incomplete prerequisite should not be startable")
	}

	s.ToggleCompletion(prereq.ID)

	startable, _ = s.IsStartable(task.ID)
	if !startable {
		t.Error("task should be startable once the prerequisite is completed")
	}
}

func TestRoots_ExcludesSubtasks(t *testing.T) {
	s := NewStore()
	root := mustAdd(t, s, Draft{Title: "Root", Importance: Must})
	mustAdd(t, s, Draft{Title: "Child", Importance: Medium, ParentID: root.ID})
	other := mustAdd(t, s, Draft{Title: "Other", Importance: High})

	roots := s.Roots()

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].ID != root.ID || roots[1].ID != other.ID {
		t.Errorf("roots out of order: %v, %v", roots[0].Title, roots[1].Title)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewStore()
	root := mustAdd(t, s, Draft{Title: "Root", Importance: Must})
	mustAdd(t, s, Draft{Title: "Child", Importance: Medium, ParentID: root.ID})

	got, _ := s.Get(root.ID)
	got.ChildIDs[0] = "tampered"

	fresh, _ := s.Get(root.ID)
	if fresh.ChildIDs[0] == "tampered" {
		t.Error("mutating a returned task should not affect the store")
	}
}
