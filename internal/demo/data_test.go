package demo

import (
	"testing"

	"github.com/pablasso/dayplan/internal/plan"
)

func TestSeed_PopulatesStore(t *testing.T) {
	s := plan.NewStore()

	if err := Seed(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Len() != 6 {
		t.Errorf("got %d tasks, want 6", s.Len())
	}
	if len(s.Roots()) != 4 {
		t.Errorf("got %d roots, want 4", len(s.Roots()))
	}
}

func TestSeed_CoversEveryImportanceLevel(t *testing.T) {
	s := plan.NewStore()
	Seed(s)

	seen := make(map[plan.Importance]bool)
	for _, task := range s.Tasks() {
		seen[task.Importance] = true
	}

	for _, level := range []plan.Importance{plan.Must, plan.High, plan.Medium, plan.Optional} {
		if !seen[level] {
			t.Errorf("no seeded task with importance %v", level)
		}
	}
}

func TestSeed_IncludesLinksAndWipeableTasks(t *testing.T) {
	s := plan.NewStore()
	Seed(s)

	if len(plan.WithLinks(s.Tasks())) == 0 {
		t.Error("seeded data should include linked tasks")
	}
	if !s.HasWipeable() {
		t.Error("seeded data should include non-Must tasks so a wipe-out has an effect")
	}
}
