// Package demo seeds a sample day so the planner can be explored
// without typing tasks in first.
package demo

import (
	"time"

	"github.com/pablasso/dayplan/internal/plan"
)

// Seed fills the store with a realistic mix of root tasks, subtasks,
// links and one dependency across all four importance levels.
func Seed(s *plan.Store) error {
	today := time.Now().Truncate(24 * time.Hour)

	report, err := s.Add(plan.Draft{
		Title:         "Ship quarterly report",
		RequiredTime:  3,
		IdealDeadline: today,
		Importance:    plan.Must,
	})
	if err != nil {
		return err
	}

	numbers, err := s.Add(plan.Draft{
		Title:        "Collect revenue numbers",
		RequiredTime: 1,
		Importance:   plan.Must,
		ParentID:     report.ID,
	})
	if err != nil {
		return err
	}

	charts, err := s.Add(plan.Draft{
		Title:        "Redo the charts",
		RequiredTime: 1.5,
		Importance:   plan.High,
		ParentID:     report.ID,
	})
	if err != nil {
		return err
	}

	review, err := s.Add(plan.Draft{
		Title:         "Review hiring pipeline",
		RequiredTime:  2,
		IdealDeadline: today.AddDate(0, 0, 1),
		Importance:    plan.High,
	})
	if err != nil {
		return err
	}

	inbox, err := s.Add(plan.Draft{
		Title:        "Clear inbox",
		RequiredTime: 1,
		Importance:   plan.Medium,
	})
	if err != nil {
		return err
	}

	if _, err := s.Add(plan.Draft{
		Title:        "Read that productivity book",
		RequiredTime: 2,
		Importance:   plan.Optional,
	}); err != nil {
		return err
	}

	// The report references the pipeline review and the charts cannot
	// start before the numbers are in.
	if err := s.Link(report.ID, review.ID); err != nil {
		return err
	}
	if err := s.Link(inbox.ID, review.ID); err != nil {
		return err
	}
	if err := s.AddDependency(charts.ID, numbers.ID); err != nil {
		return err
	}

	return nil
}
