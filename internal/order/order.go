// Package order provides the canonical task orderings used by every
// list view. All orderings are stable and return a new slice.
package order

import (
	"sort"

	"github.com/pablasso/dayplan/internal/plan"
)

// ByPriority sorts by importance (Must first), then by ideal deadline
// (earlier first) when importance is equal. A missing deadline sorts
// as the earliest possible deadline, so subtasks without one collapse
// to importance-only ordering.
func ByPriority(tasks []plan.Task) []plan.Task {
	sorted := clone(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Importance != sorted[j].Importance {
			return sorted[i].Importance < sorted[j].Importance
		}
		return sorted[i].IdealDeadline.Before(sorted[j].IdealDeadline)
	})
	return sorted
}

// ByDeadline sorts by ideal deadline, earliest first. Missing
// deadlines sort first.
func ByDeadline(tasks []plan.Task) []plan.Task {
	sorted := clone(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IdealDeadline.Before(sorted[j].IdealDeadline)
	})
	return sorted
}

// ByRequiredTimeAsc sorts by required time, smallest first.
func ByRequiredTimeAsc(tasks []plan.Task) []plan.Task {
	sorted := clone(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RequiredTime < sorted[j].RequiredTime
	})
	return sorted
}

// ByRequiredTimeDesc sorts by required time, largest first.
func ByRequiredTimeDesc(tasks []plan.Task) []plan.Task {
	sorted := clone(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RequiredTime > sorted[j].RequiredTime
	})
	return sorted
}

func clone(tasks []plan.Task) []plan.Task {
	return append([]plan.Task(nil), tasks...)
}
