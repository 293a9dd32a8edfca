// Package realism quantifies whether a set of tasks fits in the hours
// the user actually has.
package realism

import (
	"math"

	"github.com/pablasso/dayplan/internal/plan"
)

// Zone classifies a realism point.
type Zone int

const (
	// Safe means the plan fits comfortably (rp < 0.8).
	Safe Zone = iota
	// Risky means the plan is tight (0.8 <= rp < 1.0).
	Risky
	// Overload means the plan does not fit (rp >= 1.0).
	Overload
)

// String returns the display name of the zone.
func (z Zone) String() string {
	switch z {
	case Safe:
		return "safe"
	case Risky:
		return "risky"
	case Overload:
		return "overload"
	default:
		return "unknown"
	}
}

// Zone thresholds. Exactly 0.8 is Risky and exactly 1.0 is Overload.
const (
	riskyThreshold    = 0.8
	overloadThreshold = 1.0
)

// TotalRequiredTime sums the required time over the tasks. Tasks with
// a missing or invalid required time count as zero; the sum never
// fails.
func TotalRequiredTime(tasks []plan.Task) float64 {
	var total float64
	for _, t := range tasks {
		hours := t.RequiredTime
		if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
			continue
		}
		total += hours
	}
	return total
}

// Point returns the realism point: total required time divided by
// available hours. Non-positive available hours yield 0 rather than an
// error, which masks misconfiguration; callers must check
// availableHours > 0 before trusting a 0 as "safe".
func Point(tasks []plan.Task, availableHours float64) float64 {
	if availableHours <= 0 {
		return 0
	}
	return TotalRequiredTime(tasks) / availableHours
}

// Classify maps a realism point to its zone.
func Classify(rp float64) Zone {
	switch {
	case rp < riskyThreshold:
		return Safe
	case rp < overloadThreshold:
		return Risky
	default:
		return Overload
	}
}

// Summary aggregates the realism figures for one set of tasks.
type Summary struct {
	Point          float64
	TotalRequired  float64
	AvailableHours float64
	Zone           Zone
}

// Stats computes the full realism summary in one call.
func Stats(tasks []plan.Task, availableHours float64) Summary {
	rp := Point(tasks, availableHours)
	return Summary{
		Point:          rp,
		TotalRequired:  TotalRequiredTime(tasks),
		AvailableHours: availableHours,
		Zone:           Classify(rp),
	}
}
