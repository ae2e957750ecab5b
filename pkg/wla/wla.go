// Package wla solves the worker-to-line allocation problem.
//
// The input is the line schedule produced by the order-to-line stage,
// expanded to per-(line, geometry) staffing demand, plus the worker roster
// with availability windows and per-geometry affinity records. The horizon is
// partitioned into elementary intervals over which both the set of running
// jobs and the set of available workers are constant; within each interval
// every worker is either on exactly one staffed line or not present.
//
// Two models are provided: the fine-grained interval model (the default) and
// a coarse whole-horizon assignment model kept as a configurable fallback.
package wla

import (
	"errors"
	"time"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
)

// Model names reported in results so callers can tell which solver produced
// an allocation.
const (
	ModelInterval = "interval"
	ModelGlobal   = "global"
)

// ErrNoSolution is returned by the coarse model when its hard staffing
// bounds cannot be met.
var ErrNoSolution = errors.New("wla: no feasible allocation found")

// Demand is one row of the expanded schedule: a geometry running on a line
// over a time window together with its staffing requirement.
type Demand struct {
	// Task is the dense order index the row was expanded from
	Task int
	// Start and Finish bound the window in hours
	Start  int
	Finish int
	// Line is the dense line index
	Line int
	// Geometry is the dense geometry index keying affinity lookups
	Geometry int
	// Required is the minimum worker count while the geometry runs
	Required int
}

// Availability lists the time windows one worker can be planned in. A worker
// counts as available over an interval only when some single window fully
// contains it.
type Availability struct {
	// Worker is the dense worker index (1-based)
	Worker int
	// Windows holds [start, end] hour pairs
	Windows [][2]int
}

// Assignment records that a worker ran one line during one elementary
// interval.
type Assignment struct {
	Start  int
	End    int
	Worker int
	Line   int
}

// Result is the outcome of one allocation solve.
type Result struct {
	// Workers maps each line with at least one assignment to the sorted set
	// of workers that ran it at any point of the horizon
	Workers map[int][]int
	// Assignments holds the fine-grained per-interval decisions; empty for
	// the coarse model
	Assignments []Assignment
	// Objective totals, scaled by 100 per affinity point and by interval
	// length. The coarse model fills only Objective, scaled by 100 per
	// affinity point without an interval-length factor.
	Objective       int
	TotalPreference int
	TotalExperience int
	TotalResilience int
	TotalStaffing   int
	// MedicalRelaxed reports that the medical hard constraint was lifted to
	// obtain this allocation
	MedicalRelaxed bool
	// Model names the solver variant that produced the result
	Model string
}

// Options tunes one allocation solve.
type Options struct {
	// Objective weights; zero values fall back to the default weight
	PreferenceWeight int
	ExperienceWeight int
	ResilienceWeight int
	StaffingWeight   int
	// RelaxMedical lifts the medical-fitness hard constraint. Callers use it
	// for the explicit second phase after a strict solve came back empty.
	RelaxMedical bool
	// TimeLimit bounds the coarse model's search; the interval model does
	// not search and ignores it. Zero falls back to the default limit.
	TimeLimit time.Duration
	// Logger receives solve progress and the solution summary. Nil uses the
	// package default logger.
	Logger *common.Logger
}

// normalized fills in defaults for zero option values
func (o Options) normalized() Options {
	if o.PreferenceWeight == 0 {
		o.PreferenceWeight = common.DefaultObjectiveWeight
	}
	if o.ExperienceWeight == 0 {
		o.ExperienceWeight = common.DefaultObjectiveWeight
	}
	if o.ResilienceWeight == 0 {
		o.ResilienceWeight = common.DefaultObjectiveWeight
	}
	if o.StaffingWeight == 0 {
		o.StaffingWeight = common.DefaultObjectiveWeight
	}
	if o.TimeLimit == 0 {
		o.TimeLimit = common.DefaultSolverTimeLimit
	}
	if o.Logger == nil {
		o.Logger = common.Default()
	}
	return o
}
