// Package otl solves the order-to-line scheduling problem.
//
// Each order carries a list of alternative line assignments; the solver picks
// exactly one alternative per order and places the resulting jobs on their
// lines so that no line runs two orders at once and every priority order
// starts no later than any non-priority order. The objective is a weighted
// sum of makespan and total tardiness.
package otl

import (
	"errors"
	"time"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
)

// ErrNoSolution is returned when an order has no alternative, so no feasible
// schedule can be constructed. A deadline expiry does not produce it: the
// search always holds a seeded incumbent.
var ErrNoSolution = errors.New("otl: no feasible schedule found")

// Alternative is one admissible production option for an order: a fixed
// processing duration on a specific line with a due date. Priority is a
// property of the order; every alternative of an order carries the same bit.
type Alternative struct {
	// Duration is the processing time in hours
	Duration int
	// Line is the dense line index the alternative runs on
	Line int
	// Priority is 1 when the order must start before all non-priority orders
	Priority int
	// DueDate is the latest completion time before tardiness accrues
	DueDate int
}

// Order is a schedulable order: a dense task index plus its alternatives.
type Order struct {
	// ID is the dense order index assigned during canonicalization
	ID int
	// Alternatives is the non-empty list of admissible line assignments
	Alternatives []Alternative
}

// IsPriority reports whether the order carries the priority bit. The bit is
// read from the first alternative; all alternatives of an order agree.
func (o Order) IsPriority() bool {
	return len(o.Alternatives) > 0 && o.Alternatives[0].Priority == 1
}

// ScheduleEntry is one placed order in the solved schedule.
type ScheduleEntry struct {
	// Task is the dense order index
	Task int
	// Start and Finish bound the processing window; Finish-Start equals the
	// duration of the selected alternative
	Start  int
	Finish int
	// Line is the dense index of the line the order was placed on
	Line int
}

// Result is the outcome of one order-to-line solve.
type Result struct {
	// Schedule holds one entry per scheduled order, ordered by task index
	Schedule []ScheduleEntry
	// Makespan is the maximum finish time over all orders
	Makespan int
	// TotalTardiness is the summed tardiness over all orders
	TotalTardiness int
	// Cost is the achieved objective value
	Cost int
	// Optimal reports whether the search space was exhausted before the
	// deadline; false means Schedule is the best incumbent found in time
	Optimal bool
}

// Options tunes one solve.
type Options struct {
	// MakespanWeight and TardinessWeight weight the two objective terms.
	// Zero values fall back to the default weight.
	MakespanWeight  int
	TardinessWeight int
	// TimeLimit bounds the wall-clock search time. Zero falls back to the
	// default solver time limit.
	TimeLimit time.Duration
	// Logger receives solve progress and the solution summary. Nil uses the
	// package default logger.
	Logger *common.Logger
}

// normalized fills in defaults for zero option values
func (o Options) normalized() Options {
	if o.MakespanWeight == 0 {
		o.MakespanWeight = common.DefaultObjectiveWeight
	}
	if o.TardinessWeight == 0 {
		o.TardinessWeight = common.DefaultObjectiveWeight
	}
	if o.TimeLimit == 0 {
		o.TimeLimit = common.DefaultSolverTimeLimit
	}
	if o.Logger == nil {
		o.Logger = common.Default()
	}
	return o
}

// Horizon is the scheduling horizon: the summed duration of the longest
// alternative of every order. Any feasible schedule fits inside it.
func Horizon(orders []Order) int {
	horizon := 0
	for _, order := range orders {
		longest := 0
		for _, alt := range order.Alternatives {
			if alt.Duration > longest {
				longest = alt.Duration
			}
		}
		horizon += longest
	}
	return horizon
}
