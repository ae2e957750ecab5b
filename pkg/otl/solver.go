package otl

import (
	"context"
	"sort"
	"time"
)

// deadlineCheckInterval is how many search nodes are expanded between
// wall-clock checks
const deadlineCheckInterval = 1024

// searchState carries the branch-and-bound bookkeeping for one solve
type searchState struct {
	orders    []Order
	perm      []int // branching order over the orders slice
	selection []int
	lineLoad  map[int]int
	totalLoad int
	minLeft   []int // minLeft[i]: summed minimum durations of perm[i:]
	lineCount int

	makespanWeight  int
	tardinessWeight int

	bestCost      int
	bestEntries   []ScheduleEntry
	bestMakespan  int
	bestTardiness int

	deadline time.Time
	ctx      context.Context
	nodes    int
	aborted  bool
}

// Solve picks one alternative per order and schedules the orders on their
// lines, minimizing makespanWeight*makespan + tardinessWeight*tardiness.
// The search runs until exhaustion or until the context deadline or the
// configured time limit expires, whichever comes first; on expiry the best
// incumbent found so far is returned with Optimal=false.
//
// An empty order list yields an empty schedule. ErrNoSolution is returned
// only when no feasible schedule could be constructed at all.
func Solve(ctx context.Context, orders []Order, opts Options) (*Result, error) {
	opts = opts.normalized()
	log := opts.Logger

	if len(orders) == 0 {
		return &Result{Schedule: []ScheduleEntry{}, Optimal: true}, nil
	}
	for _, order := range orders {
		if len(order.Alternatives) == 0 {
			return nil, ErrNoSolution
		}
	}

	horizon := Horizon(orders)
	log.Debug("order-to-line: %d orders, horizon = %d", len(orders), horizon)
	log.Info("cost function: cost = %d * makespan + %d * total_tardiness",
		opts.MakespanWeight, opts.TardinessWeight)

	deadline := time.Now().Add(opts.TimeLimit)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	st := &searchState{
		orders:          orders,
		selection:       make([]int, len(orders)),
		makespanWeight:  opts.MakespanWeight,
		tardinessWeight: opts.TardinessWeight,
		lineLoad:        make(map[int]int),
		deadline:        deadline,
		ctx:             ctx,
	}

	// branch on the most constrained orders first
	st.perm = make([]int, len(orders))
	for i := range st.perm {
		st.perm[i] = i
	}
	sort.SliceStable(st.perm, func(a, b int) bool {
		na, nb := len(orders[st.perm[a]].Alternatives), len(orders[st.perm[b]].Alternatives)
		if na != nb {
			return na < nb
		}
		return st.perm[a] < st.perm[b]
	})

	lineSet := make(map[int]struct{})
	for _, order := range orders {
		for _, alt := range order.Alternatives {
			lineSet[alt.Line] = struct{}{}
		}
	}
	st.lineCount = len(lineSet)

	st.minLeft = make([]int, len(orders)+1)
	for i := len(orders) - 1; i >= 0; i-- {
		shortest := orders[st.perm[i]].Alternatives[0].Duration
		for _, alt := range orders[st.perm[i]].Alternatives {
			if alt.Duration < shortest {
				shortest = alt.Duration
			}
		}
		st.minLeft[i] = st.minLeft[i+1] + shortest
	}

	// seed the incumbent with the shortest-duration alternative of every
	// order so a feasible schedule exists even if the deadline cuts in early
	for pos, order := range orders {
		shortest := 0
		for a := range order.Alternatives {
			if order.Alternatives[a].Duration < order.Alternatives[shortest].Duration {
				shortest = a
			}
		}
		st.selection[pos] = shortest
	}
	st.bestEntries, st.bestMakespan, st.bestTardiness, st.bestCost =
		evaluate(orders, st.selection, opts.MakespanWeight, opts.TardinessWeight)
	log.Debug("initial incumbent: cost = %d", st.bestCost)

	st.branch(0)

	optimal := !st.aborted
	log.Info("solution found: true, optimal: %v", optimal)
	log.Info("makespan: %d (time to complete all orders)", st.bestMakespan)
	log.Info("total tardiness: %d (sum of all tardiness values of the orders)", st.bestTardiness)
	log.Info("cost: %d (measures the quality of the solution)", st.bestCost)

	return &Result{
		Schedule:       st.bestEntries,
		Makespan:       st.bestMakespan,
		TotalTardiness: st.bestTardiness,
		Cost:           st.bestCost,
		Optimal:        optimal,
	}, nil
}

// branch extends the partial selection at depth and recurses
func (st *searchState) branch(depth int) {
	if st.aborted {
		return
	}
	st.nodes++
	if st.nodes%deadlineCheckInterval == 0 {
		if time.Now().After(st.deadline) || st.ctx.Err() != nil {
			st.aborted = true
			return
		}
	}

	if depth == len(st.perm) {
		entries, makespan, tardiness, cost := evaluate(st.orders, st.selection, st.makespanWeight, st.tardinessWeight)
		if cost < st.bestCost {
			st.bestEntries = entries
			st.bestMakespan = makespan
			st.bestTardiness = tardiness
			st.bestCost = cost
		}
		return
	}

	if st.lowerBound(depth) >= st.bestCost {
		return
	}

	pos := st.perm[depth]
	for a, alt := range st.orders[pos].Alternatives {
		st.selection[pos] = a
		st.lineLoad[alt.Line] += alt.Duration
		st.totalLoad += alt.Duration

		st.branch(depth + 1)

		st.lineLoad[alt.Line] -= alt.Duration
		st.totalLoad -= alt.Duration
		if st.aborted {
			return
		}
	}
}

// lowerBound is an optimistic cost estimate for the current partial
// selection: the makespan can be no smaller than the heaviest committed line
// load, nor than the perfectly balanced spread of all work over all lines.
// Tardiness is bounded below by zero.
func (st *searchState) lowerBound(depth int) int {
	maxLoad := 0
	for _, load := range st.lineLoad {
		if load > maxLoad {
			maxLoad = load
		}
	}
	if st.lineCount > 0 {
		total := st.totalLoad + st.minLeft[depth]
		balanced := (total + st.lineCount - 1) / st.lineCount
		if balanced > maxLoad {
			maxLoad = balanced
		}
	}
	return st.makespanWeight * maxLoad
}
