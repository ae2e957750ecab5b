package wla

import (
	"context"
	"sort"
	"time"
)

// globalCheckInterval is how many search nodes are expanded between
// wall-clock checks
const globalCheckInterval = 4096

// lineProfile aggregates everything the coarse model needs to know about one
// line over the whole horizon
type lineProfile struct {
	line       int
	minWorkers int // the largest single staffing requirement on the line
	maxWorkers int // the summed staffing requirements on the line
	geometries []int
	windows    [][2]int
}

// globalSearch carries the branch-and-bound bookkeeping for one coarse solve
type globalSearch struct {
	profiles []lineProfile
	workers  int
	eligible [][]int // per worker (1-based), indices into profiles
	scores   [][]int // per worker (1-based), score aligned with eligible
	bestNext []int   // bestNext[w]: optimistic remaining score from worker w on

	choice     []int // per worker: index into eligible, -1 = unassigned
	counts     []int // per profile: workers currently assigned
	score      int
	best       int
	bestChoice []int
	found      bool

	deadline time.Time
	ctx      context.Context
	nodes    int
	aborted  bool
}

// SolveGlobal runs the coarse whole-horizon allocation model: every worker
// is assigned to at most one line for the entire horizon, each line's head
// count must lie between its largest single requirement and its summed
// requirement, and availability and medical fitness gate eligibility. The
// objective maximizes the summed weighted affinity of the chosen
// assignments.
//
// The model is kept as a configurable fallback to the interval model; results
// are tagged with ModelGlobal so callers can tell the two apart.
func SolveGlobal(ctx context.Context, demands []Demand, affinity *AffinityTable, availabilities []Availability, opts Options) (*Result, error) {
	opts = opts.normalized()
	log := opts.Logger

	result := &Result{
		Workers:        make(map[int][]int),
		Assignments:    []Assignment{},
		MedicalRelaxed: opts.RelaxMedical,
		Model:          ModelGlobal,
	}
	if len(demands) == 0 {
		return result, nil
	}

	profiles := buildProfiles(demands)
	availByWorker := make(map[int]Availability, len(availabilities))
	for _, a := range availabilities {
		merged := availByWorker[a.Worker]
		merged.Worker = a.Worker
		merged.Windows = append(merged.Windows, a.Windows...)
		availByWorker[a.Worker] = merged
	}

	workers := affinity.Workers()
	gs := &globalSearch{
		profiles: profiles,
		workers:  workers,
		eligible: make([][]int, workers+1),
		scores:   make([][]int, workers+1),
		choice:   make([]int, workers+1),
		counts:   make([]int, len(profiles)),
		best:     -1,
		deadline: time.Now().Add(opts.TimeLimit),
		ctx:      ctx,
	}
	if d, ok := ctx.Deadline(); ok && d.Before(gs.deadline) {
		gs.deadline = d
	}

	for w := 1; w <= workers; w++ {
		gs.choice[w] = -1
		avail, hasAvail := availByWorker[w]
		for p, profile := range profiles {
			if !hasAvail || !overlapsAny(avail, profile.windows) {
				continue
			}
			if !opts.RelaxMedical && !medicallyFit(affinity, w, profile.geometries) {
				continue
			}
			score := 0
			for _, g := range profile.geometries {
				rec := affinity.At(w, g)
				score += opts.PreferenceWeight*scale(rec.Preference) +
					opts.ExperienceWeight*scale(rec.Experience) +
					opts.ResilienceWeight*scale(rec.Resilience)
			}
			gs.eligible[w] = append(gs.eligible[w], p)
			gs.scores[w] = append(gs.scores[w], score)
		}
	}

	gs.bestNext = make([]int, workers+2)
	for w := workers; w >= 1; w-- {
		top := 0
		for _, s := range gs.scores[w] {
			if s > top {
				top = s
			}
		}
		gs.bestNext[w] = gs.bestNext[w+1] + top
	}

	gs.assign(1)

	if !gs.found {
		log.Info("no feasible coarse allocation: staffing bounds cannot be met")
		return result, ErrNoSolution
	}

	for w := 1; w <= workers; w++ {
		if gs.bestChoice[w] < 0 {
			continue
		}
		line := profiles[gs.eligible[w][gs.bestChoice[w]]].line
		result.Workers[line] = append(result.Workers[line], w)
	}
	for line := range result.Workers {
		sort.Ints(result.Workers[line])
	}
	result.Objective = gs.best

	log.Info("coarse allocation objective: %d (optimal: %v)", gs.best, !gs.aborted)
	return result, nil
}

// buildProfiles aggregates demand rows into one profile per line
func buildProfiles(demands []Demand) []lineProfile {
	byLine := make(map[int]*lineProfile)
	for _, d := range demands {
		profile, ok := byLine[d.Line]
		if !ok {
			profile = &lineProfile{line: d.Line}
			byLine[d.Line] = profile
		}
		if d.Required > profile.minWorkers {
			profile.minWorkers = d.Required
		}
		profile.maxWorkers += d.Required
		if !containsInt(profile.geometries, d.Geometry) {
			profile.geometries = append(profile.geometries, d.Geometry)
		}
		profile.windows = append(profile.windows, [2]int{d.Start, d.Finish})
	}

	lines := make([]int, 0, len(byLine))
	for line := range byLine {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	profiles := make([]lineProfile, 0, len(lines))
	for _, line := range lines {
		profiles = append(profiles, *byLine[line])
	}
	return profiles
}

// overlapsAny reports whether any availability window overlaps any task window
func overlapsAny(a Availability, windows [][2]int) bool {
	for _, aw := range a.Windows {
		for _, tw := range windows {
			if aw[0] < tw[1] && tw[0] < aw[1] {
				return true
			}
		}
	}
	return false
}

// medicallyFit reports whether the worker holds a medical clearance for
// every geometry that runs on the line
func medicallyFit(affinity *AffinityTable, worker int, geometries []int) bool {
	for _, g := range geometries {
		rec := affinity.At(worker, g)
		if !rec.Known || !rec.MedicalOK {
			return false
		}
	}
	return true
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// assign chooses a line (or none) for worker w and recurses
func (gs *globalSearch) assign(w int) {
	if gs.aborted {
		return
	}
	gs.nodes++
	if gs.nodes%globalCheckInterval == 0 {
		if time.Now().After(gs.deadline) || gs.ctx.Err() != nil {
			gs.aborted = true
			return
		}
	}

	if w > gs.workers {
		for p, profile := range gs.profiles {
			if gs.counts[p] < profile.minWorkers {
				return
			}
		}
		if gs.score > gs.best {
			gs.best = gs.score
			gs.bestChoice = append([]int(nil), gs.choice...)
			gs.found = true
		}
		return
	}

	// optimistic bound: every remaining worker lands its top-scoring line
	if gs.found && gs.score+gs.bestNext[w] <= gs.best {
		return
	}

	// deficit that the remaining workers (this one included) must still cover
	deficit := 0
	for p, profile := range gs.profiles {
		if gs.counts[p] < profile.minWorkers {
			deficit += profile.minWorkers - gs.counts[p]
		}
	}
	if deficit > gs.workers-w+1 {
		return
	}

	for c, p := range gs.eligible[w] {
		if gs.counts[p] >= gs.profiles[p].maxWorkers {
			continue
		}
		gs.choice[w] = c
		gs.counts[p]++
		gs.score += gs.scores[w][c]

		gs.assign(w + 1)

		gs.score -= gs.scores[w][c]
		gs.counts[p]--
		gs.choice[w] = -1
		if gs.aborted {
			return
		}
	}

	gs.choice[w] = -1
	gs.assign(w + 1)
}
