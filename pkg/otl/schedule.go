package otl

import "sort"

// lineJob is one order placed on a line after alternative selection
type lineJob struct {
	order    int // position in the orders slice
	id       int // dense order index
	duration int
	due      int
	priority bool
}

// sequences holds, per line index, the processing order of its jobs. Each
// line's slice keeps priority jobs in a prefix and non-priority jobs in the
// suffix; the placement rule relies on that split.
type sequences map[int][]lineJob

// buildSequences groups the selected alternatives by line and orders each
// line by priority first, then earliest due date, with the order index as the
// final tie-breaker to keep the construction deterministic.
func buildSequences(orders []Order, selection []int) sequences {
	seqs := make(sequences)
	for pos, order := range orders {
		alt := order.Alternatives[selection[pos]]
		seqs[alt.Line] = append(seqs[alt.Line], lineJob{
			order:    pos,
			id:       order.ID,
			duration: alt.Duration,
			due:      alt.DueDate,
			priority: order.IsPriority(),
		})
	}
	for line := range seqs {
		jobs := seqs[line]
		sort.SliceStable(jobs, func(i, j int) bool {
			if jobs[i].priority != jobs[j].priority {
				return jobs[i].priority
			}
			if jobs[i].due != jobs[j].due {
				return jobs[i].due < jobs[j].due
			}
			return jobs[i].id < jobs[j].id
		})
	}
	return seqs
}

// place turns per-line sequences into start/finish times. Priority jobs run
// back to back from hour zero on their line; non-priority jobs follow, and
// the first one on each line is additionally held back until every priority
// order in the whole plan has started.
func place(seqs sequences, makespanWeight, tardinessWeight int) ([]ScheduleEntry, int, int, int) {
	maxPriorityStart := 0
	lineEnd := make(map[int]int, len(seqs))
	starts := make(map[int]map[int]int, len(seqs)) // line -> job position -> start

	for line, jobs := range seqs {
		t := 0
		starts[line] = make(map[int]int, len(jobs))
		for pos, job := range jobs {
			if !job.priority {
				continue
			}
			starts[line][pos] = t
			if t > maxPriorityStart {
				maxPriorityStart = t
			}
			t += job.duration
		}
		lineEnd[line] = t
	}

	var entries []ScheduleEntry
	makespan := 0
	tardiness := 0
	for line, jobs := range seqs {
		t := lineEnd[line]
		for pos, job := range jobs {
			start := 0
			if job.priority {
				start = starts[line][pos]
			} else {
				if t < maxPriorityStart {
					t = maxPriorityStart
				}
				start = t
				t = start + job.duration
			}
			finish := start + job.duration
			entries = append(entries, ScheduleEntry{
				Task:   job.id,
				Start:  start,
				Finish: finish,
				Line:   line,
			})
			if finish > makespan {
				makespan = finish
			}
			if late := finish - job.due; late > 0 {
				tardiness += late
			}
		}
	}

	cost := makespanWeight*makespan + tardinessWeight*tardiness
	return entries, makespan, tardiness, cost
}

// evaluate builds the schedule for one alternative selection and then runs a
// deterministic adjacent-swap improvement pass within each line's priority
// and non-priority segments until no swap lowers the cost.
func evaluate(orders []Order, selection []int, makespanWeight, tardinessWeight int) ([]ScheduleEntry, int, int, int) {
	seqs := buildSequences(orders, selection)
	entries, makespan, tardiness, cost := place(seqs, makespanWeight, tardinessWeight)

	lines := make([]int, 0, len(seqs))
	for line := range seqs {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	improved := true
	for improved {
		improved = false
		for _, line := range lines {
			jobs := seqs[line]
			for i := 0; i+1 < len(jobs); i++ {
				// swapping across the priority/non-priority split would
				// break the segment invariant place relies on
				if jobs[i].priority != jobs[i+1].priority {
					continue
				}
				jobs[i], jobs[i+1] = jobs[i+1], jobs[i]
				candEntries, candMakespan, candTardiness, candCost := place(seqs, makespanWeight, tardinessWeight)
				if candCost < cost {
					entries, makespan, tardiness, cost = candEntries, candMakespan, candTardiness, candCost
					improved = true
				} else {
					jobs[i], jobs[i+1] = jobs[i+1], jobs[i]
				}
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Task < entries[j].Task })
	return entries, makespan, tardiness, cost
}
