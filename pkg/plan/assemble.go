package plan

import (
	"sort"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/otl"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/wla"
)

// AssembleSchedule re-expands a solved schedule into external identifiers.
func AssembleSchedule(schedule []otl.ScheduleEntry, c *Canonical) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(schedule))
	for _, entry := range schedule {
		rows = append(rows, ScheduleRow{
			Task:     c.orderName(entry.Task),
			Start:    entry.Start,
			Finish:   entry.Finish,
			Resource: c.lineName(entry.Line),
		})
	}
	return rows
}

// AssembleAllocation joins the worker allocation onto the expanded schedule
// rows and re-expands all dense indices. A row's workers are the union of
// workers assigned to its line over the row's own time span; when the
// allocation carries no per-interval detail (the coarse model), the line's
// whole-horizon worker set is used. Rows keep an empty list when the
// allocation found nothing for their line.
func AssembleAllocation(lineData []wla.Demand, alloc *wla.Result, c *Canonical) []AllocationRow {
	rows := make([]AllocationRow, 0, len(lineData))
	for _, row := range lineData {
		var workers []int
		if alloc != nil {
			if len(alloc.Assignments) > 0 {
				workers = workersDuring(alloc.Assignments, row.Line, row.Start, row.Finish)
			} else {
				workers = alloc.Workers[row.Line]
			}
		}
		names := make([]string, 0, len(workers))
		for _, w := range workers {
			names = append(names, c.workerName(w))
		}
		rows = append(rows, AllocationRow{
			Task:            c.orderName(row.Task),
			Start:           row.Start,
			Finish:          row.Finish,
			Resource:        c.lineName(row.Line),
			Geometry:        c.geometryName(row.Geometry),
			RequiredWorkers: row.Required,
			Workers:         names,
		})
	}
	return rows
}

// workersDuring collects the sorted distinct workers assigned to a line in
// any elementary interval overlapping [start, finish)
func workersDuring(assignments []wla.Assignment, line, start, finish int) []int {
	seen := make(map[int]struct{})
	var workers []int
	for _, a := range assignments {
		if a.Line != line || a.End <= start || a.Start >= finish {
			continue
		}
		if _, dup := seen[a.Worker]; dup {
			continue
		}
		seen[a.Worker] = struct{}{}
		workers = append(workers, a.Worker)
	}
	// assignments are produced in interval-then-worker order; re-sort by
	// worker index for a stable external representation
	sort.Ints(workers)
	return workers
}

func (c *Canonical) orderName(idx int) string {
	if idx >= 0 && idx < len(c.OrderNames) {
		return c.OrderNames[idx]
	}
	return ""
}

func (c *Canonical) lineName(idx int) string {
	if idx >= 0 && idx < len(c.LineNames) {
		return c.LineNames[idx]
	}
	return ""
}

func (c *Canonical) geometryName(idx int) string {
	if idx >= 0 && idx < len(c.GeometryNames) {
		return c.GeometryNames[idx]
	}
	return ""
}

func (c *Canonical) workerName(idx int) string {
	if idx >= 1 && idx < len(c.WorkerNames) {
		return c.WorkerNames[idx]
	}
	return ""
}
