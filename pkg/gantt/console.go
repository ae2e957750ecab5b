// Package gantt renders schedules as plain-text Gantt charts for console
// output. One row is drawn per resource; each task occupies its [start,
// finish) span, labeled with a marker cycling through digits and letters.
package gantt

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one bar of the chart.
type Entry struct {
	Task     string
	Start    int
	Finish   int
	Resource string
}

// markers are assigned to tasks in first-appearance order and cycle when
// exhausted
const markers = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Render draws the entries as one text chart spanning [0, window). A zero
// window is widened to the largest finish time.
func Render(entries []Entry, window int) string {
	if len(entries) == 0 {
		return "(empty schedule)\n"
	}
	if window <= 0 {
		for _, e := range entries {
			if e.Finish > window {
				window = e.Finish
			}
		}
	}
	if window <= 0 {
		window = 1
	}

	resources := make([]string, 0)
	seen := make(map[string]struct{})
	for _, e := range entries {
		if _, ok := seen[e.Resource]; !ok {
			seen[e.Resource] = struct{}{}
			resources = append(resources, e.Resource)
		}
	}
	sort.Strings(resources)

	label := 0
	for _, resource := range resources {
		if len(resource) > label {
			label = len(resource)
		}
	}

	taskMarker := make(map[string]byte)
	marker := func(task string) byte {
		if m, ok := taskMarker[task]; ok {
			return m
		}
		m := markers[len(taskMarker)%len(markers)]
		taskMarker[task] = m
		return m
	}

	var b strings.Builder
	for _, resource := range resources {
		row := make([]byte, window)
		for i := range row {
			row[i] = '.'
		}
		for _, e := range entries {
			if e.Resource != resource {
				continue
			}
			m := marker(e.Task)
			for t := e.Start; t < e.Finish && t < window; t++ {
				if t >= 0 {
					row[t] = m
				}
			}
		}
		fmt.Fprintf(&b, "%-*s |%s|\n", label, resource, row)
	}

	fmt.Fprintf(&b, "%-*s  ", label, "")
	fmt.Fprintf(&b, "0%*d\n", window, window)

	legend := make([]string, 0, len(taskMarker))
	for task, m := range taskMarker {
		legend = append(legend, fmt.Sprintf("%c=%s", m, task))
	}
	sort.Strings(legend)
	fmt.Fprintf(&b, "legend: %s\n", strings.Join(legend, " "))
	return b.String()
}

// RenderByDay draws one chart per working day, shifting each day's entries
// to a zero-based window the way shop-floor plans are usually read.
func RenderByDay(entries []Entry, hoursPerDay int) string {
	if hoursPerDay <= 0 || len(entries) == 0 {
		return Render(entries, 0)
	}
	makespan := 0
	for _, e := range entries {
		if e.Finish > makespan {
			makespan = e.Finish
		}
	}
	fullDays := makespan / hoursPerDay
	totalDays := fullDays
	if makespan%hoursPerDay > 0 {
		totalDays++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "days to complete all orders: %d (%d hours per day)\n", totalDays, hoursPerDay)
	for day := 0; day < totalDays; day++ {
		startHour := day * hoursPerDay
		endHour := (day + 1) * hoursPerDay
		if endHour > makespan {
			endHour = makespan
		}
		fmt.Fprintf(&b, "day %d: %d-%d\n", day, startHour, endHour)

		var windowEntries []Entry
		for _, e := range entries {
			if e.Finish <= startHour || e.Start >= endHour {
				continue
			}
			clippedStart := e.Start
			if clippedStart < startHour {
				clippedStart = startHour
			}
			clippedFinish := e.Finish
			if clippedFinish > endHour {
				clippedFinish = endHour
			}
			windowEntries = append(windowEntries, Entry{
				Task:     e.Task,
				Start:    clippedStart - startHour,
				Finish:   clippedFinish - startHour,
				Resource: e.Resource,
			})
		}
		b.WriteString(Render(windowEntries, endHour-startHour))
	}
	return b.String()
}
