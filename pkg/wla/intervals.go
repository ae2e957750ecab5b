package wla

import "sort"

// Interval is one elementary sub-interval of the planning horizon.
type Interval struct {
	Start int
	End   int
}

// Partition computes the elementary intervals of the horizon: the sorted
// unique union of all demand starts and finishes and all availability window
// endpoints, with adjacent values paired up. Within one elementary interval
// the set of running jobs and the set of available workers are constant.
func Partition(demands []Demand, availabilities []Availability) []Interval {
	seen := make(map[int]struct{})
	for _, d := range demands {
		seen[d.Start] = struct{}{}
		seen[d.Finish] = struct{}{}
	}
	for _, a := range availabilities {
		for _, w := range a.Windows {
			seen[w[0]] = struct{}{}
			seen[w[1]] = struct{}{}
		}
	}

	bounds := make([]int, 0, len(seen))
	for b := range seen {
		bounds = append(bounds, b)
	}
	sort.Ints(bounds)

	intervals := make([]Interval, 0, len(bounds))
	for i := 0; i+1 < len(bounds); i++ {
		intervals = append(intervals, Interval{Start: bounds[i], End: bounds[i+1]})
	}
	return intervals
}

// contains reports whether some single availability window fully contains
// the [start, end) interval.
func (a Availability) contains(start, end int) bool {
	for _, w := range a.Windows {
		if w[0] <= start && w[1] >= end {
			return true
		}
	}
	return false
}
