package wla

import (
	"context"
	"sort"
)

// lineDemand is the staffing picture of one line within one elementary
// interval
type lineDemand struct {
	required int
	geometry int
}

// SolveIntervals runs the fine-grained allocation model. The horizon is cut
// into elementary intervals; within each interval every worker either runs
// exactly one line with open demand or is not present. Availability and
// medical fitness are hard constraints; staffing is a signed soft term. The
// objective maximizes the weighted sum of experience, preference and
// resilience contributions plus the staffing offsets.
//
// The model decomposes: no constraint couples two intervals, and within one
// interval no constraint couples two workers, so the optimum is computed
// directly per (interval, worker) instead of through search.
func SolveIntervals(ctx context.Context, demands []Demand, affinity *AffinityTable, availabilities []Availability, opts Options) (*Result, error) {
	opts = opts.normalized()
	log := opts.Logger

	result := &Result{
		Workers:        make(map[int][]int),
		Assignments:    []Assignment{},
		MedicalRelaxed: opts.RelaxMedical,
		Model:          ModelInterval,
	}
	if len(demands) == 0 {
		return result, nil
	}

	intervals := Partition(demands, availabilities)
	log.Info("the schedule is divided into %d intervals", len(intervals))

	availByWorker := make(map[int]Availability, len(availabilities))
	for _, a := range availabilities {
		merged := availByWorker[a.Worker]
		merged.Worker = a.Worker
		merged.Windows = append(merged.Windows, a.Windows...)
		availByWorker[a.Worker] = merged
	}

	workers := affinity.Workers()
	assigned := make(map[int]map[int]struct{}) // line -> worker set

	for _, iv := range intervals {
		if ctx.Err() != nil {
			break
		}
		length := iv.End - iv.Start
		if length <= 0 {
			continue
		}

		// the staffing picture of this interval: the last demand row fully
		// covering it wins per line, mirroring the construction order of the
		// expanded schedule
		open := make(map[int]lineDemand)
		for _, d := range demands {
			if d.Start <= iv.Start && d.Finish >= iv.End && d.Required > 0 {
				open[d.Line] = lineDemand{required: d.Required, geometry: d.Geometry}
			}
		}
		if len(open) == 0 {
			continue
		}

		lines := make([]int, 0, len(open))
		for line := range open {
			lines = append(lines, line)
			result.TotalStaffing -= open[line].required
		}
		sort.Ints(lines)

		for w := 1; w <= workers; w++ {
			avail, ok := availByWorker[w]
			if !ok || !avail.contains(iv.Start, iv.End) {
				continue // not present in this interval
			}

			bestLine := -1
			bestGain := 0
			var bestRec AffinityRecord
			for _, line := range lines {
				rec := affinity.At(w, open[line].geometry)
				if !opts.RelaxMedical && !(rec.Known && rec.MedicalOK) {
					continue
				}
				gain := opts.PreferenceWeight*scale(rec.Preference)*length +
					opts.ExperienceWeight*scale(rec.Experience)*length +
					opts.ResilienceWeight*scale(rec.Resilience)*length +
					opts.StaffingWeight
				if gain > bestGain {
					bestGain = gain
					bestLine = line
					bestRec = rec
				}
			}
			if bestLine < 0 {
				continue // not present beats every admissible assignment
			}

			result.Assignments = append(result.Assignments, Assignment{
				Start:  iv.Start,
				End:    iv.End,
				Worker: w,
				Line:   bestLine,
			})
			if assigned[bestLine] == nil {
				assigned[bestLine] = make(map[int]struct{})
			}
			assigned[bestLine][w] = struct{}{}

			result.TotalPreference += scale(bestRec.Preference) * length
			result.TotalExperience += scale(bestRec.Experience) * length
			result.TotalResilience += scale(bestRec.Resilience) * length
			result.TotalStaffing++
			log.Debug("[%d-%d] worker %d is assigned to line %d", iv.Start, iv.End, w, bestLine)
		}
	}

	for line, set := range assigned {
		ids := make([]int, 0, len(set))
		for w := range set {
			ids = append(ids, w)
		}
		sort.Ints(ids)
		result.Workers[line] = ids
	}

	result.Objective = opts.PreferenceWeight*result.TotalPreference +
		opts.ExperienceWeight*result.TotalExperience +
		opts.ResilienceWeight*result.TotalResilience +
		opts.StaffingWeight*result.TotalStaffing

	log.Info("allocation objective: %d (preference: %d, experience: %d, resilience: %d, staffing offset: %d)",
		result.Objective, result.TotalPreference, result.TotalExperience,
		result.TotalResilience, result.TotalStaffing)

	return result, nil
}
