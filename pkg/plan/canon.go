package plan

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/otl"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/wla"
)

// missingRequirement is the sentinel for (line, geometry) pairs with no
// recorded worker count
const missingRequirement = -1

// Canonical is the dense-index view of one request: solver-ready inputs plus
// the forward maps needed to re-expand solver output into the external
// identifiers.
type Canonical struct {
	// Orders holds one entry per order with at least one feasible
	// alternative; Order.ID is the dense order index
	Orders []otl.Order
	// OrderNames maps dense order index to the external order identifier
	OrderNames []string
	// LineNames maps dense line index to the external line name
	LineNames []string
	// LineIndex is the reverse line map
	LineIndex map[string]int
	// GeometryNames maps dense geometry index to the geometry string
	GeometryNames []string
	// GeometryIndex is the reverse geometry map
	GeometryIndex map[string]int
	// OrderGeometries lists, per dense order index, the geometry indices of
	// its request rows in row order
	OrderGeometries [][]int
	// Required is the per-(line, geometry) staffing table; missingRequirement
	// marks pairs with no recorded count
	Required [][]int
	// WorkerNames maps dense worker index (1-based) to the external worker
	// identifier; index 0 is unused
	WorkerNames []string
	// WorkerIndex maps the numeric part of an external worker identifier to
	// the dense index
	WorkerIndex map[int]int
	// Affinity is the dense (worker, geometry) affinity table
	Affinity *wla.AffinityTable
	// Availabilities holds the relative-hour availability windows per worker
	Availabilities []wla.Availability
	// Warnings collects non-fatal input anomalies (zero throughput)
	Warnings []string
}

// Canonicalize translates the external request into dense indices and
// relative time units. Unknown geometry or line references drop the affected
// alternative or row; an order left with no alternative disappears from the
// scheduling input.
func Canonicalize(req *Request, log *common.Logger) *Canonical {
	if log == nil {
		log = common.Default()
	}

	c := &Canonical{
		LineIndex:     make(map[string]int),
		GeometryIndex: make(map[string]int),
		WorkerIndex:   make(map[int]int),
	}

	// dense line indices in first-appearance order over the throughput records
	for _, tp := range req.ThroughputMapping {
		if _, ok := c.LineIndex[tp.Line]; !ok {
			c.LineIndex[tp.Line] = len(c.LineNames)
			c.LineNames = append(c.LineNames, tp.Line)
		}
	}

	// substitute degenerate throughput values up front so every consumer of
	// the mapping sees the corrected value
	throughput := make([]int, len(req.ThroughputMapping))
	for i, tp := range req.ThroughputMapping {
		throughput[i] = tp.Throughput
		if tp.Throughput == 0 {
			throughput[i] = common.FallbackThroughput
			warning := fmt.Sprintf("throughput adjusted to %d for %s / %s",
				common.FallbackThroughput, tp.Line, tp.Geometry)
			log.Warn("%s", warning)
			c.Warnings = append(c.Warnings, warning)
		}
	}

	// dense geometry indices across every section that mentions geometries
	for _, glm := range req.GeometryLineMapping {
		c.internGeometry(glm.Geometry)
	}
	for _, tp := range req.ThroughputMapping {
		c.internGeometry(tp.Geometry)
	}
	for _, row := range req.OrderData {
		c.internGeometry(row.Geometry)
	}
	for _, hf := range req.HumanFactor {
		c.internGeometry(hf.Geometry)
	}

	// dense order indices in first-appearance order over the order rows
	orderIndex := make(map[string]int)
	for _, row := range req.OrderData {
		if _, ok := orderIndex[row.Order]; !ok {
			orderIndex[row.Order] = len(c.OrderNames)
			c.OrderNames = append(c.OrderNames, row.Order)
		}
	}

	alternatives := make([][]otl.Alternative, len(c.OrderNames))
	c.OrderGeometries = make([][]int, len(c.OrderNames))

	for _, row := range req.OrderData {
		idx := orderIndex[row.Order]
		c.OrderGeometries[idx] = append(c.OrderGeometries[idx], c.GeometryIndex[row.Geometry])

		priority := 0
		if !row.Priority {
			priority = 1
		}
		// deadline converted seconds to minutes; kept as-is for compatibility
		// with the consuming systems even though durations are in hours
		due := int(math.Ceil(float64(row.Deadline-req.StartTimeStamp) / 60))

		// admissible lines for the row's geometry: main line first, then the
		// alternatives, over every matching mapping row
		var admissible []int
		for _, glm := range req.GeometryLineMapping {
			if glm.Geometry == row.Geometry {
				admissible = append(admissible, glm.MainLine)
				admissible = append(admissible, glm.AlternativeLines...)
			}
		}

		for i, tp := range req.ThroughputMapping {
			if tp.Geometry != row.Geometry {
				continue
			}
			for _, line := range admissible {
				if tp.Line != "Line "+strconv.Itoa(line) {
					continue
				}
				duration := math.Ceil(
					5*float64(row.Mold) +
						(15+float64(row.Amount)/float64(throughput[i]))/60)
				alternatives[idx] = append(alternatives[idx], otl.Alternative{
					Duration: int(duration),
					Line:     c.LineIndex[tp.Line],
					Priority: priority,
					DueDate:  due,
				})
			}
		}
	}

	// orders with no feasible line disappear from the scheduling input
	for idx, alts := range alternatives {
		if len(alts) == 0 {
			continue
		}
		c.Orders = append(c.Orders, otl.Order{ID: idx, Alternatives: alts})
	}

	// per-(line, geometry) staffing requirements: worker counts are keyed by
	// geometry and joined onto the throughput rows
	workerCount := make(map[string]int)
	for _, glm := range req.GeometryLineMapping {
		workerCount[glm.Geometry] = glm.NumberOfWorkers
	}
	c.Required = make([][]int, len(c.LineNames))
	for i := range c.Required {
		c.Required[i] = make([]int, len(c.GeometryNames))
		for g := range c.Required[i] {
			c.Required[i][g] = missingRequirement
		}
	}
	for _, tp := range req.ThroughputMapping {
		count, ok := workerCount[tp.Geometry]
		if !ok {
			continue // geometry has no line mapping; drop the pair
		}
		c.Required[c.LineIndex[tp.Line]][c.GeometryIndex[tp.Geometry]] = count
	}

	// dense worker indices, 1-based, in first-appearance order over the
	// human-factor records
	c.WorkerNames = []string{""}
	for _, hf := range req.HumanFactor {
		id, ok := parseWorkerID(hf.Worker)
		if !ok {
			continue
		}
		if _, seen := c.WorkerIndex[id]; !seen {
			c.WorkerIndex[id] = len(c.WorkerNames)
			c.WorkerNames = append(c.WorkerNames, hf.Worker)
		}
	}

	c.Affinity = wla.NewAffinityTable(len(c.WorkerNames)-1, len(c.GeometryNames))
	for _, hf := range req.HumanFactor {
		id, ok := parseWorkerID(hf.Worker)
		if !ok {
			continue
		}
		c.Affinity.Set(c.WorkerIndex[id], c.GeometryIndex[hf.Geometry], wla.AffinityRecord{
			Experience: hf.Experience,
			Preference: hf.Preference,
			Resilience: hf.Resilience,
			MedicalOK:  hf.MedicalCondition,
		})
	}

	// availability windows in relative hours, clamped at the horizon start;
	// rows referencing workers without a human-factor record are dropped
	windows := make(map[int][][2]int)
	var workerOrder []int
	for _, row := range req.Availabilities {
		id, ok := parseWorkerID(row.Worker)
		if !ok {
			continue
		}
		dense, ok := c.WorkerIndex[id]
		if !ok {
			log.Debug("availability for unknown worker %q dropped", row.Worker)
			continue
		}
		from := int(math.Floor(float64(row.FromTimestamp-req.StartTimeStamp) / 3600))
		end := int(math.Ceil(float64(row.EndTimestamp-req.StartTimeStamp) / 3600))
		if from < 0 {
			from = 0
		}
		if end < 0 {
			end = 0
		}
		if _, seen := windows[dense]; !seen {
			workerOrder = append(workerOrder, dense)
		}
		windows[dense] = append(windows[dense], [2]int{from, end})
	}
	for _, dense := range workerOrder {
		c.Availabilities = append(c.Availabilities, wla.Availability{
			Worker:  dense,
			Windows: windows[dense],
		})
	}

	log.Debug("canonicalized request: %d orders (%d schedulable), %d lines, %d geometries, %d workers",
		len(c.OrderNames), len(c.Orders), len(c.LineNames), len(c.GeometryNames), len(c.WorkerNames)-1)

	return c
}

// internGeometry assigns a dense index to a geometry on first appearance
func (c *Canonical) internGeometry(geometry string) {
	if _, ok := c.GeometryIndex[geometry]; !ok {
		c.GeometryIndex[geometry] = len(c.GeometryNames)
		c.GeometryNames = append(c.GeometryNames, geometry)
	}
}

// parseWorkerID extracts the numeric worker id from an external worker
// identifier such as "7" or "worker 7"
func parseWorkerID(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return id, true
}
