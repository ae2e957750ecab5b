package plan

import (
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/otl"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/wla"
)

// BuildLineData expands the line schedule into per-(line, geometry) staffing
// demand: one row per (schedule entry, geometry of that order). Rows whose
// (line, geometry) pair has no recorded worker count are dropped.
func BuildLineData(schedule []otl.ScheduleEntry, c *Canonical) []wla.Demand {
	rows := make([]wla.Demand, 0, len(schedule))
	for _, entry := range schedule {
		if entry.Task >= len(c.OrderGeometries) {
			continue
		}
		for _, geometry := range c.OrderGeometries[entry.Task] {
			if entry.Line >= len(c.Required) || geometry >= len(c.Required[entry.Line]) {
				continue
			}
			required := c.Required[entry.Line][geometry]
			if required <= 0 {
				continue
			}
			rows = append(rows, wla.Demand{
				Task:     entry.Task,
				Start:    entry.Start,
				Finish:   entry.Finish,
				Line:     entry.Line,
				Geometry: geometry,
				Required: required,
			})
		}
	}
	return rows
}
