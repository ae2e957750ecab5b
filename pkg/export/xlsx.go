// Package export writes a solved plan to an Excel workbook: one sheet for
// the line schedule and one for the worker allocation.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/plan"
)

const (
	scheduleSheet   = "Schedule"
	allocationSheet = "Allocation"
)

// WritePlan saves the schedule and allocation rows to an .xlsx workbook.
// Either slice may be empty; the corresponding sheet keeps only its header.
func WritePlan(path string, schedule []plan.ScheduleRow, allocation []plan.AllocationRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return fmt.Errorf("failed to prepare schedule sheet: %w", err)
	}
	header := []interface{}{"Task", "Start", "Finish", "Resource"}
	if err := f.SetSheetRow(scheduleSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write schedule header: %w", err)
	}
	for i, row := range schedule {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{row.Task, row.Start, row.Finish, row.Resource}
		if err := f.SetSheetRow(scheduleSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write schedule row %d: %w", i, err)
		}
	}

	if _, err := f.NewSheet(allocationSheet); err != nil {
		return fmt.Errorf("failed to create allocation sheet: %w", err)
	}
	allocHeader := []interface{}{"Task", "Start", "Finish", "Resource", "Geometry", "Required Workers", "Workers"}
	if err := f.SetSheetRow(allocationSheet, "A1", &allocHeader); err != nil {
		return fmt.Errorf("failed to write allocation header: %w", err)
	}
	for i, row := range allocation {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.Task, row.Start, row.Finish, row.Resource,
			row.Geometry, row.RequiredWorkers, strings.Join(row.Workers, ", "),
		}
		if err := f.SetSheetRow(allocationSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write allocation row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
