/*
Package main implements planctl, a small client for the planning service.

planctl posts a planning request stored in a JSON file to a running service
instance, prints the response message, and optionally renders the resulting
schedule as a console Gantt chart or exports the plan to an Excel workbook.

Usage:

	planctl -file request.json [-server http://localhost:8080] \
	    [-endpoint worker-assignment|order-to-line] \
	    [-gantt] [-hours-per-day 16] [-xlsx plan.xlsx]
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/export"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/gantt"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/jsonutil"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/plan"
)

const (
	endpointOrderToLine      = "order-to-line"
	endpointWorkerAssignment = "worker-assignment"
)

func main() {
	file := flag.String("file", "", "path to the planning request JSON file")
	server := flag.String("server", "http://localhost:8080", "base URL of the planning service")
	endpoint := flag.String("endpoint", endpointWorkerAssignment,
		"endpoint to call: order-to-line or worker-assignment")
	showGantt := flag.Bool("gantt", false, "render the schedule as a console gantt chart")
	hoursPerDay := flag.Int("hours-per-day", common.DefaultShiftHoursPerDay,
		"working-day length for the per-day gantt breakdown")
	xlsxPath := flag.String("xlsx", "", "export the plan to this .xlsx file")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "planctl: -file is required")
		flag.Usage()
		os.Exit(2)
	}
	if *endpoint != endpointOrderToLine && *endpoint != endpointWorkerAssignment {
		fmt.Fprintf(os.Stderr, "planctl: unknown endpoint %q\n", *endpoint)
		os.Exit(2)
	}

	body, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "planctl: failed to read request file: %v\n", err)
		os.Exit(1)
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(*server + "/" + *endpoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "planctl: request failed: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode() != 200 {
		fmt.Fprintf(os.Stderr, "planctl: service answered %d: %s\n", resp.StatusCode(), resp.Body())
		os.Exit(1)
	}

	switch *endpoint {
	case endpointOrderToLine:
		var result plan.ScheduleResponse
		if err := jsonutil.Unmarshal(resp.Body(), &result); err != nil {
			fmt.Fprintf(os.Stderr, "planctl: failed to decode response: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result.Message)
		printSchedule(result.Solution, nil, *showGantt, *hoursPerDay, *xlsxPath)

	case endpointWorkerAssignment:
		var result plan.AllocationResponse
		if err := jsonutil.Unmarshal(resp.Body(), &result); err != nil {
			fmt.Fprintf(os.Stderr, "planctl: failed to decode response: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result.Message)
		schedule := make([]plan.ScheduleRow, 0, len(result.Solution))
		for _, row := range result.Solution {
			schedule = append(schedule, plan.ScheduleRow{
				Task:     row.Task,
				Start:    row.Start,
				Finish:   row.Finish,
				Resource: row.Resource,
			})
		}
		printSchedule(schedule, result.Solution, *showGantt, *hoursPerDay, *xlsxPath)
	}
}

// printSchedule renders and exports the received plan as requested
func printSchedule(schedule []plan.ScheduleRow, allocation []plan.AllocationRow, showGantt bool, hoursPerDay int, xlsxPath string) {
	for _, row := range schedule {
		fmt.Printf("%s  %3d - %3d  %s\n", row.Task, row.Start, row.Finish, row.Resource)
	}
	for _, row := range allocation {
		fmt.Printf("%s on %s (%s): %v\n", row.Task, row.Resource, row.Geometry, row.Workers)
	}

	if showGantt && len(schedule) > 0 {
		entries := make([]gantt.Entry, 0, len(schedule))
		for _, row := range schedule {
			entries = append(entries, gantt.Entry{
				Task:     row.Task,
				Start:    row.Start,
				Finish:   row.Finish,
				Resource: row.Resource,
			})
		}
		fmt.Println(gantt.Render(entries, 0))
		fmt.Println(gantt.RenderByDay(entries, hoursPerDay))
	}

	if xlsxPath != "" {
		if err := export.WritePlan(xlsxPath, schedule, allocation); err != nil {
			fmt.Fprintf(os.Stderr, "planctl: xlsx export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("plan written to %s\n", xlsxPath)
	}
}
