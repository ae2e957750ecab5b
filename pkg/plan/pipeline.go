package plan

import (
	"context"
	"errors"
	"runtime"
	"time"

	gotaskflow "github.com/noneback/go-taskflow"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/otl"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/wla"
)

// Config tunes one pipeline run. Zero values fall back to the solver
// defaults.
type Config struct {
	ScheduleTimeLimit   time.Duration
	AllocationTimeLimit time.Duration

	MakespanWeight  int
	TardinessWeight int

	PreferenceWeight int
	ExperienceWeight int
	ResilienceWeight int
	StaffingWeight   int

	// CoarseAllocation selects the whole-horizon fallback model instead of
	// the interval model
	CoarseAllocation bool

	Logger *common.Logger
}

// ConfigFromSolver translates the service configuration into a pipeline
// config.
func ConfigFromSolver(sc common.SolverConfig, logger *common.Logger) Config {
	return Config{
		ScheduleTimeLimit:   time.Duration(sc.ScheduleTimeLimitSeconds) * time.Second,
		AllocationTimeLimit: time.Duration(sc.AllocationTimeLimitSeconds) * time.Second,
		MakespanWeight:      sc.MakespanWeight,
		TardinessWeight:     sc.TardinessWeight,
		PreferenceWeight:    sc.PreferenceWeight,
		ExperienceWeight:    sc.ExperienceWeight,
		ResilienceWeight:    sc.ResilienceWeight,
		StaffingWeight:      sc.StaffingWeight,
		CoarseAllocation:    sc.CoarseAllocation,
		Logger:              logger,
	}
}

// Outcome carries every artifact of one pipeline run.
type Outcome struct {
	Canonical  *Canonical
	Schedule   *otl.Result
	LineData   []wla.Demand
	Allocation *wla.Result
	Rows       []AllocationRow
	Message    string
}

// executor runs the per-request task graphs; the stages of one request are
// sequential, so a small shared pool is plenty
var executor = gotaskflow.NewExecutor(uint(runtime.NumCPU()))

// RunSchedule runs the first half of the pipeline: canonicalization and the
// order-to-line solve, re-expanded to external identifiers.
func RunSchedule(ctx context.Context, req *Request, cfg Config) ([]ScheduleRow, string, error) {
	log := cfg.Logger
	if log == nil {
		log = common.Default()
	}

	canonical := Canonicalize(req, log)
	schedule, err := otl.Solve(ctx, canonical.Orders, otl.Options{
		MakespanWeight:  cfg.MakespanWeight,
		TardinessWeight: cfg.TardinessWeight,
		TimeLimit:       cfg.ScheduleTimeLimit,
		Logger:          log,
	})
	if err != nil {
		return nil, "", err
	}

	rows := AssembleSchedule(schedule.Schedule, canonical)
	message := MsgOrderToLineOK
	if len(rows) == 0 {
		message = MsgNoSolution
	}
	return rows, message, nil
}

// RunPipeline runs the full planning pipeline as a five-stage task graph:
// canonicalize, schedule, expand, allocate, assemble. The stages form a
// linear DAG; each one reads only the artifacts of its predecessors.
//
// The allocation stage applies an explicit two-phase policy: the strict
// model runs first, and only if it allocates no worker at all is it rebuilt
// without the medical hard constraint.
func RunPipeline(ctx context.Context, req *Request, cfg Config) (*Outcome, error) {
	log := cfg.Logger
	if log == nil {
		log = common.Default()
	}

	out := &Outcome{}
	var scheduleErr, allocErr error

	tf := gotaskflow.NewTaskFlow("plan")

	canonicalize := tf.NewTask("canonicalize", func() {
		out.Canonical = Canonicalize(req, log)
	})

	schedule := tf.NewTask("schedule", func() {
		out.Schedule, scheduleErr = otl.Solve(ctx, out.Canonical.Orders, otl.Options{
			MakespanWeight:  cfg.MakespanWeight,
			TardinessWeight: cfg.TardinessWeight,
			TimeLimit:       cfg.ScheduleTimeLimit,
			Logger:          log,
		})
	})

	expand := tf.NewTask("expand", func() {
		if scheduleErr != nil {
			return
		}
		out.LineData = BuildLineData(out.Schedule.Schedule, out.Canonical)
	})

	allocate := tf.NewTask("allocate", func() {
		if scheduleErr != nil || len(out.LineData) == 0 {
			return
		}
		out.Allocation, allocErr = solveAllocation(ctx, out, cfg, log, false)
		if allocErr != nil || len(out.Allocation.Workers) > 0 {
			return
		}
		// strict phase came back empty: rebuild without the medical
		// constraint and solve again
		log.Warn("no allocation under the medical constraint, retrying relaxed")
		out.Allocation, allocErr = solveAllocation(ctx, out, cfg, log, true)
	})

	assemble := tf.NewTask("assemble", func() {
		if scheduleErr != nil || allocErr != nil {
			return
		}
		out.Rows = AssembleAllocation(out.LineData, out.Allocation, out.Canonical)
		out.Message = allocationMessage(out)
	})

	canonicalize.Precede(schedule)
	schedule.Precede(expand)
	expand.Precede(allocate)
	allocate.Precede(assemble)

	executor.Run(tf).Wait()

	if scheduleErr != nil {
		return nil, scheduleErr
	}
	if allocErr != nil {
		return nil, allocErr
	}
	return out, nil
}

// solveAllocation dispatches to the configured allocation model
func solveAllocation(ctx context.Context, out *Outcome, cfg Config, log *common.Logger, relaxMedical bool) (*wla.Result, error) {
	opts := wla.Options{
		PreferenceWeight: cfg.PreferenceWeight,
		ExperienceWeight: cfg.ExperienceWeight,
		ResilienceWeight: cfg.ResilienceWeight,
		StaffingWeight:   cfg.StaffingWeight,
		RelaxMedical:     relaxMedical,
		TimeLimit:        cfg.AllocationTimeLimit,
		Logger:           log,
	}
	if cfg.CoarseAllocation {
		result, err := wla.SolveGlobal(ctx, out.LineData, out.Canonical.Affinity, out.Canonical.Availabilities, opts)
		if errors.Is(err, wla.ErrNoSolution) {
			// the coarse model's staffing bounds can be unsatisfiable; an
			// empty allocation is the documented outcome, not a failure
			return result, nil
		}
		return result, err
	}
	return wla.SolveIntervals(ctx, out.LineData, out.Canonical.Affinity, out.Canonical.Availabilities, opts)
}

// allocationMessage derives the response message for a finished pipeline run
func allocationMessage(out *Outcome) string {
	if len(out.Rows) == 0 {
		return MsgNoSolution
	}
	message := MsgWorkerAllocationOK
	if out.Allocation != nil {
		if out.Allocation.Model == wla.ModelGlobal {
			message += " (coarse allocation model)"
		}
		if out.Allocation.MedicalRelaxed {
			message += " (medical constraint relaxed)"
		}
	}
	return message
}
