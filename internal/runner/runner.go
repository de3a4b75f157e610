// Package runner executes elementary automaton runs for the wolfram CLI.
package runner

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tspugh/cellular-automata-ml/internal/config"
	"github.com/tspugh/cellular-automata-ml/internal/render"
	"github.com/tspugh/cellular-automata-ml/internal/sims/elementary"
)

const tracerName = "github.com/tspugh/cellular-automata-ml/internal/runner"

// Pacer blocks until the next generation is due. core.FixedStep is the
// production implementation.
type Pacer interface {
	Wait()
}

// Result describes a finished run.
type Result struct {
	RunID      uuid.UUID
	Code       int
	Descriptor string

	// Rows holds every generation as a '0'/'1' string, oldest first, ending
	// with the final row.
	Rows    []string
	Summary elementary.Summary
}

// Final returns the last row of the run.
func (r Result) Final() string {
	if len(r.Rows) == 0 {
		return ""
	}
	return r.Rows[len(r.Rows)-1]
}

// Runner drives runs and writes their output.
type Runner struct {
	// Out receives diagrams and sweep lines. Nil discards them.
	Out io.Writer

	// Progress receives the sweep progress bar. Nil disables it.
	Progress io.Writer

	// Pacer, when set, paces a run one generation at a time and rows are
	// written as they are produced.
	Pacer Pacer

	// Tracer defaults to the global otel tracer.
	Tracer trace.Tracer
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

func (r *Runner) tracer() trace.Tracer {
	if r.Tracer == nil {
		return otel.Tracer(tracerName)
	}
	return r.Tracer
}

// Run builds the configured lattice, advances it and writes the diagram.
func (r *Runner) Run(ctx context.Context, cfg config.Config) (Result, error) {
	return r.run(ctx, cfg, true)
}

func (r *Runner) run(ctx context.Context, cfg config.Config, draw bool) (res Result, err error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Result{}, fmt.Errorf("run id: %w", err)
	}
	lattice, err := cfg.Elementary().Build()
	if err != nil {
		return Result{}, err
	}
	rule := lattice.Rule()
	code, _ := rule.Code()
	res = Result{RunID: id, Code: int(code), Descriptor: rule.Descriptor()}

	ctx, span := r.tracer().Start(ctx, "wolfram.Run",
		trace.WithAttributes(
			attribute.String("wolfram.run_id", id.String()),
			attribute.String("wolfram.rule", res.Descriptor),
			attribute.Int("wolfram.length", cfg.Length),
			attribute.Int("wolfram.iterations", cfg.Iterations),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "run failed")
		}
		span.End()
	}()

	glyphs := render.Blocks
	if cfg.Glyphs == config.GlyphsDigits {
		glyphs = render.Digits
	}
	live := draw && r.Pacer != nil
	if live {
		if err := glyphs.WriteDiagram(r.out(), []string{lattice.String()}); err != nil {
			return res, err
		}
	}
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if live {
			r.Pacer.Wait()
		}
		if _, err := lattice.Advance(1); err != nil {
			return res, err
		}
		if live {
			if err := glyphs.WriteDiagram(r.out(), []string{lattice.String()}); err != nil {
				return res, err
			}
		}
	}

	history := lattice.History()
	res.Rows = make([]string, 0, len(history)+1)
	for _, rec := range history {
		res.Rows = append(res.Rows, rec.Cells())
	}
	res.Rows = append(res.Rows, lattice.String())
	res.Summary = elementary.Summarize(lattice)

	span.SetAttributes(
		attribute.Int("wolfram.final_live", res.Summary.Live[len(res.Summary.Live)-1]),
		attribute.Int("wolfram.cycle_start", res.Summary.CycleStart),
		attribute.Int("wolfram.period", res.Summary.Period),
	)
	if draw && !live {
		if err := glyphs.WriteDiagram(r.out(), res.Rows); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Sweep runs every Wolfram code in [from, to] with the remaining settings
// of cfg and writes one summary line per code. Codes run in order.
func (r *Runner) Sweep(ctx context.Context, cfg config.Config, from, to int) ([]Result, error) {
	if from < 0 || to > 255 || from > to {
		return nil, fmt.Errorf("%w: sweep range must satisfy 0 <= from <= to <= 255, got %d..%d", elementary.ErrConfiguration, from, to)
	}

	var bar *pb.ProgressBar
	if r.Progress != nil {
		bar = pb.New(to - from + 1)
		bar.SetWriter(r.Progress)
		bar.Start()
		defer bar.Finish()
	}

	results := make([]Result, 0, to-from+1)
	for code := from; code <= to; code++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		c := cfg
		c.Rule = strconv.Itoa(code)
		res, err := r.run(ctx, c, false)
		if err != nil {
			return results, fmt.Errorf("rule %d: %w", code, err)
		}
		results = append(results, res)
		if _, err := fmt.Fprintln(r.out(), SummaryLine(res)); err != nil {
			return results, err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	return results, nil
}

// SummaryLine formats a one line report of a run.
func SummaryLine(res Result) string {
	s := res.Summary
	final := 0
	if len(s.Live) > 0 {
		final = s.Live[len(s.Live)-1]
	}
	return fmt.Sprintf("rule %3d %s live=%d density=%.3f cycle=%d period=%d",
		res.Code, res.Descriptor, final, s.Density, s.CycleStart, s.Period)
}
