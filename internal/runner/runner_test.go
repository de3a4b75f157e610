package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tspugh/cellular-automata-ml/internal/config"
	"github.com/tspugh/cellular-automata-ml/internal/sims/elementary"
)

var canonicalRows = []string{
	"00000000000000000100000",
	"00000000000000001110000",
	"00000000000000011001000",
	"00000000000000110111100",
}

func shortRun() config.Config {
	cfg := config.Default()
	cfg.Iterations = 3
	cfg.Glyphs = config.GlyphsDigits
	return cfg
}

type countingPacer struct{ waits int }

func (p *countingPacer) Wait() { p.waits++ }

func recorder(t *testing.T) (*tracetest.SpanRecorder, *Runner) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, &Runner{Tracer: tp.Tracer("test")}
}

func TestRunWritesDiagram(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out}

	res, err := r.Run(context.Background(), shortRun())
	require.NoError(t, err)

	assert.Equal(t, canonicalRows, res.Rows)
	assert.Equal(t, canonicalRows[3], res.Final())
	assert.Equal(t, strings.Join(canonicalRows, "\n")+"\n", out.String())
	assert.Equal(t, 30, res.Code)
	assert.Equal(t, "bl3_[0,0]_00011110", res.Descriptor)
	assert.Equal(t, 3, res.Summary.Generations)
	assert.Equal(t, []int{1, 3, 3, 6}, res.Summary.Live)
	assert.NotEqual(t, res.RunID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestRunBlocksGlyphs(t *testing.T) {
	var out bytes.Buffer
	cfg := shortRun()
	cfg.Glyphs = config.GlyphsBlocks
	cfg.Iterations = 1
	_, err := (&Runner{Out: &out}).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, ".................#.....\n................###....\n", out.String())
}

func TestRunPacedMatchesBatch(t *testing.T) {
	var batch, paced bytes.Buffer
	_, err := (&Runner{Out: &batch}).Run(context.Background(), shortRun())
	require.NoError(t, err)

	pacer := &countingPacer{}
	_, err = (&Runner{Out: &paced, Pacer: pacer}).Run(context.Background(), shortRun())
	require.NoError(t, err)

	assert.Equal(t, batch.String(), paced.String())
	assert.Equal(t, 3, pacer.waits)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := shortRun()
	cfg.Boundary = "sideways"
	_, err := (&Runner{}).Run(context.Background(), cfg)
	assert.ErrorIs(t, err, elementary.ErrConfiguration)
}

func TestRunRecordsSpan(t *testing.T) {
	sr, r := recorder(t)
	res, err := r.Run(context.Background(), shortRun())
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "wolfram.Run", span.Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, res.RunID.String(), attrs["wolfram.run_id"].AsString())
	assert.Equal(t, "bl3_[0,0]_00011110", attrs["wolfram.rule"].AsString())
	assert.Equal(t, int64(23), attrs["wolfram.length"].AsInt64())
	assert.Equal(t, int64(3), attrs["wolfram.iterations"].AsInt64())
	assert.Equal(t, int64(6), attrs["wolfram.final_live"].AsInt64())
	assert.Equal(t, int64(-1), attrs["wolfram.cycle_start"].AsInt64())
}

func TestRunCancelledMarksSpan(t *testing.T) {
	sr, r := recorder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, shortRun())
	assert.ErrorIs(t, err, context.Canceled)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestSweep(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, Progress: io.Discard}

	results, err := r.Sweep(context.Background(), shortRun(), 0, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "rule   0 bl3_[0,0]_00000000 live=0"), lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "rule   2 bl3_[0,0]_00000010"), lines[2])
}

func TestSweepDetectsStillLife(t *testing.T) {
	var out bytes.Buffer
	results, err := (&Runner{Out: &out}).Sweep(context.Background(), shortRun(), 204, 204)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Summary.CycleStart)
	assert.Equal(t, 1, results[0].Summary.Period)
	assert.Equal(t, "rule 204 bl3_[0,0]_11001100 live=1 density=0.043 cycle=0 period=1\n", out.String())
}

func TestSweepRange(t *testing.T) {
	r := &Runner{}
	for _, bounds := range [][2]int{{-1, 3}, {3, 256}, {9, 4}} {
		_, err := r.Sweep(context.Background(), shortRun(), bounds[0], bounds[1])
		assert.ErrorIs(t, err, elementary.ErrConfiguration, "range %v", bounds)
	}
}

func TestSweepStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := (&Runner{}).Sweep(ctx, shortRun(), 0, 255)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
