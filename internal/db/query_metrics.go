package db

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fr0stylo/enms/internal/db/queries"
	"github.com/fr0stylo/enms/internal/observability"
)

// samplesPerQuery bounds the latency window kept for each named query.
const samplesPerQuery = 512

// QueryLatency summarizes recent executions of one sqlc query.
type QueryLatency struct {
	Name  string
	Count int
	P50   time.Duration
	P95   time.Duration
	Max   time.Duration
}

// QueryLatencyStats returns per-query latencies, slowest p95 first.
func (c *Database) QueryLatencyStats() []QueryLatency {
	if c == nil {
		return nil
	}
	return c.tracker.snapshot()
}

type queryLatencyTracker struct {
	mu      sync.Mutex
	samples map[string][]time.Duration
}

func newQueryLatencyTracker() *queryLatencyTracker {
	return &queryLatencyTracker{samples: make(map[string][]time.Duration)}
}

func (t *queryLatencyTracker) observe(name string, elapsed time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	window := append(t.samples[name], elapsed)
	if over := len(window) - samplesPerQuery; over > 0 {
		window = window[over:]
	}
	t.samples[name] = window
}

func (t *queryLatencyTracker) snapshot() []QueryLatency {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]QueryLatency, 0, len(t.samples))
	for name, window := range t.samples {
		if len(window) == 0 {
			continue
		}
		sorted := slices.Clone(window)
		slices.Sort(sorted)
		out = append(out, QueryLatency{
			Name:  name,
			Count: len(sorted),
			P50:   percentile(sorted, 0.50),
			P95:   percentile(sorted, 0.95),
			Max:   sorted[len(sorted)-1],
		})
	}
	slices.SortFunc(out, func(a, b QueryLatency) int {
		if a.P95 != b.P95 {
			if a.P95 > b.P95 {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func percentile(sorted []time.Duration, q float64) time.Duration {
	return sorted[int(float64(len(sorted)-1)*q)]
}

// instrumentedDBTX traces, meters and samples every statement issued by the
// generated queries.
type instrumentedDBTX struct {
	inner   queries.DBTX
	tracker *queryLatencyTracker
}

func newInstrumentedDBTX(inner queries.DBTX, tracker *queryLatencyTracker) queries.DBTX {
	return &instrumentedDBTX{inner: inner, tracker: tracker}
}

// track starts a span for the statement. The returned func records the
// outcome and must be called exactly once.
func (d *instrumentedDBTX) track(ctx context.Context, query, operation string) (context.Context, func(error)) {
	name := queryName(query)
	ctx, span := observability.StartDBSpan(ctx, name, operation)
	start := time.Now()
	return ctx, func(err error) {
		elapsed := time.Since(start)
		d.tracker.observe(name, elapsed)
		observability.RecordDBQuery(ctx, name, operation, elapsed, err)
		span.RecordError(err)
		span.End()
	}
}

func (d *instrumentedDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	ctx, done := d.track(ctx, query, "exec")
	result, err := d.inner.ExecContext(ctx, query, args...)
	done(err)
	return result, err
}

func (d *instrumentedDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	ctx, done := d.track(ctx, query, "prepare")
	stmt, err := d.inner.PrepareContext(ctx, query)
	done(err)
	return stmt, err
}

func (d *instrumentedDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	ctx, done := d.track(ctx, query, "query")
	rows, err := d.inner.QueryContext(ctx, query, args...)
	done(err)
	return rows, err
}

// QueryRowContext defers errors to Scan, so the span only covers dispatch.
func (d *instrumentedDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	ctx, done := d.track(ctx, query, "query_row")
	row := d.inner.QueryRowContext(ctx, query, args...)
	done(row.Err())
	return row
}

// queryName reads the sqlc "-- name: GetDevice :one" header of a generated
// statement. Statements without one, such as goose bookkeeping, are "unknown".
func queryName(query string) string {
	header, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	rest, ok := strings.CutPrefix(strings.TrimSpace(header), "-- name:")
	if !ok {
		return "unknown"
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "unknown"
	}
	return fields[0]
}
