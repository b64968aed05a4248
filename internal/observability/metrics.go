package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

const meterName = "enms"

type instruments struct {
	dbDuration  metric.Float64Histogram
	jobRuns     metric.Int64Counter
	jobDuration metric.Float64Histogram
}

// meters resolves instruments from the global provider on first use. The
// global meter forwards to whatever provider SetupOpenTelemetry installs later.
var meters = sync.OnceValues(func() (instruments, error) {
	meter := otel.Meter(meterName)
	var (
		out instruments
		err error
	)
	if out.dbDuration, err = meter.Float64Histogram("enms.db.query.duration",
		metric.WithDescription("Duration of sqlc queries against the enms store."),
		metric.WithUnit("s"),
	); err != nil {
		return instruments{}, err
	}
	if out.jobRuns, err = meter.Int64Counter("enms.job.runs",
		metric.WithDescription("Finished job runs."),
		metric.WithUnit("{run}"),
	); err != nil {
		return instruments{}, err
	}
	if out.jobDuration, err = meter.Float64Histogram("enms.job.run.duration",
		metric.WithDescription("Wall time of finished job runs."),
		metric.WithUnit("s"),
	); err != nil {
		return instruments{}, err
	}
	return out, nil
})

// RecordDBQuery records one statement's latency under its query name.
func RecordDBQuery(ctx context.Context, queryName, operation string, elapsed time.Duration, err error) {
	m, merr := meters()
	if merr != nil {
		return
	}
	m.dbDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		semconv.DBQuerySummary(queryName),
		semconv.DBOperationName(operation),
		attribute.Bool("error", err != nil),
	))
}

// RecordJobRun counts one finished run of a job type.
func RecordJobRun(ctx context.Context, jobType string, success bool, elapsed time.Duration) {
	m, err := meters()
	if err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("enms.job.type", jobType),
		attribute.Bool("success", success),
	)
	m.jobRuns.Add(ctx, 1, attrs)
	m.jobDuration.Record(ctx, elapsed.Seconds(), attrs)
}
