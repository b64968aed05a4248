package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName  = "enms/db"
	jobTracerName = "enms/automation"
)

type contextKey string

const (
	userIDContextKey   contextKey = "observability.user_id"
	userNameContextKey contextKey = "observability.user_name"
	requestIDKey       contextKey = "observability.request_id"
	routeKey           contextKey = "observability.route"
	jobNameKey         contextKey = "observability.job_name"
	runIDKey           contextKey = "observability.run_id"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a client span named after the sqlc query it runs.
func StartDBSpan(ctx context.Context, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	attrs := []attribute.KeyValue{
		semconv.DBSystemNameSQLite,
		semconv.DBQuerySummary(queryName),
		semconv.DBOperationName(strings.TrimSpace(operation)),
	}
	if userID, ok := UserIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.Int64("enduser.id", userID))
	}
	if runID, ok := RunIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("enms.run.id", runID))
	}

	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "enms.db "+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// StartJobSpan starts a span around one job run, or around one device of it
// when device is set.
func StartJobSpan(ctx context.Context, jobName, jobType, device string) (context.Context, Span) {
	jobName = strings.TrimSpace(jobName)
	attrs := []attribute.KeyValue{
		attribute.String("enms.job.name", jobName),
		attribute.String("enms.job.type", strings.TrimSpace(jobType)),
	}
	spanName := "enms.job " + jobName
	if device = strings.TrimSpace(device); device != "" {
		attrs = append(attrs, attribute.String("enms.device.name", device))
		spanName += " @" + device
	}
	if runID, ok := RunIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("enms.run.id", runID))
	}
	if userName, ok := UserNameFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("enduser.name", userName))
	}

	ctx, span := otel.Tracer(jobTracerName).Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// WithJobRun tags ctx with the job and run it executes for.
func WithJobRun(ctx context.Context, jobName, runID string) context.Context {
	if jobName = strings.TrimSpace(jobName); jobName != "" {
		ctx = context.WithValue(ctx, jobNameKey, jobName)
	}
	if runID = strings.TrimSpace(runID); runID != "" {
		ctx = context.WithValue(ctx, runIDKey, runID)
	}
	return ctx
}

// JobNameFromContext extracts the running job name.
func JobNameFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(jobNameKey).(string)
	return value, ok && value != ""
}

// RunIDFromContext extracts the job run id.
func RunIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(runIDKey).(string)
	return value, ok && value != ""
}

// WithRequestIdentity enriches context and current span with the authenticated user.
func WithRequestIdentity(ctx context.Context, userID int64, userName string) context.Context {
	userName = strings.TrimSpace(userName)
	if userID > 0 {
		ctx = context.WithValue(ctx, userIDContextKey, userID)
	}
	if userName != "" {
		ctx = context.WithValue(ctx, userNameContextKey, userName)
	}
	setSpanIdentityAttributes(ctx, userID, userName)
	return ctx
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
	}
	setSpanRequestAttributes(ctx, requestID, route)
	return ctx
}

// UserIDFromContext extracts request user id.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	value, ok := ctx.Value(userIDContextKey).(int64)
	return value, ok && value > 0
}

// UserNameFromContext extracts the authenticated user name.
func UserNameFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(userNameContextKey).(string)
	return value, ok && value != ""
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(requestIDKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(routeKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func setSpanIdentityAttributes(ctx context.Context, userID int64, userName string) {
	span := trace.SpanFromContext(ctx)
	if span == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, 2)
	if userID > 0 {
		attrs = append(attrs, attribute.Int64("enduser.id", userID))
	}
	if userName != "" {
		attrs = append(attrs, attribute.String("enduser.name", userName))
	}
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
}

func setSpanRequestAttributes(ctx context.Context, requestID, route string) {
	span := trace.SpanFromContext(ctx)
	if span == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		attrs = append(attrs, semconv.HTTPRoute(route))
	}
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}
