package rpc

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const instrumentationName = "github.com/metinatakli/movie-service/internal/rpc"

type telemetry struct {
	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newTelemetry() (*telemetry, error) {
	meter := otel.Meter(instrumentationName)

	requests, err := meter.Int64Counter("movie.rpc.requests",
		metric.WithDescription("Number of movie service operations by method and outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("movie.rpc.duration",
		metric.WithDescription("Duration of movie service operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &telemetry{
		tracer:   otel.Tracer(instrumentationName),
		requests: requests,
		duration: duration,
	}, nil
}

// observe opens the span, metric and log boundary of one operation. The
// returned func closes it with the operation's outcome.
func (s *MovieService) observe(ctx context.Context, method string) (context.Context, func(error)) {
	start := time.Now()

	ctx, span := s.telemetry.tracer.Start(ctx, "MovieService/"+method,
		trace.WithAttributes(attribute.String("rpc.method", method)))

	return ctx, func(err error) {
		defer span.End()

		code := status.Code(err)
		attrs := metric.WithAttributes(
			attribute.String("rpc.method", method),
			attribute.String("rpc.grpc.status_code", code.String()),
		)

		s.telemetry.requests.Add(ctx, 1, attrs)
		s.telemetry.duration.Record(ctx, time.Since(start).Seconds(), attrs)

		span.SetAttributes(attribute.String("rpc.grpc.status_code", code.String()))

		if err == nil {
			return
		}

		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())

		level := slog.LevelWarn
		if code == codes.Internal || code == codes.Unknown {
			level = slog.LevelError
		}

		s.logger.Log(ctx, level, "movie operation failed", "method", method, "code", code.String(), "error", err)
	}
}
