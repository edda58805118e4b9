package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/spaceempire-go/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records request execution metrics.
// Request names are the bare type name, e.g. "*game.StepCommand" becomes "StepCommand".
func PrometheusMiddleware(collector *RequestMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		requestName := extractRequestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		collector.RecordRequestExecution(requestName, time.Since(start).Seconds(), err == nil)
		return response, err
	}
}

func extractRequestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	parts := strings.Split(fullName, ".")
	return parts[len(parts)-1]
}
