// Package internal contains the telemetry wrapper shared by the library's
// components.
package internal

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/FerroO2000/ringq"

// Telemetry bundles the logger, meter and tracer of a single component.
type Telemetry struct {
	logger *slog.Logger
	meter  metric.Meter
	tracer trace.Tracer
}

// NewTelemetry returns the telemetry for the component identified by kind
// (the package-level grouping) and name (the instance within it).
func NewTelemetry(kind, name string) *Telemetry {
	return &Telemetry{
		logger: newLogger().With("kind", kind, "name", name),
		meter:  otel.Meter(scopeName + "/" + kind),
		tracer: otel.Tracer(scopeName + "/" + kind),
	}
}

func newLogger() *slog.Logger {
	out := os.Stderr

	terminalHandler := tint.NewHandler(colorable.NewColorable(out), &tint.Options{
		NoColor: !isatty.IsTerminal(out.Fd()),
	})

	// Records also flow into the OpenTelemetry bridge, so they reach the
	// collector when the host application installs a logger provider. The
	// bridge is a no-op otherwise.
	return slog.New(newFanOutHandler(terminalHandler, otelslog.NewHandler(scopeName)))
}

// LogInfo logs an informational message.
func (t *Telemetry) LogInfo(msg string, args ...any) {
	t.logger.Info(msg, args...)
}

// LogWarn logs a warning message.
func (t *Telemetry) LogWarn(msg string, args ...any) {
	t.logger.Warn(msg, args...)
}

// LogError logs an error message, attaching the error as an attribute.
func (t *Telemetry) LogError(msg string, err error, args ...any) {
	t.logger.Error(msg, append([]any{tint.Err(err)}, args...)...)
}

// NewCounter registers a monotonic observable counter fed by the given
// callback.
func (t *Telemetry) NewCounter(name string, callback func() int64) {
	counter, err := t.meter.Int64ObservableCounter(name)
	if err != nil {
		t.LogError("failed to create counter", err, "counter_name", name)
		return
	}

	if _, err := t.meter.RegisterCallback(func(_ context.Context, obs metric.Observer) error {
		obs.ObserveInt64(counter, callback())
		return nil
	}, counter); err != nil {
		t.LogError("failed to register counter callback", err, "counter_name", name)
	}
}

// NewUpDownCounter registers a non-monotonic observable counter fed by the
// given callback.
func (t *Telemetry) NewUpDownCounter(name string, callback func() int64) {
	counter, err := t.meter.Int64ObservableUpDownCounter(name)
	if err != nil {
		t.LogError("failed to create up/down counter", err, "counter_name", name)
		return
	}

	if _, err := t.meter.RegisterCallback(func(_ context.Context, obs metric.Observer) error {
		obs.ObserveInt64(counter, callback())
		return nil
	}, counter); err != nil {
		t.LogError("failed to register up/down counter callback", err, "counter_name", name)
	}
}

// NewTrace starts a new span.
func (t *Telemetry) NewTrace(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name)
}
