// Package observability wires OpenTelemetry tracing and metrics for userd.
//
// Both providers export over OTLP/HTTP and are registered globally, so
// instrumentation elsewhere (the HTTP telemetry middleware in particular)
// picks them up through the otel package without holding a reference.
//
//	tp, err := observability.InitTracer(ctx, cfg.TracerConfig(name, version, env))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, cfg.MeterConfig(name, version, env))
//	defer mp.Shutdown(ctx)
package observability
