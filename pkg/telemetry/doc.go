// Package telemetry provides observability instrumentation for the
// rolodex assistant: structured logging (zerolog), metrics (Prometheus),
// and tracing (OpenTelemetry).
//
// Initialize telemetry at application startup:
//
//	logger, err := telemetry.NewLogger(cfg.Logging)
//	if err != nil {
//	    return err
//	}
//	metrics, err := telemetry.NewMetrics(cfg.Metrics)
//	if err != nil {
//	    return err
//	}
//	tracer, err := telemetry.NewTracer(cfg.Tracing, "rolodex", version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(ctx)
//
// All three are cheap no-ops when disabled, so the interactive session
// pays nothing for instrumentation it does not use.
package telemetry
