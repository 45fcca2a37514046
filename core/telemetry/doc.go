// Package telemetry publishes audit outcomes to the observability
// pipeline as f5_config_drift events.
//
// The Sink interface decouples the audit service from the delivery
// mechanism. The default LogSink writes each payload to the process log
// as single-line JSON for log forwarders to pick up; an HTTP collector
// sink can be dropped in without touching the audit flow.
//
// Emission is best-effort. A sink failure never aborts an audit run;
// the service records the error and carries on.
package telemetry
