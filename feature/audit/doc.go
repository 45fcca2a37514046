// Package audit runs the configuration drift audit for an F5 device.
//
// The service loads the desired-state document (the gold standard) and
// the actual-state snapshot, compares them with the reconcile engine,
// and drives the two integrations every run feeds: a telemetry event is
// always emitted, and a ServiceNow change request is opened when and
// only when drift was found. Loading failures abort the run; integration
// failures do not, since the comparison outcome is still valid and worth
// reporting.
//
// Concurrent triggers collapse into a single run via singleflight, and
// the most recent result is cached for the latest endpoint.
//
// # HTTP Endpoints
//
//   - POST /audit/run : Runs a full audit and returns the report.
//   - GET /audit/latest : Returns the most recent completed run.
//   - GET /audit/config : Shows which documents the audit compares.
//   - GET /audit/documents : Lists state documents published to the bucket.
package audit
