// Package change opens ServiceNow change requests when an audit finds
// drift, gating remediation behind human approval.
//
// Pushing desired state straight onto a production load balancer can
// wipe out in-flight operational changes, so the auditor never writes to
// devices. Instead the Initiator files a change_request ticket carrying
// the full drift detail, and remediation happens only after that request
// is approved.
//
// SimulatedInitiator is the default implementation: it logs the payload
// a real POST would send and fabricates a sys_id, which keeps local runs
// and CI free of ServiceNow credentials.
package change
