// Package v1alpha1 holds the wire types exchanged with the scheduler's plan
// endpoint: the structured job diff (job → task groups → tasks → fields and
// objects), per-task-group allocation metrics, and the evaluations and
// deployments created when a job is registered.
//
// The types mirror the scheduler's JSON field names so that plan responses can
// be decoded directly, whether they come from the HTTP API or from a saved
// JSON/YAML file.
package v1alpha1
