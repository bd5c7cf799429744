// Package svc provides the service layer between the commands and the
// scheduler client.
//
// Subpackages:
//   - formatter: text rendering of plan diffs and dry-run summaries
//   - jobspec: placeholder expansion of job files
//   - planner: concurrent planning of job files
//   - monitor: evaluation and deployment polling
package svc
