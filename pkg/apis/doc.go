// Package apis holds versioned types of the scheduler API that jobplan reads
// and writes.
//
//   - plan: job diffs, plan responses, evaluations and deployments
package apis
