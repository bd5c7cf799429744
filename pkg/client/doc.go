// Package client provides the scheduler HTTP client.
//
//   - nomad: typed access to the job, evaluation and deployment endpoints
//   - netretry: classification of transient transport and API errors
package client
