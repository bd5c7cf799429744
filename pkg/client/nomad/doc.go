// Package nomad is a small client for the parts of the Nomad HTTP API that
// planning and deploying a job need: parsing, planning, registering,
// validating and stopping jobs, and reading evaluations and deployments.
package nomad
