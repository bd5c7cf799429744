package v1alpha1

import "time"

// PlanResponse is the scheduler's answer to a plan request.
type PlanResponse struct {
	// JobModifyIndex is passed back on registration so the scheduler can reject
	// the submission if the job changed after planning.
	JobModifyIndex uint64 `json:"JobModifyIndex"`
	// FailedTGAllocs maps task group names to the metrics explaining why some
	// of their allocations could not be placed.
	FailedTGAllocs map[string]*AllocMetric `json:"FailedTGAllocs,omitempty"`
	// CreatedEvals lists evaluations the scheduler would create, such as the
	// follow-up of a rolling update.
	CreatedEvals []*Evaluation `json:"CreatedEvals,omitempty"`
	// Diff is nil when the plan request did not ask for a diff.
	Diff     *JobDiff `json:"Diff,omitempty"`
	Warnings string   `json:"Warnings,omitempty"`
}

// HasFailedAllocations reports whether any task group failed to place.
func (r *PlanResponse) HasFailedAllocations() bool {
	return r != nil && len(r.FailedTGAllocs) > 0
}

// RollingUpdateEval returns the last created evaluation triggered by a rolling
// update, or nil.
func (r *PlanResponse) RollingUpdateEval() *Evaluation {
	if r == nil {
		return nil
	}

	var rolling *Evaluation

	for _, eval := range r.CreatedEvals {
		if eval != nil && eval.TriggeredBy == TriggerRollingUpdate {
			rolling = eval
		}
	}

	return rolling
}

// AllocMetric summarises why allocations of a task group could not be placed.
type AllocMetric struct {
	NodesEvaluated     int            `json:"NodesEvaluated"`
	NodesFiltered      int            `json:"NodesFiltered,omitempty"`
	NodesAvailable     map[string]int `json:"NodesAvailable,omitempty"`
	ClassFiltered      map[string]int `json:"ClassFiltered,omitempty"`
	NodesExhausted     int            `json:"NodesExhausted"`
	ClassExhausted     map[string]int `json:"ClassExhausted,omitempty"`
	DimensionExhausted map[string]int `json:"DimensionExhausted,omitempty"`
	QuotaExhausted     []string       `json:"QuotaExhausted,omitempty"`
	// CoalescedFailures counts failures folded into this record; the number of
	// unplaced allocations is CoalescedFailures+1.
	CoalescedFailures int `json:"CoalescedFailures"`
}

// Evaluation is a scheduler evaluation.
type Evaluation struct {
	ID                string `json:"ID"`
	Status            string `json:"Status,omitempty"`
	StatusDescription string `json:"StatusDescription,omitempty"`
	TriggeredBy       string `json:"TriggeredBy"`
	// Wait is encoded in nanoseconds on the wire.
	Wait         time.Duration `json:"Wait,omitempty"`
	NextEval     string        `json:"NextEval,omitempty"`
	DeploymentID string        `json:"DeploymentID,omitempty"`
}

// Deployment tracks the rollout of a registered job version.
type Deployment struct {
	ID                string `json:"ID"`
	JobID             string `json:"JobID,omitempty"`
	Status            string `json:"Status"`
	StatusDescription string `json:"StatusDescription,omitempty"`
}

// RegisterResponse is returned when a job is registered or deregistered.
type RegisterResponse struct {
	EvalID          string `json:"EvalID"`
	JobModifyIndex  uint64 `json:"JobModifyIndex,omitempty"`
	EvalCreateIndex uint64 `json:"EvalCreateIndex,omitempty"`
	Warnings        string `json:"Warnings,omitempty"`
}

// ValidateResponse carries the result of validating a job.
type ValidateResponse struct {
	Error    string `json:"Error,omitempty"`
	Warnings string `json:"Warnings,omitempty"`
}
