package v1alpha1

// DiffType classifies a node of a job diff.
type DiffType string

const (
	// DiffTypeNone marks a node that did not change.
	DiffTypeNone DiffType = "None"
	// DiffTypeAdded marks a node that only exists in the proposed job.
	DiffTypeAdded DiffType = "Added"
	// DiffTypeDeleted marks a node that only exists in the running job.
	DiffTypeDeleted DiffType = "Deleted"
	// DiffTypeEdited marks a node present on both sides with different content.
	DiffTypeEdited DiffType = "Edited"
)

// ValidValues returns the diff types the scheduler emits.
func (DiffType) ValidValues() []string {
	return []string{
		string(DiffTypeNone),
		string(DiffTypeAdded),
		string(DiffTypeDeleted),
		string(DiffTypeEdited),
	}
}

// String returns the wire representation of the diff type.
func (d DiffType) String() string {
	return string(d)
}

// IsUnchanged reports whether the node carries no change. The empty value is
// treated like None.
func (d DiffType) IsUnchanged() bool {
	return d == DiffTypeNone || d == ""
}

// JobKind is the scheduler type of a job.
type JobKind string

const (
	// JobKindService is a long-running service job.
	JobKindService JobKind = "service"
	// JobKindBatch is a run-to-completion job.
	JobKindBatch JobKind = "batch"
	// JobKindSystem runs one allocation on every eligible node.
	JobKindSystem JobKind = "system"
	// JobKindSysBatch is a batch job placed on every eligible node.
	JobKindSysBatch JobKind = "sysbatch"
)

// Evaluation and deployment statuses reported by the scheduler.
const (
	EvalStatusPending   = "pending"
	EvalStatusComplete  = "complete"
	EvalStatusFailed    = "failed"
	EvalStatusCancelled = "canceled"

	// EvalStatusCancelledAlt is the British spelling some scheduler versions report.
	EvalStatusCancelledAlt = "cancelled"

	DeploymentStatusRunning    = "running"
	DeploymentStatusSuccessful = "successful"
	DeploymentStatusFailed     = "failed"
	DeploymentStatusCancelled  = "cancelled"
)

// TriggerRollingUpdate is the TriggeredBy value of evaluations scheduled by a
// rolling update.
const TriggerRollingUpdate = "rolling-update"
