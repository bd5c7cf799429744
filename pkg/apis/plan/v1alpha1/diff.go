package v1alpha1

// JobDiff is the root of a structured job diff.
type JobDiff struct {
	Type       DiffType         `json:"Type"`
	ID         string           `json:"ID"`
	Fields     []*FieldDiff     `json:"Fields,omitempty"`
	Objects    []*ObjectDiff    `json:"Objects,omitempty"`
	TaskGroups []*TaskGroupDiff `json:"TaskGroups,omitempty"`
}

// TaskGroupDiff describes the changes to a single task group.
type TaskGroupDiff struct {
	Type        DiffType      `json:"Type"`
	Name        string        `json:"Name"`
	Annotations []string      `json:"Annotations,omitempty"`
	Fields      []*FieldDiff  `json:"Fields,omitempty"`
	Objects     []*ObjectDiff `json:"Objects,omitempty"`
	Tasks       []*TaskDiff   `json:"Tasks,omitempty"`
	// Updates counts the scheduler's intended actions keyed by kind
	// (for example "create", "destroy", "in-place update").
	Updates map[string]uint64 `json:"Updates,omitempty"`
}

// TaskDiff describes the changes to a single task.
type TaskDiff struct {
	Type        DiffType      `json:"Type"`
	Name        string        `json:"Name"`
	Annotations []string      `json:"Annotations,omitempty"`
	Fields      []*FieldDiff  `json:"Fields,omitempty"`
	Objects     []*ObjectDiff `json:"Objects,omitempty"`
}

// ObjectDiff describes a nested block of fields and objects.
type ObjectDiff struct {
	Type        DiffType      `json:"Type"`
	Name        string        `json:"Name"`
	Annotations []string      `json:"Annotations,omitempty"`
	Fields      []*FieldDiff  `json:"Fields,omitempty"`
	Objects     []*ObjectDiff `json:"Objects,omitempty"`
}

// FieldDiff describes a single scalar value. Old and New hold whatever scalar
// the producer supplied; nil means absent.
type FieldDiff struct {
	Type        DiffType `json:"Type"`
	Name        string   `json:"Name"`
	Old         any      `json:"Old"`
	New         any      `json:"New"`
	Annotations []string `json:"Annotations,omitempty"`
}
