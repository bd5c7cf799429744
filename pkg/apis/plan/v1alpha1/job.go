package v1alpha1

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyJob is returned when decoding a job without an ID.
var ErrEmptyJob = errors.New("job has no ID")

// Job is a parsed job specification. Only the fields the CLI needs are
// decoded; the full document is kept verbatim so it can be sent back to the
// scheduler unchanged.
type Job struct {
	ID   string
	Name string
	Type JobKind

	raw json.RawMessage
}

// UnmarshalJSON decodes the identifying fields and retains the raw document.
func (j *Job) UnmarshalJSON(data []byte) error {
	var head struct {
		ID   string  `json:"ID"`
		Name string  `json:"Name"`
		Type JobKind `json:"Type"`
	}

	err := json.Unmarshal(data, &head)
	if err != nil {
		return fmt.Errorf("decode job: %w", err)
	}

	if head.ID == "" {
		return ErrEmptyJob
	}

	j.ID = head.ID
	j.Name = head.Name
	j.Type = head.Type
	j.raw = append(json.RawMessage(nil), data...)

	return nil
}

// MarshalJSON returns the document the job was decoded from.
func (j *Job) MarshalJSON() ([]byte, error) {
	if j.raw != nil {
		return j.raw, nil
	}

	out, err := json.Marshal(struct {
		ID   string  `json:"ID"`
		Name string  `json:"Name,omitempty"`
		Type JobKind `json:"Type,omitempty"`
	}{j.ID, j.Name, j.Type})
	if err != nil {
		return nil, fmt.Errorf("encode job: %w", err)
	}

	return out, nil
}
