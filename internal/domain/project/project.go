package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Project is one row of the projects collection exactly as the store returned it.
// Name, Status and CreatedAt are read from the row for logging and diagnostics only;
// they are empty when the column is absent, null or not a string. JSON encoding
// always writes the original row, so columns this layer does not know about survive.
type Project struct {
	Name      string
	Status    string
	CreatedAt string

	raw json.RawMessage
}

// Parse builds a Project from a single JSON object row.
func Parse(row []byte) (Project, error) {
	var p Project
	if err := p.UnmarshalJSON(row); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Raw returns the row bytes as received from the store.
func (p Project) Raw() json.RawMessage { return p.raw }

func (p Project) MarshalJSON() ([]byte, error) {
	if p.raw == nil {
		return []byte("null"), nil
	}
	return p.raw, nil
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return fmt.Errorf("project row is not a JSON object")
	}
	p.Name = stringField(fields, "name")
	p.Status = stringField(fields, "status")
	p.CreatedAt = stringField(fields, "created_at")
	p.raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	return nil
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if v, ok := fields[key]; ok {
		_ = json.Unmarshal(v, &s)
	}
	return s
}

// ErrNotConfigured is returned when no backing store credentials are available.
var ErrNotConfigured = errors.New("store not configured")

// StoreError carries a failure reported by the backing store call itself.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }
