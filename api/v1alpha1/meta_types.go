// Package v1alpha1 contains API types for quarry.hearthy.dev/v1alpha1
//
// These types are hand-rolled to match Kubernetes API conventions without
// requiring k8s.io/apimachinery dependencies. Field names and JSON tags match
// the apimachinery equivalents, so a later migration stays mechanical.
package v1alpha1

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// TypeMeta describes an individual object's type and API version.
// Matches k8s.io/apimachinery/pkg/apis/meta/v1.TypeMeta for future compatibility.
type TypeMeta struct {
	// Kind is a string value representing the REST resource this object represents.
	// In CamelCase.
	// +optional
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion defines the versioned schema of this representation of an object.
	// +optional
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
}

// ObjectMeta is metadata that all persisted resources must have.
// Simplified version matching core Kubernetes fields.
type ObjectMeta struct {
	// Name must be unique among declared profiles.
	// +optional
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Labels are key/value pairs attached to objects.
	// +optional
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Annotations are unstructured key/value pairs that may be set by external tools.
	// +optional
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	// CreationTimestamp is a timestamp representing the time this object was declared.
	// Populated by the system. Read-only.
	// +optional
	CreationTimestamp Time `json:"creationTimestamp,omitempty" yaml:"creationTimestamp,omitempty"`

	// UID is the unique identifier for this object.
	// Populated by the system. Read-only.
	// +optional
	UID string `json:"uid,omitempty" yaml:"uid,omitempty"`

	// Generation is a sequence number representing a specific generation of the declaration.
	// Populated by the system. Read-only.
	// +optional
	Generation int64 `json:"generation,omitempty" yaml:"generation,omitempty"`
}

// Time is a wrapper around time.Time for RFC3339 JSON/YAML serialization.
// Matches k8s.io/apimachinery/pkg/apis/meta/v1.Time behavior.
type Time struct {
	time.Time `json:"-" yaml:"-"`
}

// MarshalJSON implements the json.Marshaler interface.
// Returns RFC3339 formatted timestamp or null for zero values.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Parses RFC3339 formatted timestamp or null.
func (t *Time) UnmarshalJSON(b []byte) error {
	if string(b) == "null" || string(b) == `""` {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (t Time) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time.Format(time.RFC3339), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (t *Time) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" || node.Value == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, node.Value)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// DeepCopy creates a deep copy of TypeMeta.
func (in *TypeMeta) DeepCopy() *TypeMeta {
	if in == nil {
		return nil
	}
	out := new(TypeMeta)
	*out = *in
	return out
}

// DeepCopy creates a deep copy of ObjectMeta.
func (in *ObjectMeta) DeepCopy() *ObjectMeta {
	if in == nil {
		return nil
	}
	out := new(ObjectMeta)
	*out = *in

	// Deep copy maps
	if in.Labels != nil {
		out.Labels = make(map[string]string, len(in.Labels))
		for k, v := range in.Labels {
			out.Labels[k] = v
		}
	}
	if in.Annotations != nil {
		out.Annotations = make(map[string]string, len(in.Annotations))
		for k, v := range in.Annotations {
			out.Annotations[k] = v
		}
	}

	return out
}

// DeepCopy creates a deep copy of Time.
func (in *Time) DeepCopy() *Time {
	if in == nil {
		return nil
	}
	out := new(Time)
	*out = *in
	return out
}
