package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hearthy/quarry/api/v1alpha1"
)

// JSONFormatter formats resources as JSON.
type JSONFormatter struct{}

// FormatProfile formats a single MachineProfile as JSON.
func (f *JSONFormatter) FormatProfile(profile *v1alpha1.MachineProfile) (string, error) {
	// Ensure TypeMeta is set
	v1alpha1.SetDefaultAPIVersion(profile)

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile to JSON: %w", err)
	}

	return string(data) + "\n", nil
}

// FormatProfileList formats a list of MachineProfiles as JSON.
// Outputs as a JSON array.
func (f *JSONFormatter) FormatProfileList(profiles []*v1alpha1.MachineProfile) (string, error) {
	if len(profiles) == 0 {
		return "[]\n", nil
	}

	// Ensure TypeMeta is set for all profiles
	for _, profile := range profiles {
		v1alpha1.SetDefaultAPIVersion(profile)
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal profiles to JSON: %w", err)
	}

	return string(data) + "\n", nil
}

// FormatProfileListAsItems formats a list of MachineProfiles as a JSON object
// with an items array. This mimics Kubernetes List format:
//
//	{
//	  "apiVersion": "quarry.hearthy.dev/v1alpha1",
//	  "kind": "MachineProfileList",
//	  "items": [...]
//	}
func (f *JSONFormatter) FormatProfileListAsItems(profiles []*v1alpha1.MachineProfile) (string, error) {
	// Ensure TypeMeta is set for all profiles
	for _, profile := range profiles {
		v1alpha1.SetDefaultAPIVersion(profile)
	}

	// Create a wrapper object
	wrapper := map[string]interface{}{
		"apiVersion": v1alpha1.GroupName + "/" + v1alpha1.Version,
		"kind":       "MachineProfileList",
		"items":      profiles,
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(wrapper); err != nil {
		return "", fmt.Errorf("failed to marshal profile list to JSON: %w", err)
	}

	return buf.String(), nil
}
