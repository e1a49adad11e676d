package output

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hearthy/quarry/api/v1alpha1"
)

// YAMLFormatter formats resources as YAML.
type YAMLFormatter struct{}

// FormatProfile formats a single MachineProfile as YAML.
func (f *YAMLFormatter) FormatProfile(profile *v1alpha1.MachineProfile) (string, error) {
	// Ensure TypeMeta is set
	v1alpha1.SetDefaultAPIVersion(profile)

	data, err := yaml.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile to YAML: %w", err)
	}

	return string(data), nil
}

// FormatProfileList formats a list of MachineProfiles as YAML.
// Outputs as a YAML stream (multiple documents separated by ---).
func (f *YAMLFormatter) FormatProfileList(profiles []*v1alpha1.MachineProfile) (string, error) {
	if len(profiles) == 0 {
		return "", nil
	}

	var buf bytes.Buffer

	for i, profile := range profiles {
		// Ensure TypeMeta is set
		v1alpha1.SetDefaultAPIVersion(profile)

		data, err := yaml.Marshal(profile)
		if err != nil {
			return "", fmt.Errorf("failed to marshal profile %s to YAML: %w", profile.Name, err)
		}

		// Add document separator between profiles (but not before the first one)
		if i > 0 {
			buf.WriteString("---\n")
		}

		buf.Write(data)
	}

	return buf.String(), nil
}
