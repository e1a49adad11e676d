// Package loader provides functions for loading MachineProfile resources
// from YAML files.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hearthy/quarry/api/v1alpha1"
)

// LoadFromFile loads a MachineProfile resource from a YAML file.
// The file must be in the quarry.hearthy.dev/v1alpha1 format.
func LoadFromFile(path string) (*v1alpha1.MachineProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML loads a MachineProfile resource from YAML bytes.
// The YAML must be in the quarry.hearthy.dev/v1alpha1 format.
func LoadFromYAML(data []byte) (*v1alpha1.MachineProfile, error) {
	var profile v1alpha1.MachineProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	// Validate that apiVersion and kind are present
	if profile.APIVersion == "" {
		return nil, fmt.Errorf("missing required field: apiVersion")
	}
	if profile.Kind == "" {
		return nil, fmt.Errorf("missing required field: kind")
	}

	// Validate apiVersion matches expected
	expectedAPIVersion := v1alpha1.GroupName + "/" + v1alpha1.Version
	if profile.APIVersion != expectedAPIVersion {
		return nil, fmt.Errorf("unsupported apiVersion: %s (expected: %s)", profile.APIVersion, expectedAPIVersion)
	}

	// Validate kind
	if profile.Kind != v1alpha1.MachineProfileKind {
		return nil, fmt.Errorf("unsupported kind: %s (expected: %s)", profile.Kind, v1alpha1.MachineProfileKind)
	}

	// Set defaults for fields that may be omitted
	applyDefaults(&profile)

	// Validate the spec
	if err := validateSpec(&profile); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &profile, nil
}

// SaveToFile saves a MachineProfile resource to a YAML file.
func SaveToFile(profile *v1alpha1.MachineProfile, path string) error {
	// Ensure TypeMeta is set
	v1alpha1.SetDefaultAPIVersion(profile)

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}

// applyDefaults sets default values for optional fields.
func applyDefaults(profile *v1alpha1.MachineProfile) {
	for i := range profile.Spec.Provisioners {
		if profile.Spec.Provisioners[i].Type == "" {
			profile.Spec.Provisioners[i].Type = v1alpha1.ProvisionerShell
		}
	}
}

// validateSpec validates the MachineProfile spec for required fields and consistency.
func validateSpec(profile *v1alpha1.MachineProfile) error {
	// Validate metadata.name
	if profile.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}

	// Validate box
	if profile.Spec.Box == "" {
		return fmt.Errorf("spec.box is required")
	}

	// Validate provisioners
	namesSeen := make(map[string]bool)
	for i, step := range profile.Spec.Provisioners {
		if step.Name == "" {
			return fmt.Errorf("spec.provisioners[%d].name is required", i)
		}
		if step.Type != v1alpha1.ProvisionerShell {
			return fmt.Errorf("spec.provisioners[%d].type %q is not supported (only: shell)", i, step.Type)
		}
		if step.Path == "" {
			return fmt.Errorf("spec.provisioners[%d].path is required", i)
		}
		if namesSeen[step.Name] {
			return fmt.Errorf("spec.provisioners[%d].name %q is duplicated", i, step.Name)
		}
		namesSeen[step.Name] = true
	}

	// Validate synced folders
	guestsSeen := make(map[string]bool)
	for i, folder := range profile.Spec.SyncedFolders {
		if folder.HostPath == "" {
			return fmt.Errorf("spec.syncedFolders[%d].hostPath is required", i)
		}
		if folder.GuestPath == "" {
			return fmt.Errorf("spec.syncedFolders[%d].guestPath is required", i)
		}
		if guestsSeen[folder.GuestPath] {
			return fmt.Errorf("spec.syncedFolders[%d].guestPath %q is duplicated", i, folder.GuestPath)
		}
		guestsSeen[folder.GuestPath] = true
	}

	return nil
}
