package seed

import (
	"bytes"
	"fmt"

	"github.com/kdomanski/iso9660"

	"github.com/hearthy/quarry/api/v1alpha1"
)

// GenerateISO creates a cloud-init NoCloud seed image for a machine profile.
//
// The generated ISO contains two files in the root directory:
//   - user-data: Cloud-config YAML running the profile's provisioners
//   - meta-data: Instance metadata (instance-id, local-hostname)
//
// The ISO volume label is set to "CIDATA" as required by the cloud-init
// NoCloud datasource.
//
// Returns the ISO image as a byte slice, ready to be written to disk or
// attached by the consuming runtime.
func GenerateISO(profile *v1alpha1.MachineProfile) ([]byte, error) {
	if profile == nil {
		return nil, fmt.Errorf("machine profile cannot be nil")
	}

	userData, err := GenerateUserData(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate user-data: %w", err)
	}

	metaData, err := GenerateMetaData(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate meta-data: %w", err)
	}

	writer, err := iso9660.NewWriter()
	if err != nil {
		return nil, fmt.Errorf("failed to create ISO writer: %w", err)
	}
	defer func() {
		// Cleanup temporary files created by the ISO writer. The ISO has
		// already been generated at this point, so errors are ignored.
		_ = writer.Cleanup()
	}()

	if err := writer.AddFile(bytes.NewReader([]byte(userData)), "user-data"); err != nil {
		return nil, fmt.Errorf("failed to add user-data: %w", err)
	}

	if err := writer.AddFile(bytes.NewReader([]byte(metaData)), "meta-data"); err != nil {
		return nil, fmt.Errorf("failed to add meta-data: %w", err)
	}

	var buf bytes.Buffer

	// The volume identifier must be "CIDATA", uppercase, per the NoCloud
	// specification.
	if err := writer.WriteTo(&buf, "CIDATA"); err != nil {
		return nil, fmt.Errorf("failed to write ISO image: %w", err)
	}

	return buf.Bytes(), nil
}
