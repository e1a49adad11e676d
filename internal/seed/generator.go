// Package seed generates cloud-init NoCloud seed data for machine profiles.
//
// The seed carries the profile's provisioning steps as a cloud-config
// runcmd sequence and mounts its synced folders, so a runtime that attaches
// the seed image reproduces the declared post-boot setup. Quarry only
// generates the artifact; it never boots the machine.
//
// See https://cloudinit.readthedocs.io/en/latest/reference/datasources/nocloud.html
package seed

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hearthy/quarry/api/v1alpha1"
	"github.com/hearthy/quarry/internal/naming"
)

// ProjectGuestPath is where the runtime exposes the project root inside the
// guest. Provisioner script paths are relative to it.
const ProjectGuestPath = "/vagrant"

// UserData represents the cloud-config user-data structure.
// This is marshaled to YAML and prefixed with "#cloud-config" header.
//
// See https://cloudinit.readthedocs.io/en/latest/explanation/format.html#cloud-config-data
type UserData struct {
	Hostname string     `yaml:"hostname"`
	Mounts   [][]string `yaml:"mounts,omitempty"`
	RunCmd   []string   `yaml:"runcmd,omitempty"`
	Output   *Output    `yaml:"output,omitempty"`
}

// Output configures cloud-init output logging.
type Output struct {
	All string `yaml:"all"`
}

// MetaData represents the cloud-init meta-data structure.
type MetaData struct {
	InstanceID    string `yaml:"instance-id"`
	LocalHostname string `yaml:"local-hostname"`
}

// GenerateUserData generates the user-data YAML content for a profile.
//
// Provisioners become runcmd entries in declared order; non-privileged steps
// run as the vagrant user, privileged ones as root (cloud-init's default).
// Synced folders become 9p mount entries keyed by their filesystem tag.
//
// Returns the complete user-data file content including the "#cloud-config" header.
func GenerateUserData(profile *v1alpha1.MachineProfile) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("machine profile cannot be nil")
	}

	userData := UserData{
		Hostname: profile.Name,
		Output: &Output{
			All: "| tee -a /var/log/cloud-init-output.log",
		},
	}

	for i, folder := range profile.Spec.SyncedFolders {
		userData.Mounts = append(userData.Mounts, []string{
			naming.FolderTag(profile.Name, i),
			folder.GuestPath,
			"9p",
			"trans=virtio,rw",
			"0",
			"0",
		})
	}

	for _, step := range profile.Spec.Provisioners {
		script := fmt.Sprintf("%s/%s", ProjectGuestPath, step.Path)
		if step.Privileged {
			userData.RunCmd = append(userData.RunCmd, fmt.Sprintf("sh %s", script))
		} else {
			userData.RunCmd = append(userData.RunCmd, fmt.Sprintf("sudo -u vagrant sh %s", script))
		}
	}

	data, err := yaml.Marshal(&userData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user-data: %w", err)
	}

	return "#cloud-config\n" + string(data), nil
}

// GenerateMetaData generates the meta-data YAML content for a profile.
//
// The instance-id is unique per generation so cloud-init reruns the seed on
// every fresh boot of a regenerated image.
func GenerateMetaData(profile *v1alpha1.MachineProfile) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("machine profile cannot be nil")
	}

	metaData := MetaData{
		InstanceID:    fmt.Sprintf("%s-%s", naming.DomainName(profile.Name), uuid.New().String()),
		LocalHostname: profile.Name,
	}

	data, err := yaml.Marshal(&metaData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal meta-data: %w", err)
	}

	return string(data), nil
}
