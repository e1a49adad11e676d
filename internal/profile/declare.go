// Package profile holds quarry's static machine profile declarations.
//
// Two profiles exist: "osx" (base box only) and "linux" (base box, two
// ordered shell provisioners, and an optional workspace folder driven by the
// merged settings). The declarations are consumed by an external VM runtime;
// this package never executes anything.
package profile

import (
	"fmt"

	"github.com/hearthy/quarry/api/v1alpha1"
	"github.com/hearthy/quarry/internal/settings"
)

const (
	// WorkspaceSettingKey is the settings key holding the host-side path of
	// the linux profile's workspace folder.
	WorkspaceSettingKey = "moqt_workspace_path"

	// GuestWorkspacePath is where the workspace folder is mounted inside
	// the linux guest.
	GuestWorkspacePath = "/home/vagrant/moqt_workspace"

	// OSXBox is the base box for the osx profile.
	OSXBox = "AndrewDryga/vagrant-box-osx"

	// LinuxBox is the base box for the linux profile.
	LinuxBox = "ubuntu/bionic64"
)

// Declare builds the machine profile declarations from the merged settings.
//
// The osx profile is fixed. The linux profile declares its two provisioners
// in order (dependency installation before the main setup), then consults
// the settings for WorkspaceSettingKey: a non-empty value adds a synced
// folder from that host path to GuestWorkspacePath, an absent value adds an
// informational notice instead.
//
// Declaration never fails; missing scripts and unreachable host paths are
// the consuming runtime's problem.
func Declare(merged settings.Document) ([]*v1alpha1.MachineProfile, []string) {
	var notices []string

	osx := v1alpha1.NewMachineProfile("osx")
	osx.Spec.Box = OSXBox

	linux := v1alpha1.NewMachineProfile("linux")
	linux.Spec.Box = LinuxBox
	linux.Spec.Provisioners = []v1alpha1.ProvisionerSpec{
		{
			Name: "install-dependencies",
			Type: v1alpha1.ProvisionerShell,
			Path: "vagrant/install_dependencies.sh",
		},
		{
			Name: "moqt-setup",
			Type: v1alpha1.ProvisionerShell,
			Path: "vagrant/moqt_setup.sh",
		},
	}

	if hostPath, ok := settings.StringValue(merged, WorkspaceSettingKey); ok {
		linux.Spec.SyncedFolders = []v1alpha1.SyncedFolderSpec{
			{HostPath: hostPath, GuestPath: GuestWorkspacePath},
		}
	} else {
		notices = append(notices, fmt.Sprintf("%s is not set, the linux profile gets no workspace folder", WorkspaceSettingKey))
	}

	return []*v1alpha1.MachineProfile{osx, linux}, notices
}

// Get returns the declared profile with the given name, or an error naming
// the available profiles.
func Get(profiles []*v1alpha1.MachineProfile, name string) (*v1alpha1.MachineProfile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return nil, fmt.Errorf("unknown profile %q (declared profiles: %v)", name, names)
}
