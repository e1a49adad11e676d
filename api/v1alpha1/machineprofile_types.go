package v1alpha1

// MachineProfile represents a named VM declaration: a base box plus the
// ordered post-boot provisioning steps and synced folders the external VM
// runtime should apply.
//
// This resource is a pure declaration. Quarry never boots or mutates the
// machine itself; the profile exists to be rendered, exported, or handed to
// whatever runtime consumes it.
type MachineProfile struct {
	// TypeMeta contains the API version and kind.
	TypeMeta `json:",inline" yaml:",inline"`

	// ObjectMeta contains metadata like name, labels, annotations.
	// +optional
	ObjectMeta `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Spec defines the declared machine profile.
	Spec MachineProfileSpec `json:"spec" yaml:"spec"`
}

// MachineProfileSpec defines the declared shape of a machine profile.
type MachineProfileSpec struct {
	// Box is the base image identifier the runtime boots from
	// (e.g. "ubuntu/bionic64").
	Box string `json:"box" yaml:"box"`

	// Provisioners is the ordered list of post-boot setup steps.
	// Steps run in declared order; quarry guarantees the order, the
	// runtime executes the steps.
	// +optional
	Provisioners []ProvisionerSpec `json:"provisioners,omitempty" yaml:"provisioners,omitempty"`

	// SyncedFolders is the list of host directories exposed inside the guest.
	// +optional
	SyncedFolders []SyncedFolderSpec `json:"syncedFolders,omitempty" yaml:"syncedFolders,omitempty"`
}

// ProvisionerType identifies how a provisioning step is executed.
type ProvisionerType string

const (
	// ProvisionerShell runs a shell script inside the guest.
	ProvisionerShell ProvisionerType = "shell"
)

// ProvisionerSpec defines one unit of post-boot setup work.
type ProvisionerSpec struct {
	// Name identifies the step within its profile.
	Name string `json:"name" yaml:"name"`

	// Type is the execution kind. Only "shell" is defined today.
	// Defaults to "shell" when loaded from a file.
	// +optional
	Type ProvisionerType `json:"type,omitempty" yaml:"type,omitempty"`

	// Path is the script path, relative to the project root, as seen by
	// the runtime that executes the step.
	Path string `json:"path" yaml:"path"`

	// Privileged runs the step with elevated privileges when true.
	// +optional
	Privileged bool `json:"privileged,omitempty" yaml:"privileged,omitempty"`
}

// SyncedFolderSpec binds a host directory to a guest directory.
type SyncedFolderSpec struct {
	// HostPath is the directory on the host to expose.
	HostPath string `json:"hostPath" yaml:"hostPath"`

	// GuestPath is the mount point inside the guest.
	GuestPath string `json:"guestPath" yaml:"guestPath"`
}
