package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

const (
	// GroupName is the API group for quarry resources.
	GroupName = "quarry.hearthy.dev"

	// Version is the API version.
	Version = "v1alpha1"

	// MachineProfileKind is the kind string for MachineProfile resources.
	MachineProfileKind = "MachineProfile"
)

// NewMachineProfile creates a new MachineProfile with TypeMeta and ObjectMeta defaults.
func NewMachineProfile(name string) *MachineProfile {
	now := Time{Time: time.Now()}

	return &MachineProfile{
		TypeMeta: TypeMeta{
			APIVersion: GroupName + "/" + Version,
			Kind:       MachineProfileKind,
		},
		ObjectMeta: ObjectMeta{
			Name:              name,
			UID:               uuid.New().String(),
			CreationTimestamp: now,
			Generation:        1,
		},
	}
}

// SetDefaultAPIVersion ensures the profile has the correct apiVersion and kind.
// Useful when loading from files that might be missing these fields.
func SetDefaultAPIVersion(profile *MachineProfile) {
	if profile.APIVersion == "" {
		profile.APIVersion = GroupName + "/" + Version
	}
	if profile.Kind == "" {
		profile.Kind = MachineProfileKind
	}
}

// GetProvisioner returns the provisioner with the given name, or nil.
func (p *MachineProfile) GetProvisioner(name string) *ProvisionerSpec {
	for i := range p.Spec.Provisioners {
		if p.Spec.Provisioners[i].Name == name {
			return &p.Spec.Provisioners[i]
		}
	}
	return nil
}

// HasSyncedFolder reports whether the profile declares a folder mounted at
// the given guest path.
func (p *MachineProfile) HasSyncedFolder(guestPath string) bool {
	for _, f := range p.Spec.SyncedFolders {
		if f.GuestPath == guestPath {
			return true
		}
	}
	return false
}

// GetType returns the provisioner type with default fallback.
func (s *ProvisionerSpec) GetType() ProvisionerType {
	if s.Type == "" {
		return ProvisionerShell
	}
	return s.Type
}
