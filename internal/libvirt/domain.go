package libvirt

import (
	"fmt"

	"libvirt.org/go/libvirtxml"

	"github.com/hearthy/quarry/api/v1alpha1"
	"github.com/hearthy/quarry/internal/naming"
)

const (
	// BoxPool is the libvirt storage pool holding imported base boxes.
	BoxPool = "quarry-boxes"

	// SeedPool is the libvirt storage pool holding generated seed images.
	SeedPool = "quarry-seeds"

	// DefaultVCPUs is the vCPU count for exported domains. Profiles declare
	// provisioning, not sizing, so exports use fixed defaults.
	DefaultVCPUs = 2

	// DefaultMemoryGiB is the memory allocation for exported domains.
	DefaultMemoryGiB = 4
)

// GenerateDomainXML generates libvirt domain XML from a machine profile.
//
// The domain boots from a volume named after the profile's box, attaches the
// profile's seed image as a read-only cdrom, and exposes each synced folder
// as a 9p filesystem passthrough device tagged per naming.FolderTag. The
// result is an export artifact; quarry never defines the domain itself.
func GenerateDomainXML(profile *v1alpha1.MachineProfile) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("machine profile cannot be nil")
	}
	if profile.Spec.Box == "" {
		return "", fmt.Errorf("profile %s declares no box", profile.Name)
	}

	domain := &libvirtxml.Domain{
		Type: "kvm",
		Name: naming.DomainName(profile.Name),
		Memory: &libvirtxml.DomainMemory{
			Value: uint(DefaultMemoryGiB),
			Unit:  "GiB",
		},
		VCPU: &libvirtxml.DomainVCPU{
			Placement: "static",
			Value:     uint(DefaultVCPUs),
		},
		OS: &libvirtxml.DomainOS{
			Type: &libvirtxml.DomainOSType{
				Arch: "x86_64",
				Type: "hvm",
			},
		},
		Features: &libvirtxml.DomainFeatureList{
			ACPI: &libvirtxml.DomainFeature{},
			APIC: &libvirtxml.DomainFeatureAPIC{},
		},
		CPU: &libvirtxml.DomainCPU{
			Mode: "host-model",
			Model: &libvirtxml.DomainCPUModel{
				Fallback: "allow",
			},
		},
		Clock: &libvirtxml.DomainClock{
			Offset: "utc",
			Timer: []libvirtxml.DomainTimer{
				{Name: "rtc", TickPolicy: "catchup"},
				{Name: "pit", TickPolicy: "delay"},
				{Name: "hpet", Present: "no"},
			},
		},
		OnPoweroff: "destroy",
		OnReboot:   "restart",
		OnCrash:    "restart",
		Devices: &libvirtxml.DomainDeviceList{
			MemBalloon: &libvirtxml.DomainMemBalloon{
				Model: "virtio",
			},
			RNGs: []libvirtxml.DomainRNG{
				{
					Model: "virtio",
					Backend: &libvirtxml.DomainRNGBackend{
						Random: &libvirtxml.DomainRNGBackendRandom{
							Device: "/dev/urandom",
						},
					},
				},
			},
		},
	}

	// Boot disk backed by the imported box volume
	bootDisk := libvirtxml.DomainDisk{
		Device: "disk",
		Driver: &libvirtxml.DomainDiskDriver{
			Name:  "qemu",
			Type:  "qcow2",
			Cache: "none",
		},
		Source: &libvirtxml.DomainDiskSource{
			Volume: &libvirtxml.DomainDiskSourceVolume{
				Pool:   BoxPool,
				Volume: naming.BoxVolumeName(profile.Spec.Box),
			},
		},
		Target: &libvirtxml.DomainDiskTarget{
			Dev: "vda",
			Bus: "virtio",
		},
		Boot: &libvirtxml.DomainDeviceBoot{
			Order: 1,
		},
	}
	domain.Devices.Disks = append(domain.Devices.Disks, bootDisk)

	// Seed image carrying the profile's provisioning steps
	if len(profile.Spec.Provisioners) > 0 {
		cdrom := libvirtxml.DomainDisk{
			Device: "cdrom",
			Driver: &libvirtxml.DomainDiskDriver{
				Name: "qemu",
				Type: "raw",
			},
			Source: &libvirtxml.DomainDiskSource{
				Volume: &libvirtxml.DomainDiskSourceVolume{
					Pool:   SeedPool,
					Volume: naming.SeedVolumeName(profile.Name),
				},
			},
			Target: &libvirtxml.DomainDiskTarget{
				Dev: "sda",
				Bus: "sata",
			},
			ReadOnly: &libvirtxml.DomainDiskReadOnly{},
		}
		domain.Devices.Disks = append(domain.Devices.Disks, cdrom)
	}

	// Expose each synced folder as a 9p passthrough filesystem
	for i, folder := range profile.Spec.SyncedFolders {
		fs := libvirtxml.DomainFilesystem{
			AccessMode: "passthrough",
			Source: &libvirtxml.DomainFilesystemSource{
				Mount: &libvirtxml.DomainFilesystemSourceMount{
					Dir: folder.HostPath,
				},
			},
			Target: &libvirtxml.DomainFilesystemTarget{
				Dir: naming.FolderTag(profile.Name, i),
			},
		}
		domain.Devices.Filesystems = append(domain.Devices.Filesystems, fs)
	}

	// Serial console
	domain.Devices.Serials = []libvirtxml.DomainSerial{
		{
			Source: &libvirtxml.DomainChardevSource{
				Pty: &libvirtxml.DomainChardevSourcePty{},
			},
			Target: &libvirtxml.DomainSerialTarget{
				Port: func() *uint { p := uint(0); return &p }(),
			},
		},
	}

	xml, err := domain.Marshal()
	if err != nil {
		return "", fmt.Errorf("failed to marshal domain XML: %w", err)
	}

	return xml, nil
}
