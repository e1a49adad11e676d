package libvirt

import (
	"strings"
	"testing"

	"libvirt.org/go/libvirtxml"

	"github.com/hearthy/quarry/api/v1alpha1"
)

func linuxProfile() *v1alpha1.MachineProfile {
	return &v1alpha1.MachineProfile{
		ObjectMeta: v1alpha1.ObjectMeta{Name: "linux"},
		Spec: v1alpha1.MachineProfileSpec{
			Box: "ubuntu/bionic64",
			Provisioners: []v1alpha1.ProvisionerSpec{
				{Name: "install-dependencies", Type: v1alpha1.ProvisionerShell, Path: "vagrant/install_dependencies.sh"},
				{Name: "moqt-setup", Type: v1alpha1.ProvisionerShell, Path: "vagrant/moqt_setup.sh"},
			},
			SyncedFolders: []v1alpha1.SyncedFolderSpec{
				{HostPath: "/home/user/work", GuestPath: "/home/vagrant/moqt_workspace"},
			},
		},
	}
}

func TestGenerateDomainXML(t *testing.T) {
	xml, err := GenerateDomainXML(linuxProfile())
	if err != nil {
		t.Fatalf("GenerateDomainXML() error = %v", err)
	}

	// Round-trip through libvirtxml to validate structure
	var domain libvirtxml.Domain
	if err := domain.Unmarshal(xml); err != nil {
		t.Fatalf("Generated XML does not parse: %v", err)
	}

	if domain.Name != "quarry-linux" {
		t.Errorf("Expected domain name 'quarry-linux', got %s", domain.Name)
	}
	if domain.Type != "kvm" {
		t.Errorf("Expected domain type 'kvm', got %s", domain.Type)
	}

	// Boot disk backed by the box volume
	if len(domain.Devices.Disks) != 2 {
		t.Fatalf("Expected boot disk + seed cdrom, got %d disks", len(domain.Devices.Disks))
	}
	boot := domain.Devices.Disks[0]
	if boot.Source == nil || boot.Source.Volume == nil {
		t.Fatal("Expected volume-backed boot disk")
	}
	if boot.Source.Volume.Pool != "quarry-boxes" {
		t.Errorf("Expected boot pool 'quarry-boxes', got %s", boot.Source.Volume.Pool)
	}
	if boot.Source.Volume.Volume != "ubuntu-bionic64.qcow2" {
		t.Errorf("Expected box volume 'ubuntu-bionic64.qcow2', got %s", boot.Source.Volume.Volume)
	}

	// Seed cdrom is read-only and comes from the seed pool
	seed := domain.Devices.Disks[1]
	if seed.Device != "cdrom" {
		t.Errorf("Expected second disk to be cdrom, got %s", seed.Device)
	}
	if seed.ReadOnly == nil {
		t.Error("Expected seed cdrom to be read-only")
	}
	if seed.Source.Volume.Volume != "linux_seed.iso" {
		t.Errorf("Expected seed volume 'linux_seed.iso', got %s", seed.Source.Volume.Volume)
	}

	// One filesystem passthrough per synced folder
	if len(domain.Devices.Filesystems) != 1 {
		t.Fatalf("Expected 1 filesystem device, got %d", len(domain.Devices.Filesystems))
	}
	fs := domain.Devices.Filesystems[0]
	if fs.Source == nil || fs.Source.Mount == nil || fs.Source.Mount.Dir != "/home/user/work" {
		t.Errorf("Expected filesystem source '/home/user/work', got %+v", fs.Source)
	}
	if fs.Target == nil || fs.Target.Dir != "linux-fs0" {
		t.Errorf("Expected filesystem tag 'linux-fs0', got %+v", fs.Target)
	}
}

func TestGenerateDomainXML_NoProvisioners(t *testing.T) {
	profile := &v1alpha1.MachineProfile{
		ObjectMeta: v1alpha1.ObjectMeta{Name: "osx"},
		Spec: v1alpha1.MachineProfileSpec{
			Box: "AndrewDryga/vagrant-box-osx",
		},
	}

	xml, err := GenerateDomainXML(profile)
	if err != nil {
		t.Fatalf("GenerateDomainXML() error = %v", err)
	}

	var domain libvirtxml.Domain
	if err := domain.Unmarshal(xml); err != nil {
		t.Fatalf("Generated XML does not parse: %v", err)
	}

	// No provisioners means no seed cdrom
	if len(domain.Devices.Disks) != 1 {
		t.Errorf("Expected only the boot disk, got %d disks", len(domain.Devices.Disks))
	}
	if len(domain.Devices.Filesystems) != 0 {
		t.Errorf("Expected no filesystem devices, got %d", len(domain.Devices.Filesystems))
	}
}

func TestGenerateDomainXML_Invalid(t *testing.T) {
	if _, err := GenerateDomainXML(nil); err == nil {
		t.Fatal("Expected error for nil profile")
	}

	noBox := &v1alpha1.MachineProfile{
		ObjectMeta: v1alpha1.ObjectMeta{Name: "linux"},
	}
	_, err := GenerateDomainXML(noBox)
	if err == nil {
		t.Fatal("Expected error for profile without box")
	}
	if !strings.Contains(err.Error(), "box") {
		t.Errorf("Expected error to mention the missing box, got: %v", err)
	}
}
