package seed

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hearthy/quarry/api/v1alpha1"
)

func linuxProfile() *v1alpha1.MachineProfile {
	profile := v1alpha1.NewMachineProfile("linux")
	profile.Spec.Box = "ubuntu/bionic64"
	profile.Spec.Provisioners = []v1alpha1.ProvisionerSpec{
		{Name: "install-dependencies", Type: v1alpha1.ProvisionerShell, Path: "vagrant/install_dependencies.sh"},
		{Name: "moqt-setup", Type: v1alpha1.ProvisionerShell, Path: "vagrant/moqt_setup.sh"},
	}
	profile.Spec.SyncedFolders = []v1alpha1.SyncedFolderSpec{
		{HostPath: "/home/user/work", GuestPath: "/home/vagrant/moqt_workspace"},
	}
	return profile
}

func TestGenerateUserData(t *testing.T) {
	got, err := GenerateUserData(linuxProfile())
	if err != nil {
		t.Fatalf("GenerateUserData() error = %v", err)
	}

	if !strings.HasPrefix(got, "#cloud-config\n") {
		t.Errorf("Expected #cloud-config header, got:\n%s", got)
	}

	// The body must parse back as the UserData structure.
	var parsed UserData
	if err := yaml.Unmarshal([]byte(strings.TrimPrefix(got, "#cloud-config\n")), &parsed); err != nil {
		t.Fatalf("user-data does not parse as YAML: %v", err)
	}

	if parsed.Hostname != "linux" {
		t.Errorf("Expected hostname 'linux', got %s", parsed.Hostname)
	}

	// Provisioners run in declared order, non-privileged as the vagrant user.
	if len(parsed.RunCmd) != 2 {
		t.Fatalf("Expected 2 runcmd entries, got %d", len(parsed.RunCmd))
	}
	if parsed.RunCmd[0] != "sudo -u vagrant sh /vagrant/vagrant/install_dependencies.sh" {
		t.Errorf("Unexpected first runcmd: %s", parsed.RunCmd[0])
	}
	if parsed.RunCmd[1] != "sudo -u vagrant sh /vagrant/vagrant/moqt_setup.sh" {
		t.Errorf("Unexpected second runcmd: %s", parsed.RunCmd[1])
	}

	// One mount entry per synced folder.
	if len(parsed.Mounts) != 1 {
		t.Fatalf("Expected 1 mount entry, got %d", len(parsed.Mounts))
	}
	mount := parsed.Mounts[0]
	if mount[0] != "linux-fs0" {
		t.Errorf("Expected mount tag 'linux-fs0', got %s", mount[0])
	}
	if mount[1] != "/home/vagrant/moqt_workspace" {
		t.Errorf("Expected mount point '/home/vagrant/moqt_workspace', got %s", mount[1])
	}
}

func TestGenerateUserData_Privileged(t *testing.T) {
	profile := v1alpha1.NewMachineProfile("linux")
	profile.Spec.Box = "ubuntu/bionic64"
	profile.Spec.Provisioners = []v1alpha1.ProvisionerSpec{
		{Name: "root-setup", Type: v1alpha1.ProvisionerShell, Path: "setup.sh", Privileged: true},
	}

	got, err := GenerateUserData(profile)
	if err != nil {
		t.Fatalf("GenerateUserData() error = %v", err)
	}

	if !strings.Contains(got, "- sh /vagrant/setup.sh") {
		t.Errorf("Expected privileged step to run without user switch, got:\n%s", got)
	}
	if strings.Contains(got, "sudo -u vagrant sh /vagrant/setup.sh") {
		t.Errorf("Privileged step must not be demoted to the vagrant user:\n%s", got)
	}
}

func TestGenerateUserData_NoProvisioners(t *testing.T) {
	profile := v1alpha1.NewMachineProfile("osx")
	profile.Spec.Box = "AndrewDryga/vagrant-box-osx"

	got, err := GenerateUserData(profile)
	if err != nil {
		t.Fatalf("GenerateUserData() error = %v", err)
	}

	if strings.Contains(got, "runcmd") {
		t.Errorf("Expected no runcmd section for profile without provisioners:\n%s", got)
	}
	if strings.Contains(got, "mounts") {
		t.Errorf("Expected no mounts section for profile without folders:\n%s", got)
	}
}

func TestGenerateUserData_Nil(t *testing.T) {
	if _, err := GenerateUserData(nil); err == nil {
		t.Fatal("Expected error for nil profile")
	}
}

func TestGenerateMetaData(t *testing.T) {
	got, err := GenerateMetaData(linuxProfile())
	if err != nil {
		t.Fatalf("GenerateMetaData() error = %v", err)
	}

	var parsed MetaData
	if err := yaml.Unmarshal([]byte(got), &parsed); err != nil {
		t.Fatalf("meta-data does not parse as YAML: %v", err)
	}

	if !strings.HasPrefix(parsed.InstanceID, "quarry-linux-") {
		t.Errorf("Expected instance-id prefixed with domain name, got %s", parsed.InstanceID)
	}
	if parsed.LocalHostname != "linux" {
		t.Errorf("Expected local-hostname 'linux', got %s", parsed.LocalHostname)
	}
}

func TestGenerateMetaData_UniquePerCall(t *testing.T) {
	profile := linuxProfile()

	first, err := GenerateMetaData(profile)
	if err != nil {
		t.Fatalf("GenerateMetaData() error = %v", err)
	}
	second, err := GenerateMetaData(profile)
	if err != nil {
		t.Fatalf("GenerateMetaData() second call error = %v", err)
	}

	if first == second {
		t.Error("Expected distinct instance-ids across generations")
	}
}
