package seed

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/kdomanski/iso9660"
)

func TestGenerateISO(t *testing.T) {
	isoBytes, err := GenerateISO(linuxProfile())
	if err != nil {
		t.Fatalf("GenerateISO() error = %v", err)
	}
	if len(isoBytes) == 0 {
		t.Fatal("GenerateISO() returned empty byte slice")
	}

	img, err := iso9660.OpenImage(bytes.NewReader(isoBytes))
	if err != nil {
		t.Fatalf("failed to open ISO image: %v", err)
	}

	// The volume identifier must be exactly "CIDATA" for the NoCloud
	// datasource to pick the seed up.
	volumeID, err := img.Label()
	if err != nil {
		t.Fatalf("failed to get volume label: %v", err)
	}
	if volumeID != "CIDATA" {
		t.Errorf("ISO volume identifier = %q, want %q", volumeID, "CIDATA")
	}

	rootDir, err := img.RootDir()
	if err != nil {
		t.Fatalf("failed to get root directory: %v", err)
	}
	children, err := rootDir.GetChildren()
	if err != nil {
		t.Fatalf("failed to get children: %v", err)
	}

	if len(children) != 2 {
		t.Errorf("ISO contains %d files, want 2", len(children))
	}

	contents := map[string]string{}
	for _, child := range children {
		content, err := readISOFile(child)
		if err != nil {
			t.Fatalf("failed to read %s: %v", child.Name(), err)
		}
		contents[child.Name()] = content
	}

	userData, ok := contents["user-data"]
	if !ok {
		t.Fatal("required file 'user-data' not found in ISO")
	}
	if !strings.HasPrefix(userData, "#cloud-config\n") {
		t.Errorf("user-data missing #cloud-config header:\n%s", userData)
	}
	if !strings.Contains(userData, "install_dependencies.sh") {
		t.Errorf("user-data missing provisioner command:\n%s", userData)
	}

	metaData, ok := contents["meta-data"]
	if !ok {
		t.Fatal("required file 'meta-data' not found in ISO")
	}
	if !strings.Contains(metaData, "local-hostname: linux") {
		t.Errorf("meta-data missing local-hostname:\n%s", metaData)
	}
	if !strings.Contains(metaData, "instance-id: quarry-linux-") {
		t.Errorf("meta-data missing instance-id:\n%s", metaData)
	}
}

func TestGenerateISO_Nil(t *testing.T) {
	_, err := GenerateISO(nil)
	if err == nil {
		t.Fatal("Expected error for nil profile")
	}
	if err.Error() != "machine profile cannot be nil" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// readISOFile reads the content of a file from the ISO image
func readISOFile(file *iso9660.File) (string, error) {
	reader := file.Reader()
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
