// Package naming provides naming conventions for the artifacts quarry
// derives from machine profiles: libvirt domain names, box-backed boot
// volumes, and seed images.
//
// These naming rules are version-independent and shared across all
// API versions.
package naming

import (
	"fmt"
	"strings"
)

// DomainName returns the libvirt domain name for a profile.
// Format: quarry-{profile} (e.g. "quarry-linux")
func DomainName(profileName string) string {
	return fmt.Sprintf("quarry-%s", profileName)
}

// BoxVolumeName returns the boot volume name derived from a box identifier.
// Slashes in box identifiers (e.g. "ubuntu/bionic64") are flattened to
// hyphens so the result is a valid volume name.
// Format: {flattened-box}.qcow2 (e.g. "ubuntu-bionic64.qcow2")
func BoxVolumeName(box string) string {
	flattened := strings.ToLower(strings.ReplaceAll(box, "/", "-"))
	return fmt.Sprintf("%s.qcow2", flattened)
}

// SeedVolumeName returns the seed image name for a profile.
// Format: {profile}_seed.iso (e.g. "linux_seed.iso")
func SeedVolumeName(profileName string) string {
	return fmt.Sprintf("%s_seed.iso", profileName)
}

// FolderTag returns the filesystem device tag for the nth synced folder of
// a profile. The guest uses the tag as the mount source.
// Format: {profile}-fs{n} (e.g. "linux-fs0")
func FolderTag(profileName string, index int) string {
	return fmt.Sprintf("%s-fs%d", profileName, index)
}
