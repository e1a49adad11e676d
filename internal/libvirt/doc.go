// Package libvirt provides a client wrapper for interacting with libvirt.
//
// This package wraps github.com/digitalocean/go-libvirt to provide:
//   - Connection management (connect, disconnect, ping)
//   - Domain XML generation from MachineProfile declarations
//
// Quarry never defines or starts domains itself; the generated XML is an
// export artifact for runtimes that consume profiles through libvirt, and
// the connection wrapper exists for the read-only test-conn check.
//
// Connection Management:
//
// The package establishes connections to the local libvirt daemon via Unix socket:
//
//	client, err := libvirt.Connect("", 0)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	// Check connection
//	if err := client.Ping(); err != nil {
//	    return err
//	}
//
// Domain XML Generation:
//
// The package generates libvirt domain XML from MachineProfile declarations:
//
//	profile := v1alpha1.NewMachineProfile("linux")
//	profile.Spec.Box = "ubuntu/bionic64"
//
//	xml, err := libvirt.GenerateDomainXML(profile)
//	if err != nil {
//	    return err
//	}
package libvirt
