package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthy/quarry/api/v1alpha1"
	"github.com/hearthy/quarry/internal/libvirt"
	"github.com/hearthy/quarry/internal/profile"
	"github.com/hearthy/quarry/internal/settings"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	settingsPath  string
	overridesPath string
	outputFormat  string
	noHeaders     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quarry",
	Short: "Quarry - declarative VM profile tool",
	Long: `Quarry resolves layered settings files and declares machine profiles
for an external VM runtime.

Profiles bundle a base box with ordered shell provisioning steps and
optional synced folders. Quarry renders and exports the declarations; it
never boots or mutates machines itself.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", settings.DefaultDocumentPath, "path to the default settings document")
	rootCmd.PersistentFlags().StringVar(&overridesPath, "overrides", settings.OverrideDocumentPath, "path to the optional override settings document")

	profilesCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, yaml, json)")
	profilesCmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit headers in table output")
	getCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, yaml, json)")
	getCmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit headers in table output")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(testConnCmd)
}

// resolveSettings loads the merged settings and prints any informational
// notices before handing the document back.
func resolveSettings() (settings.Document, error) {
	merged, notices, err := settings.Resolve(settingsPath, overridesPath)
	if err != nil {
		return nil, err
	}
	for _, notice := range notices {
		fmt.Println(notice)
	}
	return merged, nil
}

// declareProfiles resolves settings and builds the profile declarations,
// printing declaration notices as they surface.
func declareProfiles() ([]*v1alpha1.MachineProfile, error) {
	merged, err := resolveSettings()
	if err != nil {
		return nil, err
	}

	profiles, notices := profile.Declare(merged)
	for _, notice := range notices {
		fmt.Println(notice)
	}
	return profiles, nil
}

var testConnCmd = &cobra.Command{
	Use:   "test-conn",
	Short: "Test libvirt connection",
	Long:  `Test connectivity to the libvirt daemon and display version information.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Testing libvirt connection...")

		client, err := libvirt.Connect("", 5*time.Second)
		if err != nil {
			return fmt.Errorf("failed to connect to libvirt: %w", err)
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close libvirt connection: %v\n", closeErr)
			}
		}()

		fmt.Println("✓ Connected to libvirt daemon")

		version, err := client.Version()
		if err != nil {
			return fmt.Errorf("failed to get libvirt version: %w", err)
		}

		// Version is encoded as major*1000000 + minor*1000 + release
		fmt.Printf("✓ Libvirt version: %d.%d.%d\n",
			version/1000000, (version/1000)%1000, version%1000)
		return nil
	},
}
