package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hearthy/quarry/internal/libvirt"
	"github.com/hearthy/quarry/internal/loader"
	"github.com/hearthy/quarry/internal/naming"
	"github.com/hearthy/quarry/internal/profile"
	"github.com/hearthy/quarry/internal/seed"
)

var (
	exportFile string
	seedFile   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "output-file", "f", "", "write the domain XML to a file instead of stdout")
	seedCmd.Flags().StringVarP(&seedFile, "output-file", "f", "", "seed image path (default <profile>_seed.iso)")
}

var exportCmd = &cobra.Command{
	Use:   "export <profile-name>",
	Short: "Export a profile as libvirt domain XML",
	Long: `Resolve the settings, declare the named profile, and render it as
libvirt domain XML.

The XML references the profile's box volume, its generated seed image, and
one filesystem passthrough device per synced folder. Quarry only renders
the document; defining and starting the domain is the consumer's job.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		profiles, err := declareProfiles()
		if err != nil {
			return fmt.Errorf("failed to declare profiles: %w", err)
		}

		selected, err := profile.Get(profiles, profileName)
		if err != nil {
			return err
		}

		xml, err := libvirt.GenerateDomainXML(selected)
		if err != nil {
			return fmt.Errorf("failed to generate domain XML: %w", err)
		}

		if exportFile == "" {
			fmt.Println(xml)
			return nil
		}

		if err := os.WriteFile(exportFile, []byte(xml+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportFile, err)
		}
		fmt.Printf("✓ Wrote domain XML to %s\n", exportFile)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed <profile-name>",
	Short: "Generate a cloud-init seed image for a profile",
	Long: `Resolve the settings, declare the named profile, and write a cloud-init
NoCloud seed image carrying its provisioning steps and folder mounts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		profiles, err := declareProfiles()
		if err != nil {
			return fmt.Errorf("failed to declare profiles: %w", err)
		}

		selected, err := profile.Get(profiles, profileName)
		if err != nil {
			return err
		}

		isoBytes, err := seed.GenerateISO(selected)
		if err != nil {
			return fmt.Errorf("failed to generate seed image: %w", err)
		}

		path := seedFile
		if path == "" {
			path = naming.SeedVolumeName(selected.Name)
		}

		if err := os.WriteFile(path, isoBytes, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("✓ Wrote seed image to %s\n", path)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <profile.yaml>",
	Short: "Validate a saved machine profile file",
	Long: `Load a MachineProfile YAML file and check it against the
quarry.hearthy.dev/v1alpha1 schema.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		loaded, err := loader.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("invalid profile file %s: %w", path, err)
		}

		fmt.Printf("✓ %s is a valid %s (%d provisioners, %d synced folders)\n",
			path, loaded.Kind, len(loaded.Spec.Provisioners), len(loaded.Spec.SyncedFolders))
		return nil
	},
}
