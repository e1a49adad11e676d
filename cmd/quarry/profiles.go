package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthy/quarry/internal/output"
	"github.com/hearthy/quarry/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the declared machine profiles",
	Long: `Resolve the settings and print every declared machine profile.

Output formats:
  -o table  Human-readable table (default)
  -o yaml   Full YAML resource definitions
  -o json   Full JSON resource definitions`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate output format
		if err := output.ValidateFormat(outputFormat); err != nil {
			return err
		}

		profiles, err := declareProfiles()
		if err != nil {
			return fmt.Errorf("failed to declare profiles: %w", err)
		}

		formatter, err := output.NewFormatter(output.Options{
			Format:    output.Format(outputFormat),
			NoHeaders: noHeaders,
		})
		if err != nil {
			return err
		}

		result, err := formatter.FormatProfileList(profiles)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		fmt.Print(result)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <profile-name>",
	Short: "Get one declared machine profile",
	Long: `Resolve the settings and print a single declared machine profile.

Output formats:
  -o table  Human-readable table (default)
  -o yaml   Full YAML resource definition
  -o json   Full JSON resource definition`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		// Validate output format
		if err := output.ValidateFormat(outputFormat); err != nil {
			return err
		}

		profiles, err := declareProfiles()
		if err != nil {
			return fmt.Errorf("failed to declare profiles: %w", err)
		}

		selected, err := profile.Get(profiles, profileName)
		if err != nil {
			return err
		}

		formatter, err := output.NewFormatter(output.Options{
			Format:    output.Format(outputFormat),
			NoHeaders: noHeaders,
		})
		if err != nil {
			return err
		}

		result, err := formatter.FormatProfile(selected)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		fmt.Print(result)
		return nil
	},
}
