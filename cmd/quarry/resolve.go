package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the merged settings",
	Long: `Load the default settings document, overlay the user override file if
present, and print the merged key/value mapping.

The default document is required; a missing or malformed default is a
fatal error. A missing override is tolerated, a malformed one is not.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		merged, err := resolveSettings()
		if err != nil {
			return fmt.Errorf("failed to resolve settings: %w", err)
		}

		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Printf("%s: %v\n", k, merged[k])
		}
		return nil
	},
}
