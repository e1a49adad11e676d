package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hearthy/quarry/api/v1alpha1"
)

// TableFormatter formats resources as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatProfile formats a single MachineProfile as a table row.
func (f *TableFormatter) FormatProfile(profile *v1alpha1.MachineProfile) (string, error) {
	return f.FormatProfileList([]*v1alpha1.MachineProfile{profile})
}

// FormatProfileList formats a list of MachineProfiles as a table.
func (f *TableFormatter) FormatProfileList(profiles []*v1alpha1.MachineProfile) (string, error) {
	if len(profiles) == 0 {
		return "No profiles declared\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	// Write header unless NoHeaders is set
	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "NAME\tBOX\tPROVISIONERS\tFOLDERS\tAGE")
	}

	// Write each profile as a row
	for _, profile := range profiles {
		provisioners := "-"
		if len(profile.Spec.Provisioners) > 0 {
			names := make([]string, 0, len(profile.Spec.Provisioners))
			for _, step := range profile.Spec.Provisioners {
				names = append(names, step.Name)
			}
			provisioners = strings.Join(names, ",")
		}

		folders := fmt.Sprintf("%d", len(profile.Spec.SyncedFolders))

		// Calculate age from creation timestamp
		age := "-"
		if !profile.CreationTimestamp.IsZero() {
			age = formatAge(time.Since(profile.CreationTimestamp.Time))
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			profile.Name, profile.Spec.Box, provisioners, folders, age)
	}

	_ = w.Flush()
	return buf.String(), nil
}

// formatAge formats a duration as a human-readable age string.
// Examples: "5s", "2m", "3h", "4d", "2w", "1y"
func formatAge(d time.Duration) string {
	if d < 0 {
		return "unknown"
	}

	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd", days)
	}

	weeks := days / 7
	if weeks < 8 {
		return fmt.Sprintf("%dw", weeks)
	}

	years := days / 365
	if years > 0 {
		return fmt.Sprintf("%dy", years)
	}
	return fmt.Sprintf("%dd", days)
}
