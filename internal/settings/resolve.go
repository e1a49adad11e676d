package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Resolve loads the default settings document, overlays the user override
// when present, and returns the merged document.
//
// The default document is required: a missing or unparseable file is an
// error. The override document is optional: a missing file is tolerated and
// reported via an informational notice, but an override that exists and
// fails to parse is an error (malformed user input must not be silently
// ignored).
//
// Notices are returned rather than printed so callers decide where they go.
func Resolve(defaultPath, overridePath string) (Document, []string, error) {
	defaults, err := Load(defaultPath)
	if err != nil {
		return nil, nil, err
	}

	var notices []string

	if _, err := os.Stat(overridePath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("failed to stat settings file %s: %w", overridePath, err)
		}
		notices = append(notices, fmt.Sprintf("no override settings at %s, using defaults only", overridePath))
		return defaults, notices, nil
	}

	overrides, err := Load(overridePath)
	if err != nil {
		return nil, nil, err
	}

	return Merge(defaults, overrides), notices, nil
}
