package names

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by a Lookup that has no match for an identifier.
var ErrNotFound = errors.New("application not found")

// Lookup resolves an application identifier to a display name.
type Lookup interface {
	Lookup(ctx context.Context, identifier string) (string, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, identifier string) (string, error)

// Lookup calls f.
func (f LookupFunc) Lookup(ctx context.Context, identifier string) (string, error) {
	return f(ctx, identifier)
}

// execCommandContext is replaced in tests.
var execCommandContext = exec.CommandContext

// SpotlightLookup finds application bundles with mdfind.
type SpotlightLookup struct {
	// Binary is the mdfind executable, "mdfind" when empty.
	Binary string
}

// Lookup returns the bundle name of the first application whose
// kMDItemCFBundleIdentifier equals identifier.
func (s SpotlightLookup) Lookup(ctx context.Context, identifier string) (string, error) {
	if identifier == "" || strings.ContainsAny(identifier, "\"\\\n") {
		return "", fmt.Errorf("%w: unsupported identifier %q", ErrNotFound, identifier)
	}

	bin := s.Binary
	if bin == "" {
		bin = "mdfind"
	}

	query := fmt.Sprintf("kMDItemCFBundleIdentifier == \"%s\"", identifier)
	cmd := execCommandContext(ctx, bin, query)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("mdfind %s: %w", identifier, ctxErr)
		}
		return "", fmt.Errorf("mdfind %s: %w", identifier, err)
	}

	name := appNameFromPaths(out.String())
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

// appNameFromPaths returns the bundle name of the first path in mdfind output.
func appNameFromPaths(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.TrimSuffix(filepath.Base(line), ".app")
	}
	return ""
}
