// Package version provides build version information and runtime metadata.
package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// These are set via ldflags at build time
	Version = ""
	Commit  = ""
	Date    = ""

	once sync.Once

	execCommand = exec.CommandContext
)

const gitTimeout = 2 * time.Second

func ensureInitialized() {
	once.Do(func() {
		if Date == "" {
			Date = time.Now().Format("2006-01-02")
		}
		if Commit == "" {
			Commit = getGitCommit()
		}
		if Version == "" {
			Version = getGitVersion()
		}
	})
}

// Reset clears the resolved values so the next call resolves them again.
func Reset() {
	Version, Commit, Date = "", "", ""
	once = sync.Once{}
}

func git(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := execCommand(ctx, "git", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

func getGitCommit() string {
	out, err := git("describe", "--always", "--dirty")
	if err != nil || out == "" {
		return "unknown"
	}
	return out
}

func getGitVersion() string {
	out, err := git("describe", "--tags", "--abbrev=0")
	if err != nil || out == "" {
		return "dev"
	}
	return out
}

// GetVersion returns the release version, "dev" for untagged builds.
func GetVersion() string {
	ensureInitialized()
	return Version
}

// GetCommit returns the commit the binary was built from.
func GetCommit() string {
	ensureInitialized()
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	ensureInitialized()
	return Date
}

// Info returns a one-line version banner.
func Info() string {
	ensureInitialized()
	return fmt.Sprintf("screentime %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
