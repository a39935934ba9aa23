// Package main is the entry point for the screentime command.
// It reads app usage from the macOS Knowledge store and prints or exports a report.
package main

import (
	"fmt"
	"os"

	"github.com/j-veylop/screentime/internal/ui/styles"
)

func main() {
	if err := newRootCmd(defaultApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorTextStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
