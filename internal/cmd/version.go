package cmd

import (
	"fmt"

	"futsal/internal/version"
)

// VersionCmd prints build information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(cli *CLI) error {
	fmt.Fprintln(cli.stdout(), version.Info())
	return nil
}
