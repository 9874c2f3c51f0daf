package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"futsal/internal/logging"
)

// ExportCmd writes every record as a JSON backup
type ExportCmd struct {
	Out string `help:"Output file (default: stdout)" short:"o" type:"path"`
}

// Run executes the export command
func (e *ExportCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()

	if e.Out == "" || e.Out == "-" {
		_, err := container.TransferService.Export(ctx, cli.stdout())
		return err
	}

	f, err := os.Create(e.Out)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	count, err := container.TransferService.Export(ctx, f)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	logging.Logger.Info("Executing export command", "path", e.Out, "count", count)
	fmt.Fprintf(cli.stdout(), "✓ %d records exported to %s\n", count, e.Out)
	return nil
}

// ImportCmd merges records from a JSON backup
type ImportCmd struct {
	File string `arg:"" help:"Backup file to import ('-' reads stdin)"`
}

// Run executes the import command
func (i *ImportCmd) Run(container *Container, cli *CLI) error {
	var r io.Reader = os.Stdin
	if i.File != "-" {
		f, err := os.Open(i.File)
		if err != nil {
			return fmt.Errorf("failed to open backup: %w", err)
		}
		defer f.Close()
		r = f
	}

	logging.Logger.Info("Executing import command", "file", i.File)
	result, err := container.TransferService.Import(context.Background(), r)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.stdout(), "✓ Imported %d of %d records (%d valid, %d already present)\n",
		result.Added, result.Received, result.Valid, result.Skipped)
	return nil
}
