package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"futsal/internal/config"
	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/paths"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta    SettingsMetaCmd    `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Places  SettingsPlacesCmd  `cmd:"places" help:"Manage venues (list, add, del)"`
	Targets SettingsTargetsCmd `cmd:"targets" help:"Manage assist target players (list, add, del, select)"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := paths.SettingsPath()
	example := config.GetSettingsExample()
	out := cli.stdout()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure futsal.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	return nil
}

// SettingsPlacesCmd manages venues
type SettingsPlacesCmd struct {
	Add  SettingsPlacesAddCmd  `cmd:"add" help:"Add a custom venue"`
	Del  SettingsPlacesDelCmd  `cmd:"del" aliases:"rm" help:"Remove a custom venue"`
	List SettingsPlacesListCmd `cmd:"list" help:"List venues" default:"1"`
}

// SettingsPlacesListCmd lists built-in and custom venues
type SettingsPlacesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the places list command
func (s *SettingsPlacesListCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()
	places := container.SettingsService.Places(ctx)
	custom := container.SettingsService.Get(ctx).CustomPlaces

	if s.Format == "json" {
		return printJSON(cli, map[string]any{
			"custom": custom,
			"places": places,
		})
	}

	w := tabwriter.NewWriter(cli.stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLACE\tKIND")
	for _, p := range places {
		kind := "built-in"
		switch {
		case p == domain.OtherPlace:
			kind = "reserved"
		case domain.Contains(custom, p):
			kind = "custom"
		}
		fmt.Fprintf(w, "%s\t%s\n", p, kind)
	}
	return w.Flush()
}

// SettingsPlacesAddCmd adds a custom venue
type SettingsPlacesAddCmd struct {
	Name string `arg:"" help:"Venue name"`
}

// Run executes the places add command
func (s *SettingsPlacesAddCmd) Run(container *Container, cli *CLI) error {
	logging.Logger.Info("Executing settings places add command", "name", s.Name)
	if err := container.SettingsService.AddPlace(context.Background(), s.Name); err != nil {
		return err
	}
	fmt.Fprintf(cli.stdout(), "✓ Place '%s' added\n", s.Name)
	return nil
}

// SettingsPlacesDelCmd removes a custom venue
type SettingsPlacesDelCmd struct {
	Name string `arg:"" help:"Venue name"`
}

// Run executes the places del command
func (s *SettingsPlacesDelCmd) Run(container *Container, cli *CLI) error {
	logging.Logger.Info("Executing settings places del command", "name", s.Name)
	if err := container.SettingsService.RemovePlace(context.Background(), s.Name); err != nil {
		return err
	}
	fmt.Fprintf(cli.stdout(), "✓ Place '%s' removed\n", s.Name)
	return nil
}

// SettingsTargetsCmd manages assist target players
type SettingsTargetsCmd struct {
	Add    SettingsTargetsAddCmd    `cmd:"add" help:"Add an assist target"`
	Del    SettingsTargetsDelCmd    `cmd:"del" aliases:"rm" help:"Remove an assist target"`
	List   SettingsTargetsListCmd   `cmd:"list" help:"List assist targets" default:"1"`
	Select SettingsTargetsSelectCmd `cmd:"select" help:"Select the default assist target"`
}

// SettingsTargetsListCmd lists assist targets and marks the selected one
type SettingsTargetsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the targets list command
func (s *SettingsTargetsListCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()
	targets := container.SettingsService.Targets(ctx)
	selected := container.SettingsService.SelectedTarget(ctx)

	if s.Format == "json" {
		return printJSON(cli, map[string]any{
			"selected": selected,
			"targets":  targets,
		})
	}

	for _, t := range targets {
		marker := " "
		if t == selected {
			marker = "*"
		}
		fmt.Fprintf(cli.stdout(), "%s %s\n", marker, t)
	}
	return nil
}

// SettingsTargetsAddCmd adds an assist target
type SettingsTargetsAddCmd struct {
	Name string `arg:"" help:"Player name"`
}

// Run executes the targets add command
func (s *SettingsTargetsAddCmd) Run(container *Container, cli *CLI) error {
	logging.Logger.Info("Executing settings targets add command", "name", s.Name)
	if err := container.SettingsService.AddTarget(context.Background(), s.Name); err != nil {
		return err
	}
	fmt.Fprintf(cli.stdout(), "✓ Target '%s' added\n", s.Name)
	return nil
}

// SettingsTargetsDelCmd removes an assist target
type SettingsTargetsDelCmd struct {
	Name string `arg:"" help:"Player name"`
}

// Run executes the targets del command
func (s *SettingsTargetsDelCmd) Run(container *Container, cli *CLI) error {
	logging.Logger.Info("Executing settings targets del command", "name", s.Name)
	if err := container.SettingsService.RemoveTarget(context.Background(), s.Name); err != nil {
		return err
	}
	fmt.Fprintf(cli.stdout(), "✓ Target '%s' removed\n", s.Name)
	return nil
}

// SettingsTargetsSelectCmd selects the default assist target
type SettingsTargetsSelectCmd struct {
	Name string `arg:"" help:"Player name"`
}

// Run executes the targets select command
func (s *SettingsTargetsSelectCmd) Run(container *Container, cli *CLI) error {
	logging.Logger.Info("Executing settings targets select command", "name", s.Name)
	if err := container.SettingsService.SelectTarget(context.Background(), s.Name); err != nil {
		return err
	}
	fmt.Fprintf(cli.stdout(), "✓ Target '%s' selected\n", s.Name)
	return nil
}

func printJSON(cli *CLI, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(cli.stdout(), string(data))
	return nil
}
