package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"customgrid/app"
	"customgrid/config"
	"customgrid/inspect"
	"customgrid/log"
	"customgrid/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "0.1.0"

	rootFlags    gridFlags
	renderFlags  gridFlags
	inspectFlags gridFlags
	inspectText  bool

	rootCmd = &cobra.Command{
		Use:   "customgrid",
		Short: "customgrid - lay out tiles in a fixed-column grid in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			if err := rootFlags.apply(cmd, cfg); err != nil {
				return err
			}
			return app.Run(ctx, cfg)
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Print the configured grid once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			if err := renderFlags.apply(cmd, cfg); err != nil {
				return err
			}

			c := renderFlags.constraints(cmd)
			frame := app.RenderConfig(cfg, c)
			if c.HasBoundedWidth() && frame.Result.Width > c.MaxWidth {
				log.WarningLog.Printf("grid is %d cells wide, wider than the %d available", frame.Result.Width, c.MaxWidth)
			}
			fmt.Fprintln(cmd.OutOrStdout(), frame.View)
			return nil
		},
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Print the grid's measured geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			if err := inspectFlags.apply(cmd, cfg); err != nil {
				return err
			}

			c := inspectFlags.constraints(cmd)
			snap := app.RenderConfig(cfg, c).Snapshot(cfg, c)
			if inspectText {
				fmt.Fprint(cmd.OutOrStdout(), snap.ToText())
				return nil
			}
			data, err := snap.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Restore the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if _, err := config.ResetConfig(); err != nil {
				return err
			}
			fmt.Println("Config has been reset to defaults")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.FileName())
			if path := inspect.GetInspectFile(); path != "" {
				fmt.Printf("Inspect: %s\n", path)
			} else {
				fmt.Printf("Inspect: disabled (set %s=1)\n", inspect.InspectEnvVar)
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of customgrid",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("customgrid version %s\n", version)
		},
	}
)

// gridFlags are command line overrides of the grid configuration.
type gridFlags struct {
	columns   int
	hSpacing  float64
	vSpacing  float64
	direction string
	rtl       bool
	noColor   bool
	width     int
}

// register adds the column and direction flags, plus the rendering flags when full is set.
func (f *gridFlags) register(cmd *cobra.Command, full bool) {
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 0,
		"Number of grid columns (values below 1 lay out as one column)")
	cmd.Flags().StringVar(&f.direction, "direction", "",
		fmt.Sprintf("Layout direction, '%s' or '%s' (defaults to the saved config)", config.DirectionLTR, config.DirectionRTL))
	cmd.Flags().BoolVar(&f.rtl, "rtl", false, "Lay out right to left (same as --direction rtl)")
	if !full {
		return
	}
	cmd.Flags().Float64Var(&f.hSpacing, "hspacing", 0, "Horizontal gap between columns in dp")
	cmd.Flags().Float64Var(&f.vSpacing, "vspacing", 0, "Vertical gap between rows in dp")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Render without colors")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0,
		"Available width in cells (defaults to the terminal width, unbounded when not a terminal)")
}

// apply overrides cfg with every flag set on cmd.
func (f *gridFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Columns = f.columns
	}
	if flags.Changed("hspacing") {
		cfg.HorizontalSpacing = f.hSpacing
	}
	if flags.Changed("vspacing") {
		cfg.VerticalSpacing = f.vSpacing
	}
	if flags.Changed("direction") {
		dir, err := config.ParseDirection(f.direction)
		if err != nil {
			return err
		}
		if f.rtl && dir != layout.RightToLeft {
			return fmt.Errorf("--rtl conflicts with --direction %s", f.direction)
		}
		cfg.Direction = dir.String()
	} else if f.rtl {
		cfg.Direction = config.DirectionRTL
	}
	if _, err := config.ParseDirection(cfg.Direction); err != nil {
		return err
	}
	if flags.Changed("width") && f.width <= 0 {
		return fmt.Errorf("invalid width: %d (must be positive)", f.width)
	}
	if f.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// constraints returns the incoming constraints for a one-shot render.
func (f *gridFlags) constraints(cmd *cobra.Command) layout.Constraints {
	if cmd.Flags().Changed("width") {
		return layout.Constraints{MaxWidth: f.width, MaxHeight: layout.Infinity}
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return layout.Constraints{MaxWidth: w, MaxHeight: layout.Infinity}
		}
	}
	return layout.Unbounded()
}

func init() {
	rootFlags.register(rootCmd, false)
	renderFlags.register(renderCmd, true)
	inspectFlags.register(inspectCmd, true)
	inspectCmd.Flags().BoolVar(&inspectText, "text", false, "Print a text summary instead of JSON")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
