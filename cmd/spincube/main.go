package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/spincube/internal/config"
	"github.com/san-kum/spincube/internal/engine"
	"github.com/san-kum/spincube/internal/input"
	"github.com/san-kum/spincube/internal/render"
	"github.com/san-kum/spincube/internal/term"
	"github.com/san-kum/spincube/internal/ui"
)

var (
	configFile string
	fps        int
	marker     string
	step       float64
	// frames command
	frameCount int
	angleX     float64
	angleY     float64
	spin       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spincube",
		Short: "rotating wireframe cube for the terminal",
		RunE:  runClassic,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().StringVar(&marker, "marker", config.DefaultMarker, "marker glyph")
	rootCmd.PersistentFlags().Float64Var(&step, "step", config.DefaultStep, "rotation step per key press (radians)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive dashboard with stats and angle history",
		RunE:  runTUI,
	}

	framesCmd := &cobra.Command{
		Use:   "frames",
		Short: "render frames to stdout without taking over the terminal",
		RunE:  runFrames,
	}
	framesCmd.Flags().IntVar(&frameCount, "n", 1, "number of frames")
	framesCmd.Flags().Float64Var(&angleX, "angle-x", 0, "x rotation angle (radians)")
	framesCmd.Flags().Float64Var(&angleY, "angle-y", 0, "y rotation angle (radians)")
	framesCmd.Flags().BoolVar(&spin, "spin", false, "advance angles by step between frames")

	configCmd := &cobra.Command{
		Use:   "config init [path]",
		Short: "write the default configuration file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "init" {
				return fmt.Errorf("unknown config action: %s", args[0])
			}
			path := "spincube.yaml"
			if len(args) > 1 {
				path = args[1]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, framesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: file values when --config is
// given, flag values where explicitly set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("marker") {
		cfg.Marker = marker
	}
	if cmd.Flags().Changed("step") {
		cfg.Step = step
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRenderer(cfg *config.Config) *engine.Renderer {
	proj := render.Projector{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Scale:    cfg.Scale,
		Distance: cfg.Distance,
	}
	return engine.NewRenderer(proj, cfg.CubeSize, cfg.MarkerByte())
}

// runClassic is the default mode: raw stdin, a background reader goroutine,
// and the fixed-cadence render loop on stdout. It exits only on SIGINT or
// SIGTERM.
func runClassic(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	raw := term.Enter()
	defer raw.Restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := input.NewQueue()
	go input.NewReader(os.Stdin, queue, cfg.Step).Run(ctx)

	loop := engine.NewLoop(newRenderer(cfg), &engine.Orientation{}, queue, os.Stdout, cfg.Interval())
	loop.Run(ctx)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := tea.NewProgram(ui.NewModel(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runFrames dumps one or more rendered frames as plain text, for piping or
// inspecting a fixed pose.
func runFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frameCount < 1 {
		return fmt.Errorf("frame count must be at least 1, got %d", frameCount)
	}

	renderer := newRenderer(cfg)
	ax, ay := angleX, angleY
	for i := 0; i < frameCount; i++ {
		fmt.Print(renderer.Frame(ax, ay).String())
		if i < frameCount-1 {
			fmt.Println()
		}
		if spin {
			ax += cfg.Step
			ay += cfg.Step
		}
	}
	return nil
}
