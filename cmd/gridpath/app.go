// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/server"
)

// newApp builds the command tree. Normal output goes to stdout, logs to stderr.
func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "gridpath",
		Usage:     "shortest paths on occupancy grids",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
			&cli.StringFlag{Name: "log-level", Usage: "panic, fatal, error, warn, info, debug or trace"},
			&cli.StringFlag{Name: "grid", Aliases: []string{"g"}, Usage: "grid file (text, or .png/.pgm image)"},
			&cli.StringFlag{Name: "start", Usage: "start coordinate as row,col"},
			&cli.StringFlag{Name: "goal", Usage: "goal coordinate as row,col"},
			&cli.StringFlag{Name: "heuristic", Usage: "euclidean or manhattan"},
		},
		Commands: []*cli.Command{
			{
				Name:  "find",
				Usage: "search for a path and print it",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "save the marked grid to this file (default from config)"},
					&cli.BoolFlag{Name: "no-save", Usage: "do not save the marked grid"},
					&cli.BoolFlag{Name: "print", Aliases: []string{"p"}, Usage: "print the marked grid"},
				},
				Action: runFind,
			},
			{
				Name:  "render",
				Usage: "draw the grid and path as PNG, or as an animated GIF",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "image file; a .gif extension animates the path"},
					&cli.DurationFlag{Name: "frame-delay", Usage: "delay between GIF frames"},
					&cli.BoolFlag{Name: "no-grid-lines", Usage: "omit cell outlines"},
				},
				Action: runRender,
			},
			{
				Name:  "serve",
				Usage: "serve searches over HTTP and websocket",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address"},
					&cli.DurationFlag{Name: "step-delay", Usage: "delay between streamed path steps"},
				},
				Action: runServe,
			},
			{
				Name:   "inspect",
				Usage:  "print grid dimensions, cell counts, free regions and reachability",
				Action: runInspect,
			},
		},
	}
}

// env is the resolved configuration shared by every command.
type env struct {
	cfg config.Config
	log *logrus.Logger
	out io.Writer
}

// setup resolves configuration from defaults, file, environment and flags,
// then builds the logger.
func setup(cmd *cli.Command) (*env, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if v := cmd.String("grid"); v != "" {
		cfg.GridFile = v
	}
	if v := cmd.String("heuristic"); v != "" {
		cfg.Heuristic = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	for _, p := range []struct {
		flag string
		dst  *config.Point
	}{{"start", &cfg.Start}, {"goal", &cfg.Goal}} {
		if v := cmd.String(p.flag); v != "" {
			if err := p.dst.UnmarshalText([]byte(v)); err != nil {
				return nil, fmt.Errorf("--%s: %w", p.flag, err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := cmd.Root()
	logger := logrus.New()
	logger.SetOutput(root.ErrWriter)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)

	return &env{cfg: cfg, log: logger, out: root.Writer}, nil
}

// loadGrid reads a text grid, or an image when the extension says so.
func (e *env) loadGrid() (*grid.Grid, error) {
	path := e.cfg.GridFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".pgm", ".pbm", ".ppm":
		return grid.LoadImage(path, grid.DefaultImageThreshold)
	default:
		return grid.Load(path)
	}
}

// search loads the grid and runs one search with the configured heuristic.
// Expansions are traced at debug level.
func (e *env) search() (*grid.Grid, astar.Result, error) {
	g, err := e.loadGrid()
	if err != nil {
		return nil, astar.Result{}, err
	}
	h, err := astar.HeuristicByName(e.cfg.Heuristic)
	if err != nil {
		return nil, astar.Result{}, err
	}
	start, goal := e.cfg.Start.Coord(), e.cfg.Goal.Coord()
	rows, cols := g.Dimensions()
	e.log.WithFields(logrus.Fields{
		"grid":  e.cfg.GridFile,
		"rows":  rows,
		"cols":  cols,
		"start": start.String(),
		"goal":  goal.String(),
	}).Info("searching")

	res, err := astar.FindPath(g, start, goal,
		astar.WithHeuristic(h),
		astar.WithOnExpand(func(c grid.Coord, gs, fs float64) {
			e.log.WithFields(logrus.Fields{"coord": c.String(), "g": gs, "f": fs}).Debug("expand")
		}),
	)
	if err != nil {
		return nil, astar.Result{}, err
	}
	e.log.WithFields(logrus.Fields{"found": res.Found, "expanded": res.Expanded}).Info("search finished")

	return g, res, nil
}

func runFind(_ context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	g, res, err := e.search()
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintln(e.out, "No path found.")
		return nil
	}

	fmt.Fprintf(e.out, "Path found: %s\n", res.Path)
	fmt.Fprintf(e.out, "Steps: %d, cost: %g, expanded: %d\n", res.Path.Steps(), res.Cost, res.Expanded)
	if err = res.Path.Mark(g); err != nil {
		return err
	}

	if !cmd.Bool("no-save") {
		out := e.cfg.OutputFile
		if v := cmd.String("out"); v != "" {
			out = v
		}
		if out != "" {
			if err = grid.Save(out, g); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Grid saved to %s\n", out)
		}
	}
	if cmd.Bool("print") {
		fmt.Fprint(e.out, g)
	}

	return nil
}

func runRender(_ context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	g, res, err := e.search()
	if err != nil {
		return err
	}

	output := e.cfg.Render.Output
	if v := cmd.String("output"); v != "" {
		output = v
	}
	delay := e.cfg.Render.FrameDelay
	if cmd.IsSet("frame-delay") {
		delay = cmd.Duration("frame-delay")
	}
	opts := render.DefaultOptions()
	opts.CellSize = e.cfg.Render.CellSize
	opts.ShowGridLines = e.cfg.Render.GridLines && !cmd.Bool("no-grid-lines")

	start, goal := e.cfg.Start.Coord(), e.cfg.Goal.Coord()
	err = writeImage(output, func(w io.Writer) error {
		if strings.EqualFold(filepath.Ext(output), ".gif") {
			return render.GIF(w, g, res.Path, start, goal, opts, delay)
		}
		return render.PNG(w, g, res.Path, start, goal, opts)
	})
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintln(e.out, "No path found.")
	}
	fmt.Fprintf(e.out, "Image saved to %s\n", output)

	return nil
}

// writeImage encodes into memory first, so a failed encode leaves no file
// behind. The parent directory is created as needed.
func writeImage(path string, encode func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	g, err := e.loadGrid()
	if err != nil {
		return err
	}
	h, err := astar.HeuristicByName(e.cfg.Heuristic)
	if err != nil {
		return err
	}

	sc := server.Config{
		Addr:      e.cfg.Server.Addr,
		StepDelay: e.cfg.Server.StepDelay,
		Heuristic: h,
	}
	if v := cmd.String("addr"); v != "" {
		sc.Addr = v
	}
	if cmd.IsSet("step-delay") {
		sc.StepDelay = cmd.Duration("step-delay")
	}

	srv, err := server.New(g, sc, e.log)
	if err != nil {
		return err
	}

	return srv.ListenAndServe(ctx)
}

func runInspect(_ context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	g, err := e.loadGrid()
	if err != nil {
		return err
	}
	h, err := astar.HeuristicByName(e.cfg.Heuristic)
	if err != nil {
		return err
	}

	rows, cols := g.Dimensions()
	regions := g.Regions()
	largest := 0
	for _, r := range regions {
		largest = max(largest, len(r))
	}
	start, goal := e.cfg.Start.Coord(), e.cfg.Goal.Coord()

	fmt.Fprintf(e.out, "Size:      %d x %d\n", rows, cols)
	fmt.Fprintf(e.out, "Free:      %d\n", g.Count(grid.Free))
	fmt.Fprintf(e.out, "Obstacle:  %d\n", g.Count(grid.Obstacle))
	fmt.Fprintf(e.out, "Path:      %d\n", g.Count(grid.Path))
	fmt.Fprintf(e.out, "Regions:   %d (largest %d cells)\n", len(regions), largest)

	// Same endpoint rule as find: any start state, any goal but an obstacle.
	res, err := astar.FindPath(g, start, goal, astar.WithHeuristic(h))
	switch {
	case errors.Is(err, grid.ErrOutOfBounds):
		fmt.Fprintf(e.out, "Reachable: %s -> %s: out of bounds\n", start, goal)
	case err != nil:
		return err
	default:
		fmt.Fprintf(e.out, "Reachable: %s -> %s: %t\n", start, goal, res.Found)
	}

	return nil
}
