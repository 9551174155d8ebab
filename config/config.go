// SPDX-License-Identifier: MIT

// Package config loads gridpath settings from defaults, a YAML file and
// GRIDPATH_* environment variables, in that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

var (
	ErrConfigNotFound = errors.New("config: file not found")
	ErrInvalidConfig  = errors.New("config: invalid configuration")
)

// Config is the complete runtime configuration.
type Config struct {
	GridFile   string `yaml:"grid_file"`
	OutputFile string `yaml:"output_file"`
	Start      Point  `yaml:"start"`
	Goal       Point  `yaml:"goal"`
	Heuristic  string `yaml:"heuristic"`
	LogLevel   string `yaml:"log_level"`

	Render RenderConfig `yaml:"render"`
	Server ServerConfig `yaml:"server"`
}

// RenderConfig configures image output.
type RenderConfig struct {
	CellSize   int           `yaml:"cell_size"`
	GridLines  bool          `yaml:"grid_lines"`
	FrameDelay time.Duration `yaml:"frame_delay"`
	Output     string        `yaml:"output"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr      string        `yaml:"addr"`
	StepDelay time.Duration `yaml:"step_delay"`
}

// Default returns the built-in configuration: a 20×20 grid searched from the
// bottom-left corner (19,0) to the top-right corner (0,19).
func Default() Config {
	return Config{
		GridFile:   "grid.txt",
		OutputFile: "grid_with_path.txt",
		Start:      Point{Row: 19, Col: 0},
		Goal:       Point{Row: 0, Col: 19},
		Heuristic:  "euclidean",
		LogLevel:   "info",
		Render: RenderConfig{
			CellSize:   30,
			GridLines:  true,
			FrameDelay: 80 * time.Millisecond,
			Output:     "path.png",
		},
		Server: ServerConfig{
			Addr:      ":8080",
			StepDelay: 80 * time.Millisecond,
		},
	}
}

// Load returns Default overlaid with the YAML file at path. Keys absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w: %v", path, ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks every field that has a restricted domain.
func (c Config) Validate() error {
	var errs []error
	if c.GridFile == "" {
		errs = append(errs, errors.New("grid_file is empty"))
	}
	if _, err := astar.HeuristicByName(c.Heuristic); err != nil {
		errs = append(errs, fmt.Errorf("heuristic %q is not euclidean or manhattan", c.Heuristic))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %v", err))
	}
	if c.Render.CellSize < 1 {
		errs = append(errs, fmt.Errorf("render.cell_size must be >= 1, got %d", c.Render.CellSize))
	}
	if c.Render.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("render.frame_delay must be >= 0, got %v", c.Render.FrameDelay))
	}
	if c.Server.StepDelay < 0 {
		errs = append(errs, fmt.Errorf("server.step_delay must be >= 0, got %v", c.Server.StepDelay))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Point is a grid coordinate written as "row,col" in YAML and environment
// variables.
type Point grid.Coord

// Coord converts p to a grid.Coord.
func (p Point) Coord() grid.Coord { return grid.Coord(p) }

// String formats p as "row,col".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.Row, p.Col) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Point) UnmarshalText(text []byte) error {
	c, err := grid.ParseCoord(string(text))
	if err != nil {
		return err
	}
	*p = Point(c)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalYAML accepts a "row,col" scalar.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: coordinate must be a \"row,col\" string", node.Line)
	}

	return p.UnmarshalText([]byte(node.Value))
}
