// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "GRIDPATH_"

// LoadDotEnv loads KEY=VALUE pairs from files (default ".env") into the
// process environment without overriding variables that are already set.
// Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides c with any GRIDPATH_* variables that are set:
//
//	GRIDPATH_GRID_FILE     GRIDPATH_OUTPUT_FILE   GRIDPATH_START
//	GRIDPATH_GOAL          GRIDPATH_HEURISTIC     GRIDPATH_LOG_LEVEL
//	GRIDPATH_CELL_SIZE     GRIDPATH_FRAME_DELAY   GRIDPATH_RENDER_OUTPUT
//	GRIDPATH_ADDR          GRIDPATH_STEP_DELAY
//
// A value that fails to parse is reported as ErrInvalidConfig and leaves the
// field unchanged.
func (c *Config) ApplyEnv() error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	point := func(key string, dst *Point) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			if err := dst.UnmarshalText([]byte(v)); err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %v", EnvPrefix, key, err))
			}
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %v", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %v", EnvPrefix, key, err))
				return
			}
			*dst = d
		}
	}

	str("GRID_FILE", &c.GridFile)
	str("OUTPUT_FILE", &c.OutputFile)
	point("START", &c.Start)
	point("GOAL", &c.Goal)
	str("HEURISTIC", &c.Heuristic)
	str("LOG_LEVEL", &c.LogLevel)
	integer("CELL_SIZE", &c.Render.CellSize)
	duration("FRAME_DELAY", &c.Render.FrameDelay)
	str("RENDER_OUTPUT", &c.Render.Output)
	str("ADDR", &c.Server.Addr)
	duration("STEP_DELAY", &c.Server.StepDelay)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
