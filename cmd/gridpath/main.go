// SPDX-License-Identifier: MIT

// Command gridpath finds, renders and serves shortest paths on occupancy
// grids.
//
// Usage:
//
//	gridpath [global flags] find    [--out FILE] [--print]
//	gridpath [global flags] render  [--output FILE.png|FILE.gif]
//	gridpath [global flags] serve   [--addr HOST:PORT]
//	gridpath [global flags] inspect
//
// Settings are resolved as defaults < --config YAML < .env and GRIDPATH_*
// variables < command-line flags.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		stop()
		log.Fatal(err)
	}
}
