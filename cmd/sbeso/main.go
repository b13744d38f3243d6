// SPDX-License-Identifier: MIT

// Command sbeso runs BESO topology optimization on a rectangular
// cantilever-style domain and writes the density history as PNG frames,
// an MJPEG animation and an HTML report.
//
//	sbeso run --width 40 --height 20 --boundary ALL_LEFT --load M_RIGHT --frames out/
//	sbeso cases
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "sbeso:", err)
		stop()
		os.Exit(1)
	}
}
