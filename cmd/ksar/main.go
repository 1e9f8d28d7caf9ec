// Command ksar runs the case backend and its maintenance tasks.
//
//	ksar serve                              start the probe/metrics server
//	ksar migrate up|down|status             manage the database schema
//	ksar seed aid-types [--file FILE]       install the aid-type catalog
//
// Configuration comes from CONFIG_PATH (default ./config.yaml), the
// environment and an optional .env file.
//
// Exit codes: 0 = success, 1 = error.
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

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ksar:", err)
		stop()
		os.Exit(1)
	}
}
