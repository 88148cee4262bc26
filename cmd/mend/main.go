// Package main is the entry point for the mend CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/mend/cmd/mend/commands"
	"go.trai.ch/mend/internal/app"
	_ "go.trai.ch/mend/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Context with signal handling. An interrupt mid-attempt cancels the
	// install subprocess through the exec context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed; write directly to stderr.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
