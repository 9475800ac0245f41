// Command uwmips-module serves the uwmips module over stdin/stdout so the
// editor can acquire it out of process:
//
//	uwmips-editor -module ./uwmips-module
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atomicstack/uwmips-editor/internal/logging"
	"github.com/atomicstack/uwmips-editor/internal/module"
)

func main() {
	fs := flag.NewFlagSet("uwmips-module", flag.ContinueOnError)
	delay := fs.Duration("delay", 0, "simulated load time before the hello frame")
	logFile := fs.String("log-file", "", "path to the log file")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	logging.Configure(*logFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *delay); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, delay time.Duration) error {
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return module.Serve(ctx, os.Stdin, os.Stdout, module.NewUWMIPS)
}
