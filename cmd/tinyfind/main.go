package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/harrison/systools/internal/cmd"
)

func main() {
	// Interrupt stops the walk; matches printed so far stay on stdout.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.NewFindCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
