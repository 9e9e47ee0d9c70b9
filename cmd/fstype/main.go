package main

import (
	"fmt"
	"os"

	"github.com/harrison/systools/internal/cmd"
)

func main() {
	if err := cmd.NewFSTypeCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
