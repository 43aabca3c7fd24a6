package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bpowers/triebench"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s keys queries\n", os.Args[0])
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	b := triebench.New(triebench.NewCedarTrie(),
		triebench.WithLabel("cedar"),
		triebench.WithLogger(logger))

	if err := b.RunFiles(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
