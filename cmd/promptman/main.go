package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/MarioMagdy/prompt-manager/internal/command"
)

func main() {
	if err := command.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("promptman failed", "error", err)
		os.Exit(1)
	}
}
