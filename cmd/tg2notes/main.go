package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/reshetovitsme/telegram-export-notes/internal/transport/cli"
)

// Set via ldflags: -X main.version=1.0.0
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), cli.NewRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
