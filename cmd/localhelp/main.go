package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/localhelp/internal/infrastructure/cli"
	"github.com/doeshing/localhelp/internal/infrastructure/config"
)

var version = "dev"

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose(), Version: version}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	value := os.Getenv(config.EnvDev)
	return strings.EqualFold(value, "true") || value == "1"
}
