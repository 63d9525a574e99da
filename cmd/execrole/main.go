package main

import (
	"os"

	"github.com/majorcontext/execrole/cmd/execrole/cli"

	// Register providers.
	_ "github.com/majorcontext/execrole/internal/providers/aws"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
