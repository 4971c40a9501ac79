package main

import (
	"os"

	"fanhub-webhooks/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
