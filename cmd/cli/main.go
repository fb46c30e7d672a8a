package main

import (
	"os"

	"github.com/summarly-app/summarly/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
