package main

import (
	"os"

	"github.com/tua-lang/tua/cmd/tua/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
