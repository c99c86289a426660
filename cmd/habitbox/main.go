package main

import (
	"os"

	"habitbox/internal/commands"
)

func main() {
	// cobra has already printed the error.
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
