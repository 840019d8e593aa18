package main

import (
	"os"

	"signus/cmd/signus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
