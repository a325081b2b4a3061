package main

import (
	"os"

	"micromarket/cmd/micromarket/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
