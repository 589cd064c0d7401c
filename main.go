package main

import (
	"os"

	"github.com/palakm/gyanguru/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
