package main

import (
	"os"

	"github.com/matjar-app/matjar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
