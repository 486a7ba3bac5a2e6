package main

import (
	"os"

	"github.com/marquito38/meow-macros/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
