package main

import (
	"os"

	"github.com/davidvct/healthy-meal-planner/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
