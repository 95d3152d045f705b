// Package main is the entry point for the weather-reports CLI.
package main

import (
	"github.com/dkozlov-dev/weather-reports/internal/cmd"
)

func main() {
	cmd.Execute()
}
