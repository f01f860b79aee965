package main

import (
	"errors"
	"os"

	"github.com/unly/emufog/cmd"
	"github.com/unly/emufog/internal/config"
	"github.com/unly/emufog/internal/fog"
)

func main() {
	err := cmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, fog.ErrPlacementFailed):
		os.Exit(3)
	case errors.Is(err, config.ErrInvalid):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
