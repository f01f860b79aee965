// Package wizard drives the interactive `emufog init` flow: it detects
// topology files in the working directory and generates a starter config.
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Answers holds all user responses from the wizard.
type Answers struct {
	InputType  string
	InputFiles []string

	MaxFogNodes   int
	CostThreshold float32

	DeviceImage string
	FogImage    string
}

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*Answers, error) {
	answers := &Answers{
		InputType:     "brite",
		MaxFogNodes:   100,
		CostThreshold: 10,
		DeviceImage:   "emufog/device:latest",
		FogImage:      "emufog/fog:latest",
	}

	var hints []string
	if len(detection.BriteFiles) > 0 {
		hints = append(hints, fmt.Sprintf("BRITE files found: %s", strings.Join(detection.BriteFiles, ", ")))
		answers.InputFiles = detection.BriteFiles[:1]
	}
	if len(detection.CaidaFiles) > 0 {
		hints = append(hints, fmt.Sprintf("CAIDA files found: %s", strings.Join(detection.CaidaFiles, ", ")))
		if len(answers.InputFiles) == 0 {
			answers.InputType = "caida"
			answers.InputFiles = detection.CaidaFiles
		}
	}

	desc := "Select the topology format to read."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	files := strings.Join(answers.InputFiles, ",")
	maxFog := strconv.Itoa(answers.MaxFogNodes)
	threshold := strconv.FormatFloat(float64(answers.CostThreshold), 'f', -1, 32)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which input format do you want to read?").
				Description(desc).
				Options(
					huh.NewOption("BRITE topology", "brite"),
					huh.NewOption("CAIDA topology", "caida"),
				).
				Value(&answers.InputType),
			huh.NewInput().
				Title("Input files (comma separated)").
				Value(&files),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Maximum number of fog nodes").
				Validate(validateInt).
				Value(&maxFog),
			huh.NewInput().
				Title("Latency threshold in ms").
				Validate(validateFloat).
				Value(&threshold),
			huh.NewInput().
				Title("Device docker image").
				Value(&answers.DeviceImage),
			huh.NewInput().
				Title("Fog docker image").
				Value(&answers.FogImage),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	answers.InputFiles = splitFiles(files)
	answers.MaxFogNodes, _ = strconv.Atoi(maxFog)
	f, _ := strconv.ParseFloat(threshold, 32)
	answers.CostThreshold = float32(f)

	return answers, nil
}

func splitFiles(s string) []string {
	var files []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			files = append(files, part)
		}
	}
	return files
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("not a whole number: %s", s)
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 32); err != nil {
		return fmt.Errorf("not a number: %s", s)
	}
	return nil
}
