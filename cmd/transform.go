package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/unly/emufog/internal/backbone"
	"github.com/unly/emufog/internal/config"
	"github.com/unly/emufog/internal/device"
	"github.com/unly/emufog/internal/export"
	"github.com/unly/emufog/internal/fog"
	"github.com/unly/emufog/internal/graph"
	"github.com/unly/emufog/internal/reader"
	"github.com/unly/emufog/internal/ui"
	"github.com/unly/emufog/internal/util"
)

var (
	inputType  string
	outputFile string
	inputFiles []string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform a topology into a fog emulation plan",
	Long: `Read a topology, classify its backbone, attach devices, place fog
nodes, and write the MaxiNet deployment script.`,
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVarP(&inputType, "type", "t", "", "input format to read (brite, caida)")
	transformCmd.Flags().StringVarP(&outputFile, "output", "o", "output.py", "path to the output file")
	transformCmd.Flags().StringSliceVarP(&inputFiles, "file", "f", nil, "files to read in")
	_ = transformCmd.MarkFlagRequired("type")
	_ = transformCmd.MarkFlagRequired("file")
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'emufog init' to create a config file"))
		return err
	}

	r, err := reader.ForType(inputType)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Unknown input type", err.Error(), ""))
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	fmt.Println(ui.Bold("Transforming topology..."))

	// read
	result, err := runStage(cfg, "Reading "+r.Metadata().DisplayName, func() (*reader.ReadResult, error) {
		return r.Read(inputFiles)
	})
	if err != nil {
		return err
	}
	g := result.Graph
	if total := result.SkippedTotal(); total > 0 {
		ui.Warn(fmt.Sprintf("%d records skipped (%s)", total, result.SkippedSummary()))
	}

	// classify the backbone
	_, err = runStage(cfg, "Classifying backbone", func() (struct{}, error) {
		opts := backbone.Options{
			DegreeFactor:  float64(cfg.BackboneDegreeFactor),
			TimeMeasuring: cfg.TimeMeasuring,
		}
		return struct{}{}, backbone.Classify(g, opts)
	})
	if err != nil {
		return err
	}

	// place devices
	pool, err := graph.NewIPPool(cfg.BaseAddress)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	_, err = runStage(cfg, "Placing devices", func() (struct{}, error) {
		placer := &device.Placer{
			Types:   cfg.DeviceContainers(),
			Poisson: cfg.DeviceSampling == config.SamplingPoisson,
			Seed:    cfg.Seed,
			Pool:    pool,
		}
		return struct{}{}, placer.Place(g)
	})
	if err != nil {
		return err
	}

	// place fog nodes
	fogResult, err := runStage(cfg, "Placing fog nodes", func() (fog.Result, error) {
		placer := &fog.Placer{
			Types:         cfg.FogContainers(),
			CostThreshold: cfg.CostThreshold,
			MaxFogNodes:   cfg.MaxFogNodes,
			TimeMeasuring: cfg.TimeMeasuring,
		}
		return placer.Place(g), nil
	})
	if err != nil {
		return err
	}

	// export
	script := export.MaxiNetScript(g, fogResult, pool)
	if err := os.WriteFile(outputFile, []byte(script), 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Generated %s (%d systems, %d devices, %d fog placements)",
		outputFile, len(g.Systems()), len(g.EdgeDevices()), len(fogResult.Placements)))

	if !fogResult.Success {
		ui.Warn("not all devices are covered by a fog node")
		return fog.ErrPlacementFailed
	}
	return nil
}

// runStage reports a pipeline stage on the terminal and times it.
func runStage[T any](cfg *config.Config, name string, fn func() (T, error)) (T, error) {
	ui.StageStarted(name)
	start := time.Now()

	value, err := fn()
	if err != nil {
		ui.StageFailed(name, err.Error())
		return value, err
	}

	detail := ""
	if cfg.TimeMeasuring {
		detail = util.FormatDuration(time.Since(start))
	}
	ui.StageDone(name, detail)
	return value, nil
}
