package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/alscript/host"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagFrames uint64
	flagKeys   []string
	flagDrags  []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scene headless with scripted input",
	Long: `Runs a fixed number of frames at the configured tick rate without
waiting for wall time. Keys are held with --key KEY@FROM-TO and the pointer is
dragged with the secondary button using --drag FROM-TO:DX,DY. Frames count
from 1.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().Uint64Var(&flagFrames, "frames", 0, "Frames to run (0 = max_frames from config, else 300)")
	runCmd.Flags().StringArrayVar(&flagKeys, "key", nil, "Hold a key, e.g. W@1-60 or F@90")
	runCmd.Flags().StringArrayVar(&flagDrags, "drag", nil, "Drag the pointer, e.g. 10-40:3,0")
}

func runRun(cmd *cobra.Command, args []string) error {
	script, err := parseInputScript(flagKeys, flagDrags)
	if err != nil {
		return err
	}

	in := host.NewManualInput()
	w, err := setup(in)
	if err != nil {
		return err
	}
	defer w.logger.Sync()

	frames := flagFrames
	if frames == 0 {
		frames = w.config.MaxFrames
	}
	if frames == 0 {
		frames = 300
	}

	if err := w.engine.Start(); err != nil {
		return err
	}

	dt := w.config.DeltaTime()
	report := &Report{
		ConfigSource: w.source,
		Scene:        w.scene.Name,
		Frames:       frames,
		DeltaTime:    dt,
		FrameTime:    Stats{Samples: make([]time.Duration, 0, frames)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	start := time.Now()
	for frame := uint64(1); frame <= frames; frame++ {
		script.apply(frame, in)
		frameStart := time.Now()
		w.engine.Once(dt)
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
	}
	report.TotalTime = time.Since(start)
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Engine = w.engine.Stats()
	storage := w.host.Storage()
	for _, id := range storage.Entities() {
		report.Entities = append(report.Entities, EntityReport{
			Name:     storage.Name(id),
			Script:   w.engine.Class(id),
			Active:   storage.Active(id),
			Position: w.host.TransformPosition(id),
		})
	}
	w.engine.Stop()
	w.logger.Info("run finished", zap.Uint64("frames", frames), zap.Duration("elapsed", report.TotalTime))

	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return nil
}
