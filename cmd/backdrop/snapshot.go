package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"backdrop"
	"backdrop/misc"
)

var (
	flagSnapWidth  int
	flagSnapHeight int
	flagSnapFrames int
	flagSnapOut    string
	flagSnapForce  bool
	flagSnapPointX float64
	flagSnapPointY float64
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render frames headless and save the last one as png",
	Long: `Runs the engine on software canvas for the given number of frames at 60 frames
per second and writes the final frame to a png file. Same seed gives same picture.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&flagSnapWidth, "width", 1920, "canvas width in pixels")
	snapshotCmd.Flags().IntVar(&flagSnapHeight, "height", 1080, "canvas height in pixels")
	snapshotCmd.Flags().IntVar(&flagSnapFrames, "frames", 120, "frames to simulate")
	snapshotCmd.Flags().StringVarP(&flagSnapOut, "out", "o", "", "output png (default: unique name in current folder)")
	snapshotCmd.Flags().BoolVarP(&flagSnapForce, "force", "f", false, "overwrite output file")
	snapshotCmd.Flags().Float64Var(&flagSnapPointX, "pointer-x", -1, "pointer x (default: canvas center)")
	snapshotCmd.Flags().Float64Var(&flagSnapPointY, "pointer-y", -1, "pointer y (default: canvas center)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if flagSnapWidth <= 0 || flagSnapHeight <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", flagSnapWidth, flagSnapHeight)
	}
	if flagSnapFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", flagSnapFrames)
	}

	outPath, err := snapshotOutPath()
	if err != nil {
		return err
	}

	opts, err := engineOptions()
	if err != nil {
		return err
	}

	canvas := backdrop.NewRasterCanvas(flagSnapWidth, flagSnapHeight)
	events := backdrop.NewHostEvents()

	engine := backdrop.NewEngine(opts)
	if err := engine.Mount(canvas, events); err != nil {
		return err
	}
	defer engine.Unmount()

	if flagSnapPointX >= 0 && flagSnapPointY >= 0 {
		events.DispatchPointerMove(flagSnapPointX, flagSnapPointY)
	}

	const frameTime = time.Second / 60

	{
		timer := backdrop.NewProfTimer(fmt.Sprintf("rendering %d frames", flagSnapFrames))
		for i := range flagSnapFrames {
			engine.Tick(frameTime * time.Duration(i+1))
		}
		timer.Report()
	}

	if err := misc.WritePNG(outPath, canvas.Image); err != nil {
		return err
	}

	info := engine.LastFrame()
	misc.InfoLogger.Infof(
		"saved %s (connections %d, visible sparkles %d)",
		outPath, info.Connections, info.VisibleSparkles,
	)
	misc.InfoLogger.Infof("reproduce with: %s", reproCommand("snapshot", engine.Route()))

	return nil
}

func snapshotOutPath() (string, error) {
	if flagSnapOut == "" {
		filename, err := misc.UniqueFilename(".", "backdrop", ".png")
		if err != nil {
			return "", err
		}
		return filename, nil
	}

	if filepath.Ext(flagSnapOut) != ".png" {
		return "", fmt.Errorf("output %s must have .png extension", flagSnapOut)
	}

	exists, err := misc.CheckFileExists(flagSnapOut)
	if err != nil {
		return "", err
	}
	if exists && !flagSnapForce {
		return "", fmt.Errorf("%s already exists, use --force to overwrite", flagSnapOut)
	}

	return flagSnapOut, nil
}
