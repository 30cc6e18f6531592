package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"backdrop"
	"backdrop/ebcanvas"
	"backdrop/misc"
)

var (
	flagRunWidth  int
	flagRunHeight int
	flagHotReload bool
	flagPProf     bool
	flagPProfAddr string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the background in a resizable window",
	Long: `Opens a window and animates the background at display refresh rate.

Hotkeys:
  F1  toggle debug console
  F5  reload theme file
  P   save screenshot
  C   copy command line that reproduces this run
  R   toggle between landing and about route`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRunWidth, "width", 1280, "initial window width")
	runCmd.Flags().IntVar(&flagRunHeight, "height", 720, "initial window height")
	runCmd.Flags().BoolVar(&flagHotReload, "hot", false, "reload theme file when it changes")
	runCmd.Flags().BoolVar(&flagPProf, "pprof", false, "serve pprof and prometheus metrics")
	runCmd.Flags().StringVar(&flagPProfAddr, "pprof-addr", "localhost:6060", "address for --pprof")
}

const statusDuration = time.Second * 2

type App struct {
	Engine *backdrop.Engine
	Canvas *ebcanvas.Canvas
	Events *backdrop.HostEvents

	Watcher *backdrop.ThemeWatcher
	Metrics *FrameMetrics

	ShowDebugConsole bool

	Status      string
	StatusTimer backdrop.Timer
	statusImage *eb.Image

	screenshotRequested bool

	width, height int
}

func NewApp(opts backdrop.Options, width, height int) (*App, error) {
	a := new(App)

	a.Canvas = ebcanvas.New(width, height)
	a.Events = backdrop.NewHostEvents()
	a.Engine = backdrop.NewEngine(opts)

	a.StatusTimer.Duration = statusDuration

	a.width = width
	a.height = height

	if err := a.Engine.Mount(a.Canvas, a.Events); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *App) ShowStatus(format string, values ...any) {
	a.Status = fmt.Sprintf(format, values...)
	a.StatusTimer.Current = a.StatusTimer.Duration
	misc.InfoLogger.Info(a.Status)
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	a.StatusTimer.TickDown(UpdateDelta())
	a.StatusTimer.ClampCurrent()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("backdrop " + a.Engine.Route() + " FPS: " + fpsStr)

	// ==========================
	// pointer
	// ==========================
	if pos, moved := PollPointer(); moved {
		a.Events.DispatchPointerMove(pos.X, pos.Y)
	}

	// ==========================
	// theme reloading
	// ==========================
	if a.Watcher != nil {
		select {
		case theme := <-a.Watcher.Themes():
			a.Engine.SetTheme(theme)
			a.ShowStatus("theme reloaded")
		default:
		}
	}

	if IsKeyJustPressed(ReloadThemeKey) {
		a.ReloadTheme()
	}

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if IsKeyJustPressed(ToggleRouteKey) {
		if a.Engine.OnLandingRoute() {
			a.Engine.SetRoute(AboutRoute)
		} else {
			a.Engine.SetRoute(backdrop.LandingRoute)
		}
		a.ShowStatus("route %s", a.Engine.Route())
	}

	if IsKeyJustPressed(CopyReproKey) {
		repro := reproCommand("run", a.Engine.Route())
		if ClipboardWriteText(repro) {
			a.ShowStatus("copied: %s", repro)
		} else {
			a.ShowStatus("clipboard unavailable: %s", repro)
		}
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.screenshotRequested = true
	}

	// ==========================
	// DebugPrint
	// ==========================
	info := a.Engine.LastFrame()
	vp := a.Engine.Viewport()

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrintf("viewport", "%dx%d compact=%v", vp.Width, vp.Height, vp.Compact)
	DebugPrint("route", a.Engine.Route())
	DebugPrint("frames", a.Engine.Clock().Frames())
	DebugPrint("connections", info.Connections)
	DebugPrint("sparkles", info.VisibleSparkles)
	for layer := range backdrop.LayerCount {
		DebugPrint(layer.String(), info.Painted(layer))
	}

	return nil
}

func (a *App) ReloadTheme() {
	if flagThemePath == "" {
		a.Engine.SetTheme(backdrop.DefaultTheme())
		a.ShowStatus("default theme restored")
		return
	}

	theme, err := backdrop.LoadTheme(flagThemePath)
	if err != nil {
		misc.ErrLogger.Errorf("failed to reload theme: %v", err)
		a.ShowStatus("theme reload failed")
		return
	}
	a.Engine.SetTheme(theme)
	a.ShowStatus("theme reloaded")
}

func (a *App) Draw(dst *eb.Image) {
	a.Canvas.Attach(dst)

	start := time.Now()
	painted := a.Engine.Tick(GlobalTimerNow())
	a.Metrics.Observe(painted, time.Since(start), a.Engine.LastFrame())

	a.Canvas.Detach()

	if a.screenshotRequested {
		a.screenshotRequested = false
		if filename, err := TakeScreenshot(dst, "."); err != nil {
			misc.ErrLogger.Errorf("failed to take screenshot: %v", err)
			a.ShowStatus("screenshot failed")
		} else {
			a.ShowStatus("saved %s", filename)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}

	a.drawStatus(dst)
}

func (a *App) drawStatus(dst *eb.Image) {
	if a.StatusTimer.Current <= 0 || a.Status == "" {
		return
	}

	const charW, charH = 6, 16
	const margin = 5

	w := len(a.Status)*charW + margin*2
	h := charH + margin*2

	if a.statusImage == nil || a.statusImage.Bounds().Dx() < w || a.statusImage.Bounds().Dy() < h {
		if a.statusImage != nil {
			a.statusImage.Deallocate()
		}
		a.statusImage = eb.NewImageWithOptions(
			image.Rect(0, 0, w, h),
			&eb.NewImageOptions{Unmanaged: true},
		)
	}

	a.statusImage.Clear()
	a.statusImage.Fill(color.NRGBA{0, 0, 0, 180})
	ebitenutil.DebugPrintAt(a.statusImage, a.Status, margin, margin)

	dstBounds := dst.Bounds()

	op := &eb.DrawImageOptions{}
	op.GeoM.Translate(float64(margin), float64(dstBounds.Dy()-h-margin))
	op.ColorScale.ScaleAlpha(float32(a.StatusTimer.Normalize()))
	dst.DrawImage(a.statusImage, op)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width = outsideWidth
		a.height = outsideHeight
		a.Events.DispatchResize(outsideWidth, outsideHeight)
	}

	return outsideWidth, outsideHeight
}

func runRun(cmd *cobra.Command, args []string) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}

	InitClipboardManager()

	app, err := NewApp(opts, flagRunWidth, flagRunHeight)
	if err != nil {
		return err
	}
	defer app.Engine.Unmount()

	if flagPProf {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		app.Metrics = NewFrameMetrics(reg)

		server := StartDebugServer(flagPProfAddr, reg)
		defer server.Close()

		DebugPutsPersist("pprof", flagPProfAddr)
	}

	if flagHotReload && flagThemePath != "" {
		watcher, err := backdrop.NewThemeWatcher(flagThemePath)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if err := watcher.Start(ctx); err != nil {
			watcher.Stop()
			return err
		}
		defer watcher.Stop()

		app.Watcher = watcher
		DebugPutsPersist("hot reload", flagThemePath)
	}

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(flagRunWidth, flagRunHeight)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("backdrop")

	return eb.RunGame(app)
}
