package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1

	ReloadThemeKey eb.Key = eb.KeyF5

	ScreenshotKey eb.Key = eb.KeyP
	CopyReproKey  eb.Key = eb.KeyC

	ToggleRouteKey eb.Key = eb.KeyR
)

// route R toggles to when on landing route
const AboutRoute = "/about"
