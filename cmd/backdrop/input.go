package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"backdrop"
)

var TheGlobalTimer struct {
	Current time.Duration
	Delta   time.Duration
}

// UpdateGlobalTimer advances timer by one tick.
// Must be called once at the start of every Update.
func UpdateGlobalTimer() {
	gt := &TheGlobalTimer

	gt.Delta = time.Second / time.Duration(max(eb.TPS(), 1))
	gt.Current += gt.Delta
}

func GlobalTimerNow() time.Duration {
	return TheGlobalTimer.Current
}

func UpdateDelta() time.Duration {
	return TheGlobalTimer.Delta
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

func CursorFPt() backdrop.FPoint {
	x, y := eb.CursorPosition()
	return backdrop.FPt(float64(x), float64(y))
}

var TheInputManager struct {
	touchBuf []eb.TouchID

	HasPointer  bool
	LastPointer backdrop.FPoint
}

// PollPointer returns pointer position and whether it moved since last poll.
// Touch takes priority over mouse cursor.
func PollPointer() (backdrop.FPoint, bool) {
	im := &TheInputManager

	var pos backdrop.FPoint

	im.touchBuf = eb.AppendTouchIDs(im.touchBuf[:0])
	if len(im.touchBuf) > 0 {
		x, y := eb.TouchPosition(im.touchBuf[0])
		pos = backdrop.FPt(float64(x), float64(y))
	} else {
		pos = CursorFPt()
	}

	moved := !im.HasPointer || !pos.Eq(im.LastPointer)

	im.HasPointer = true
	im.LastPointer = pos

	return pos, moved
}
