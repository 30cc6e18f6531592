// golang.design/x/clipboard panics on platforms it can't support
// instead of returning error from Init

//go:build js || (!windows && !cgo)

package main

import (
	"backdrop/misc"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	misc.WarnLogger.Warn("clipboard is disabled on this platform")
}

func ClipboardWriteText(str string) bool {
	return false
}

func ClipboardReadText() string {
	return ""
}
