//go:build !js && (windows || cgo)

package main

import (
	"unicode/utf8"

	"golang.design/x/clipboard"

	"backdrop/misc"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager
	misc.InfoLogger.Debug("initializing clipboard")
	err := clipboard.Init()
	if err != nil {
		misc.WarnLogger.Warnf("clipboard is disabled: %v", err)
	}
	cm.Initialized = err == nil
}

func ClipboardWriteText(str string) bool {
	cm := &TheClipboardManager
	if cm.Initialized {
		clipboard.Write(clipboard.FmtText, []byte(str))
		return true
	}
	return false
}

func ClipboardReadText() string {
	cm := &TheClipboardManager
	if cm.Initialized {
		bytes := clipboard.Read(clipboard.FmtText)
		// basic sanity check
		if utf8.Valid(bytes) {
			return string(bytes)
		}
	}

	return ""
}
