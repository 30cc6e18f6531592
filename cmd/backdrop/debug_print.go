package main

import (
	"fmt"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = putDebugMsg(dm.DebugMsgs, key, value)
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = putDebugMsg(dm.PersistentDebugMsgs, key, value)
}

func putDebugMsg(msgs []DebugMsg, key, value string) []DebugMsg {
	for i, msg := range msgs {
		if msg.Key == key {
			msgs[i].Value = value
			return msgs
		}
	}

	return append(msgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DebugMsgsText() string {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	total := len(dm.PersistentDebugMsgs) + len(dm.DebugMsgs)
	msgCounter := 0

	for _, msgs := range [][]DebugMsg{dm.PersistentDebugMsgs, dm.DebugMsgs} {
		for _, msg := range msgs {
			// builder doesn't actually errors out
			// no need to check error
			dm.builder.WriteString(msg.Key)
			dm.builder.WriteString(": ")
			dm.builder.WriteString(msg.Value)

			msgCounter++
			if msgCounter != total {
				dm.builder.WriteString("\n")
			}
		}
	}

	return dm.builder.String()
}

func DrawDebugMsgs(dst *eb.Image) {
	const margin = 5
	ebitenutil.DebugPrintAt(dst, DebugMsgsText(), margin, margin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
