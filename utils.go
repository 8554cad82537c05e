package main

import (
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/atotto/clipboard"
)

type Severity int

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

func (s Severity) String() string {
	return []string{
		"Fatal", "Error", "Warning", "Info", "Debug",
	}[s]
}

func checkError(err error, logger bslogger.Logger, severity Severity) {
	if err != nil {
		switch severity {
		case Fatal:
			logger.Fatal(err.Error())
		case Error:
			logger.Error(err.Error())
		case Warning:
			logger.Warning(err.Error())
		case Info:
			logger.Info(err.Error())
		case Debug:
			logger.Debug(err.Error())
		default:
			logger.Fatal(err.Error())
		}
	}
}

func (m *model) cursor() *point {
	if m.player == nil || !m.kind.usesGrid() {
		return nil
	}
	return &point{m.cursorRow, m.cursorCol}
}

// copyFrame puts the plain-text rendering of the current frame on the
// system clipboard.
func (m *model) copyFrame() error {
	if m.player == nil {
		return nil
	}
	lines := plainFrame(m.player.scene, m.player.current, m.cursor())
	return clipboard.WriteAll(strings.Join(lines, "\n"))
}
