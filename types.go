package main

import (
	"github.com/BrugadaSyndrome/bslogger"

	"github.com/ARBS-hmm/Raster/grid"
)

type model struct {
	width          int
	height         int
	cursorRow      int
	cursorCol      int
	mode           Mode
	helpScroll     int
	kind           SceneKind
	policy         grid.Policy
	policySet      bool // user overrode the scene's default policy
	player         *player
	playing        bool
	tickGen        int
	delayMS        int
	filename       string
	fileOp         FileOperation
	errorMessage   string
	successMessage string
	config         *Config
	logger         bslogger.Logger
}

type point struct {
	Row, Col int
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type PaintData struct {
	Cells []grid.Transition
}

type PushData struct {
	Payload string
}

type PopData struct {
	Payload string
}
