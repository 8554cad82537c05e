package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeHelp
)

type FileOperation int

const (
	FileOpSaveTXT FileOperation = iota
	FileOpSavePNG
)

type SceneKind int

const (
	SceneBoundary SceneKind = iota
	SceneFlood
	SceneLine
	SceneCircle
	SceneStack
	numScenes
)

type ActionType int

const (
	ActionPaint ActionType = iota
	ActionPush
	ActionPop
)

const (
	defaultRows    = 70
	defaultCols    = 30
	defaultDelayMS = 150
	minDelayMS     = 10
	maxDelayMS     = 5000
	rcFile         = ".rasterrc"
)
