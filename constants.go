package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeAnnotate
	ModeFileInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteJSON
	ConfirmOverwritePNG
)
