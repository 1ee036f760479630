package main

type model struct {
	width             int
	height            int
	mode              Mode
	help              bool
	session           *Session
	config            *Config
	preview           *Preview
	fileList          []string
	selectedFileIndex int
	confirmAction     ConfirmAction
	loadingPath       string
	errorMessage      string
	successMessage    string
}
