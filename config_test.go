package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	input := `
# annoterm settings
savedirectory = ~/exports
history = false
confirmations = true
`
	config := defaultConfig()
	parseConfig(strings.NewReader(input), "/home/user", config)

	if config.SaveDirectory != filepath.Join("/home/user", "exports") {
		t.Errorf("save directory: got %q", config.SaveDirectory)
	}
	if config.History {
		t.Error("history should be disabled")
	}
	if !config.Confirmations {
		t.Error("confirmations should be enabled")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	config := defaultConfig()
	parseConfig(strings.NewReader(""), "/home/user", config)

	if config.SaveDirectory != "" {
		t.Errorf("save directory default: got %q", config.SaveDirectory)
	}
	if !config.History || !config.Confirmations {
		t.Error("history and confirmations default to true")
	}
}

func TestParseConfigIgnoresJunk(t *testing.T) {
	input := `
# comment
not a key value line
unknownkey = whatever
history=true
`
	config := defaultConfig()
	parseConfig(strings.NewReader(input), "/home/user", config)

	if !config.History {
		t.Error("history=true not parsed")
	}
}

func TestParseConfigKeyAliases(t *testing.T) {
	config := defaultConfig()
	parseConfig(strings.NewReader("undo = false\nconfirm = false"), "/home/user", config)

	if config.History {
		t.Error("undo alias not honored")
	}
	if config.Confirmations {
		t.Error("confirm alias not honored")
	}
}

func TestGetSavePathWithoutDirectory(t *testing.T) {
	config := defaultConfig()
	if got := config.GetSavePath("annotations.json"); got != "annotations.json" {
		t.Errorf("got %q", got)
	}
}

func TestGetSavePathWithDirectory(t *testing.T) {
	config := defaultConfig()
	config.SaveDirectory = t.TempDir()

	got := config.GetSavePath("annotations.json")
	if got != filepath.Join(config.SaveDirectory, "annotations.json") {
		t.Errorf("got %q", got)
	}
}
