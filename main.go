package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(
		initialModel(loadConfig()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config) model {
	return model{
		mode:              ModeStartup,
		session:           NewSession(config.History),
		config:            config,
		selectedFileIndex: -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) rebuildPreview() {
	cols := m.width
	if cols < 1 {
		cols = 1
	}
	rows := m.height - 1 // leave room for the status line
	if rows < 1 {
		rows = 1
	}
	m.preview = newPreview(m.session.Image(), cols, rows)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildPreview()
		return m, nil

	case imageLoadedMsg:
		// Last writer wins; completion order is not guaranteed to match
		// the order the files were opened.
		m.session.SetImage(msg.img, msg.path)
		if m.loadingPath == msg.path {
			m.loadingPath = ""
		}
		m.rebuildPreview()
		if m.mode == ModeStartup {
			m.mode = ModeAnnotate
		}
		m.successMessage = fmt.Sprintf("opened %s", filepath.Base(msg.path))
		return m, nil

	case imageErrorMsg:
		if m.loadingPath == msg.path {
			m.loadingPath = ""
		}
		m.errorMessage = msg.err.Error()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeAnnotate || m.help || m.preview == nil {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.preview.inBounds(msg.X, msg.Y) {
			m.errorMessage = ""
			m.successMessage = ""
			m.session.PointerDown(m.preview.imagePoint(msg.X, msg.Y))
		}
	case tea.MouseActionMotion:
		m.session.PointerMove(m.preview.imagePoint(msg.X, msg.Y))
	case tea.MouseActionRelease:
		m.session.PointerUp()
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	m.errorMessage = ""
	m.successMessage = ""

	if m.help {
		switch msg.String() {
		case "?", "q", "escape", "esc":
			m.help = false
		}
		return m, nil
	}

	switch m.mode {
	case ModeStartup:
		return m.updateStartupKey(msg)
	case ModeAnnotate:
		return m.updateAnnotateKey(msg)
	case ModeFileInput:
		return m.updateFileInputKey(msg)
	case ModeConfirm:
		return m.updateConfirmKey(msg)
	}
	return m, nil
}

func (m model) updateStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "o":
		m.scanImageFiles()
		m.mode = ModeFileInput
	case "q":
		return m, tea.Quit
	case "?":
		m.help = true
	}
	return m, nil
}

func (m model) updateAnnotateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		if m.config.Confirmations {
			m.confirmAction = ConfirmQuit
			m.mode = ModeConfirm
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		return m, nil
	case "o":
		m.scanImageFiles()
		m.mode = ModeFileInput
		return m, nil
	case "tab":
		m.session.CycleLabel()
		return m, nil
	case "ctrl+z":
		m.session.Undo()
		return m, nil
	case "ctrl+y":
		m.session.Redo()
		return m, nil
	case "e":
		return m.startExport(ConfirmOverwriteJSON, exportJSONName)
	case "p":
		return m.startExport(ConfirmOverwritePNG, exportPNGName)
	case "c":
		if err := m.copyJSONToClipboard(); err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		} else {
			m.successMessage = fmt.Sprintf("copied %d annotations to clipboard", m.session.Count())
		}
		return m, nil
	}

	if d, err := strconv.Atoi(key); err == nil {
		if label, ok := labelForDigit(d); ok {
			m.session.SetLabel(label)
		}
	}
	return m, nil
}

// startExport routes through the overwrite confirmation when the target
// already exists and confirmations are on.
func (m model) startExport(action ConfirmAction, filename string) (tea.Model, tea.Cmd) {
	path := m.config.GetSavePath(filename)
	if m.config.Confirmations && fileExists(path) {
		m.confirmAction = action
		m.mode = ModeConfirm
		return m, nil
	}
	m.performExport(action, path)
	return m, nil
}

func (m *model) performExport(action ConfirmAction, path string) {
	var err error
	switch action {
	case ConfirmOverwriteJSON:
		err = m.exportJSON(path)
	case ConfirmOverwritePNG:
		err = m.exportPNG(path)
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("exported %d annotations to %s", m.session.Count(), path)
}

func (m model) updateFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedFileIndex > 0 {
			m.selectedFileIndex--
		}
	case "down", "j":
		if m.selectedFileIndex >= 0 && m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
		}
	case "enter":
		if m.selectedFileIndex >= 0 && m.selectedFileIndex < len(m.fileList) {
			path := m.fileList[m.selectedFileIndex]
			m.loadingPath = path
			m.mode = m.modeAfterFileInput()
			return m, loadImageCmd(path)
		}
	case "escape", "esc":
		m.mode = m.modeAfterFileInput()
	}
	return m, nil
}

func (m model) modeAfterFileInput() Mode {
	if m.session.HasImage() {
		return ModeAnnotate
	}
	return ModeStartup
}

func (m model) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteJSON:
			m.performExport(ConfirmOverwriteJSON, m.config.GetSavePath(exportJSONName))
		case ConfirmOverwritePNG:
			m.performExport(ConfirmOverwritePNG, m.config.GetSavePath(exportPNGName))
		}
		m.mode = ModeAnnotate
	case "n", "escape", "esc", "q":
		m.mode = ModeAnnotate
	}
	return m, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
