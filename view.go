package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#abb2bf")).Background(lipgloss.Color("#2c323c"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")).Background(lipgloss.Color("#2c323c")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379")).Background(lipgloss.Color("#2c323c"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#61afef")).Bold(true)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	renderHeight := m.height - 1 // status line
	if renderHeight < 1 {
		renderHeight = 1
	}

	var lines []string
	switch {
	case m.mode == ModeFileInput:
		lines = m.fileListView(renderHeight)
	case m.mode == ModeStartup:
		lines = m.startupView()
	default:
		lines = m.canvasView()
	}

	var result strings.Builder
	for i := 0; i < renderHeight; i++ {
		if i < len(lines) {
			result.WriteString(lines[i])
		}
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) canvasView() []string {
	if m.preview == nil {
		return []string{"", dimStyle.Render("  (no image)")}
	}
	var draft *Box
	if d, ok := m.session.Draft(); ok {
		draft = &d
	}
	return m.preview.Render(m.session.Annotations(), draft)
}

func (m model) startupView() []string {
	lines := []string{
		"",
		"  " + titleStyle.Render("annoterm"),
		"",
		"  Draw labeled boxes over an image, in your terminal.",
		"",
		"  'o'  Open an image from the current directory",
		"  '?'  Help",
		"  'q'  Quit",
	}
	if !m.config.History {
		lines = append(lines, "", dimStyle.Render("  (undo/redo disabled in ~/.annotermrc)"))
	}
	return lines
}

func (m model) fileListView(renderHeight int) []string {
	width := m.width
	if width < 1 {
		width = 1
	}

	lines := []string{
		"Select an image to annotate:",
		strings.Repeat("─", width),
	}

	if len(m.fileList) == 0 {
		lines = append(lines, "(No image files found in current directory)")
		return lines
	}

	maxFiles := renderHeight - 3
	if maxFiles < 1 {
		maxFiles = 1
	}
	startIdx := 0
	if m.selectedFileIndex >= maxFiles {
		startIdx = m.selectedFileIndex - maxFiles + 1
	}
	endIdx := startIdx + maxFiles
	if endIdx > len(m.fileList) {
		endIdx = len(m.fileList)
	}

	for i := startIdx; i < endIdx; i++ {
		if i == m.selectedFileIndex {
			lines = append(lines, "> "+m.fileList[i]+" <")
		} else {
			lines = append(lines, "  "+m.fileList[i])
		}
	}
	lines = append(lines, strings.Repeat("─", width))
	return lines
}

func (m model) statusLine() string {
	width := m.width
	if width < 1 {
		width = 1
	}

	if m.errorMessage != "" {
		return errorStyle.Width(width).Render(" " + m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Width(width).Render(" " + m.successMessage)
	}

	var text string
	switch m.mode {
	case ModeStartup:
		text = " Press 'o' to open an image, '?' for help, 'q' to quit"
	case ModeFileInput:
		text = " j/k move · enter open · esc cancel"
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmQuit:
			text = " Quit? Unexported annotations will be lost (y/n)"
		case ConfirmOverwriteJSON:
			text = " " + exportJSONName + " exists, overwrite? (y/n)"
		case ConfirmOverwritePNG:
			text = " " + exportPNGName + " exists, overwrite? (y/n)"
		}
	default:
		label := m.session.Label()
		labelStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(hexColor(label.Color()))).
			Background(lipgloss.Color("#2c323c")).
			Bold(true)
		parts := []string{
			filepath.Base(m.session.ImagePath()),
			labelStyle.Render(fmt.Sprintf("%s [%s]", label.Name(), string(label))),
			fmt.Sprintf("boxes %d", m.session.Count()),
		}
		if m.config.History {
			parts = append(parts, fmt.Sprintf("undo %d · redo %d", m.session.UndoDepth(), m.session.RedoDepth()))
		}
		if m.loadingPath != "" {
			parts = append(parts, "loading "+filepath.Base(m.loadingPath)+"…")
		}
		parts = append(parts, "? help")
		text = " " + strings.Join(parts, " │ ")
	}

	return statusStyle.Width(width).Render(text)
}

func (m model) helpView() string {
	helpLines := []string{
		"Anno(tate)(T)erm Help",
		"=====================",
		"",
		"Open & export:",
		"--------------",
		"  o        Open an image from the current directory",
		"  e        Export annotations.json (2-space indented JSON)",
		"  p        Export annotations.png (image with boxes drawn on)",
		"  c        Copy the export JSON to the system clipboard",
		"",
		"Drawing:",
		"--------",
		"  mouse    Drag with the left button to draw a labeled box",
		"           A plain click commits a zero-size box at that point",
		"  1-6      Select label: button, input, select, text, image, link",
		"  tab      Cycle through all nine labels",
		"",
		"History:",
		"--------",
		"  ctrl+z   Undo the last commit",
		"  ctrl+y   Redo",
		"",
		"Other:",
		"------",
		"  ?        Toggle this help",
		"  q        Quit",
		"",
		"Press '?', 'q' or escape to close help",
	}
	return strings.Join(helpLines, "\n")
}
