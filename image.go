package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chai2010/webp"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/disintegration/imaging"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

type imageLoadedMsg struct {
	path string
	img  image.Image
}

type imageErrorMsg struct {
	path string
	err  error
}

// loadImageCmd decodes off the update loop. Decode is fire-and-forget: if a
// second open starts while one is pending, whichever completion arrives
// last wins the image reference.
func loadImageCmd(path string) tea.Cmd {
	return func() tea.Msg {
		img, err := decodeImage(path)
		if err != nil {
			return imageErrorMsg{path: path, err: err}
		}
		return imageLoadedMsg{path: path, img: img}
	}
}

// decodeImage tries the registered decoders first, then falls back to webp.
func decodeImage(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}
	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("cannot decode %s as an image", filepath.Base(path))
}

func (m *model) scanImageFiles() {
	m.fileList = []string{}

	dir, err := os.Getwd()
	if err != nil {
		m.selectedFileIndex = -1
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		m.selectedFileIndex = -1
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if imageExtensions[ext] {
			m.fileList = append(m.fileList, entry.Name())
		}
	}

	sort.Strings(m.fileList)

	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
	} else {
		m.selectedFileIndex = -1
	}
}
