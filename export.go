package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// The exported filename is a fixed literal identifying the workspace image.
// It is deliberately not derived from the file actually opened.
const exportedImageName = "annotated_image.jpg"

const (
	exportJSONName = "annotations.json"
	exportPNGName  = "annotations.png"
)

// Document is the exported artifact.
type Document struct {
	Filename    string `json:"filename"`
	Annotations []Box  `json:"annotations"`
}

// Serialize snapshots the annotation list into an export document. An empty
// list serializes as [], never null.
func Serialize(list []Box) Document {
	if list == nil {
		list = []Box{}
	}
	return Document{
		Filename:    exportedImageName,
		Annotations: list,
	}
}

// JSON renders the document pretty-printed with 2-space indentation.
func (d Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func (m *model) exportJSON(path string) error {
	doc := Serialize(m.session.Annotations())
	data, err := doc.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func (m *model) copyJSONToClipboard() error {
	doc := Serialize(m.session.Annotations())
	data, err := doc.JSON()
	if err != nil {
		return err
	}
	return clipboard.WriteAll(string(data))
}

func (m *model) exportPNG(path string) error {
	if !m.session.HasImage() {
		return fmt.Errorf("no image loaded")
	}
	return renderAnnotatedPNG(path, m.session.Image(), m.session.Annotations())
}
