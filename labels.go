package main

import "image/color"

// LabelCode is the short code stored on a box and written to the export.
type LabelCode string

const (
	LabelButton       LabelCode = "b"
	LabelInput        LabelCode = "i"
	LabelSelect       LabelCode = "s"
	LabelText         LabelCode = "t"
	LabelImage        LabelCode = "img"
	LabelLink         LabelCode = "a"
	LabelList         LabelCode = "l"
	LabelActiveInput  LabelCode = "ai"
	LabelActiveSelect LabelCode = "as"
)

// labelOrder fixes the cycle order; the first six are reachable through the
// digit keys 1-6.
var labelOrder = []LabelCode{
	LabelButton,
	LabelInput,
	LabelSelect,
	LabelText,
	LabelImage,
	LabelLink,
	LabelList,
	LabelActiveInput,
	LabelActiveSelect,
}

var labelNames = map[LabelCode]string{
	LabelButton:       "button",
	LabelInput:        "input",
	LabelSelect:       "select",
	LabelText:         "text",
	LabelImage:        "image",
	LabelLink:         "link",
	LabelList:         "list",
	LabelActiveInput:  "active-input",
	LabelActiveSelect: "active-select",
}

var labelColors = map[LabelCode]color.RGBA{
	LabelButton:       {224, 108, 117, 255},
	LabelInput:        {97, 175, 239, 255},
	LabelSelect:       {198, 120, 221, 255},
	LabelText:         {152, 195, 121, 255},
	LabelImage:        {229, 192, 123, 255},
	LabelLink:         {86, 182, 194, 255},
	LabelList:         {209, 154, 102, 255},
	LabelActiveInput:  {82, 139, 255, 255},
	LabelActiveSelect: {190, 80, 70, 255},
}

func (l LabelCode) Name() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return string(l)
}

func (l LabelCode) Color() color.RGBA {
	if c, ok := labelColors[l]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// labelForDigit maps the 1-6 digit keys to the first six labels.
func labelForDigit(d int) (LabelCode, bool) {
	if d < 1 || d > 6 {
		return "", false
	}
	return labelOrder[d-1], true
}

// nextLabel cycles through the full label set.
func nextLabel(l LabelCode) LabelCode {
	for i, candidate := range labelOrder {
		if candidate == l {
			return labelOrder[(i+1)%len(labelOrder)]
		}
	}
	return labelOrder[0]
}
