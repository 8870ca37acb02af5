package ui

import (
	"image"
	"strings"

	"torus-life/internal/core"
)

// StatusLines lays out the HUD text: the first parameter group on one line,
// then the last command status, then the prompt or the key help.
func StatusLines(snapshot core.ParameterSnapshot, status, prompt, help string) []string {
	var lines []string
	if len(snapshot.Groups) > 0 {
		first := core.ParameterSnapshot{Groups: snapshot.Groups[:1]}
		lines = append(lines, strings.Join(first.Lines(), "  "))
	}
	lines = append(lines, status)
	if prompt != "" {
		return append(lines, prompt+"_")
	}
	return append(lines, strings.Split(help, "\n")...)
}

// SelectionRect returns the pixel rectangle covered by a cell region.
func SelectionRect(r core.Region, cellSize int) image.Rectangle {
	return image.Rect(r.ColMin*cellSize, r.RowMin*cellSize, r.ColMax*cellSize, r.RowMax*cellSize)
}
