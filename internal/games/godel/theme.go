// Package godel implements the playable sliding-tile game on top of the board
// engine: variants, tile themes, input handling and rendering.
package godel

import (
	"strconv"

	"github.com/vovakirdan/getgodel/internal/config"
)

// labelWidth is the widest label that fits in a cell.
const labelWidth = cellWidth - 1

// logicians names the tile values in the logicians theme. Larger values
// fall back to numbers.
var logicians = map[int]string{
	2:    "Church",
	4:    "Turing",
	8:    "Frege",
	16:   "Russell",
	32:   "Post",
	64:   "Quine",
	128:  "Curry",
	256:  "Hilbert",
	512:  "Tarski",
	1024: "Montague",
	2048: "Godel",
}

// Label returns the text shown on a tile, cut to fit a cell.
func Label(theme config.Theme, value int) string {
	label := strconv.Itoa(value)
	if theme == config.ThemeLogicians {
		if name, ok := logicians[value]; ok {
			label = name
		}
	}
	if len(label) > labelWidth {
		label = label[:labelWidth]
	}
	return label
}

// TargetName returns how the target tile is announced.
func TargetName(theme config.Theme, target int) string {
	if theme == config.ThemeLogicians {
		if name, ok := logicians[target]; ok {
			return name
		}
	}
	return strconv.Itoa(target)
}
