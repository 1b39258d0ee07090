// This file is part of Cardrex.
//
// Cardrex is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cardrex is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cardrex.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// colour numbers. the order is significant.
var colors = []string{"BLACK", "RED", "GREEN", "YELLOW", "BLUE", "MAGENTA", "CYAN", "WHITE"}

const colDefault = 9

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attributes.
var attributes = map[string]int{
	"BOLD":      1,
	"DIM":       2,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
}

// Pens is the table of bright colours to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colours to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

func init() {
	for _, c := range colors {
		k := strings.ToLower(c)
		Pens[k], _ = ColorBuild(c, "", "", true, false)
		DimPens[k], _ = ColorBuild(c, "", "", false, false)
	}
	for a := range attributes {
		PenStyles[strings.ToLower(a)], _ = ColorBuild("", "", a, false, false)
	}
}

func color(name string, target int) (string, error) {
	name = strings.ToUpper(name)
	if name == "NORMAL" {
		return fmt.Sprintf("%d%d", target, colDefault), nil
	}
	for i, c := range colors {
		if c == name {
			return fmt.Sprintf("%d%d", target, i), nil
		}
	}
	return "", fmt.Errorf("ansi: unknown colour (%s)", name)
}

// ColorBuild creates the ANSI sequence for the pen with the foreground and
// background colour and attribute. Empty strings leave that part of the pen
// unchanged.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var parts []string

	if pen != "" {
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		c, err := color(pen, target)
		if err != nil {
			return "", err
		}
		parts = append(parts, c)
	}

	if paper != "" {
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		c, err := color(paper, target)
		if err != nil {
			return "", err
		}
		parts = append(parts, c)
	}

	if attribute != "" && !strings.EqualFold(attribute, "NORMAL") {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		parts = append(parts, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor one character to
// the right.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor one character to
// the left.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
