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

package shell

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/icon"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/terminal"
)

// each pixel of an exported icon is drawn as a square of this size.
const iconExportScale = 8

func (sh *Shell) cmdIcon(tk *tokens) error {
	slot, err := sh.slotArg(KeywordIcon, tk)
	if err != nil {
		return err
	}

	s, err := sh.card.Slot(slot)
	if err != nil {
		return err
	}
	if s.Type != memcard.Initial {
		return curated.Errorf(BadArg, KeywordIcon, fmt.Sprintf("slot %d is not the start of a save", slot))
	}

	op, ok := tk.Get()
	if !ok {
		sh.print(terminal.StyleFeedback, "%d icon frames", s.IconFrames)
		return nil
	}
	op = strings.ToUpper(op)

	// frame number is optional. frames are numbered from zero
	frame := -1
	if f, ok := tk.Peek(); ok {
		if n, err := strconv.Atoi(f); err == nil {
			tk.Get()
			if n < 0 || n >= memcard.MaxIconFrames {
				return curated.Errorf(BadArg, KeywordIcon, fmt.Sprintf("frame must be a number from 0 to %d (not %d)", memcard.MaxIconFrames-1, n))
			}
			frame = n
		}
	}

	b, err := sh.card.IconBytes(slot)
	if err != nil {
		return err
	}
	ic, err := icon.New(b)
	if err != nil {
		return err
	}

	f := frame
	if f == -1 {
		f = 0
	}

	switch op {
	case IconFlipH:
		err = ic.FlipHorizontal(f)
	case IconFlipV:
		err = ic.FlipVertical(f)
	case IconLeft:
		err = ic.RotateLeft(f)
	case IconRight:
		err = ic.RotateRight(f)
	case IconExport:
		return sh.iconExport(tk, ic, frame, s.IconFrames)
	case IconImport:
		err = sh.iconImport(tk, ic, f)
	default:
		return curated.Errorf(BadArg, KeywordIcon, fmt.Sprintf("unknown icon operation (%s)", op))
	}

	if err != nil {
		return err
	}

	return sh.card.SetIconBytes(slot, ic.Bytes())
}

// iconExport writes the icon frame to a file. If no frame is specified and the
// file is a GIF then every frame of the icon is exported as an animation.
func (sh *Shell) iconExport(tk *tokens, ic *icon.Icon, frame int, frames int) error {
	fn, ok := tk.Get()
	if !ok {
		return curated.Errorf(MissingArg, KeywordIcon, "filename")
	}

	format, err := icon.ParseFormat(fn)
	if err != nil {
		return err
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("shell: %v", err)
	}
	defer f.Close()

	if frame == -1 && format == icon.GIF && frames > 1 {
		if err := ic.ExportAnimation(f, frames, iconExportScale); err != nil {
			return err
		}
		sh.print(terminal.StyleFeedback, "%d icon frames exported to %s", frames, fn)
		return nil
	}

	if frame == -1 {
		frame = 0
	}

	if err := ic.Export(f, frame, format, iconExportScale); err != nil {
		return err
	}

	sh.print(terminal.StyleFeedback, "icon frame %d exported to %s", frame, fn)
	return nil
}

func (sh *Shell) iconImport(tk *tokens, ic *icon.Icon, frame int) error {
	fn, ok := tk.Get()
	if !ok {
		return curated.Errorf(MissingArg, KeywordIcon, "filename")
	}

	f, err := os.Open(fn)
	if err != nil {
		return curated.Errorf("shell: %v", err)
	}
	defer f.Close()

	img, err := icon.Decode(f)
	if err != nil {
		return err
	}

	return ic.Import(frame, img)
}
