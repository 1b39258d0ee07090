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

//go:build unix

package colorterm

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/terminal"
	"github.com/jetsetilly/cardrex/terminal/colorterm/easyterm"
	"github.com/jetsetilly/cardrex/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.EasyTerm.CBreakMode()
	defer ct.EasyTerm.CanonicalMode()

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	p := prompt.String()
	pen := ansi.PenStyles["bold"]
	if prompt.Type == terminal.PromptTypeConfirm {
		pen = ansi.Pens["blue"]
	}

	// n is the used length of the input buffer. cursor is the position in
	// the buffer of the next character. both count runes rather than bytes
	// because only printable ASCII is accepted
	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// the current input is kept when scrolling through history so that it
	// can be returned to
	buffInput := make([]byte, cap(input))
	buffN := 0

	er := make([]byte, utf8.UTFMax)

	// the prompt and input are redrawn after every key press. the cursor
	// is moved to its place in the input buffer after redrawing
	for {
		ct.EasyTerm.TermPrintf("\r%s%s%s%s%s", ansi.ClearLine, pen, p, ansi.NormalPen, input[:n])
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - n))

		// check for interrupt before blocking on the next key press
		if events != nil {
			select {
			case <-events.IntEvents:
				ct.EasyTerm.TermPrint("\n")
				return 0, curated.Errorf(terminal.UserInterrupt)
			default:
			}
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))
				if len(s)+n-cursor > len(input) {
					continue // for loop
				}

				d := len(s) - cursor
				rest := append([]byte{}, input[cursor:n]...)
				copy(input, s)
				copy(input[len(s):], rest)
				cursor += d
				n += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserAbort)

		case easyterm.KeyCarriageReturn, '\n':
			// add to history if the input is different to the previous entry
			if n > 0 {
				l := len(ct.commandHistory)
				if l == 0 || !bytes.Equal(ct.commandHistory[l-1], input[:n]) {
					ct.commandHistory = append(ct.commandHistory, append([]byte{}, input[:n]...))
				}
			}
			ct.EasyTerm.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			if r != easyterm.EscCursor {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return n, err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}
					history--
					n = copy(input, ct.commandHistory[history])
					cursor = n
				}

			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					n = copy(input, ct.commandHistory[history])
					cursor = n
				} else if history == len(ct.commandHistory)-1 {
					history++
					n = copy(input, buffInput[:buffN])
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}

			case easyterm.CursorHome:
				cursor = 0

			case easyterm.CursorEnd:
				cursor = n

			case easyterm.CursorDelete:
				// consume the trailing tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, '\b':
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if r < unicode.MaxASCII && unicode.IsPrint(r) && n < len(input) {
				m := utf8.EncodeRune(er, r)
				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
