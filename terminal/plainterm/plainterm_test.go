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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/cardrex/terminal"
	"github.com/jetsetilly/cardrex/terminal/plainterm"
	"github.com/jetsetilly/cardrex/test"
)

func TestPlainTerminal(t *testing.T) {
	w := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("list\r\ninfo 3\nquit"), w)
	test.ExpectFailure(t, pt.IsInteractive())

	buf := make([]byte, 256)
	p := terminal.Prompt{Content: "card"}

	n, err := pt.TermRead(buf, p, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "list")

	n, err = pt.TermRead(buf, p, &terminal.ReadEvents{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "info 3")

	// final line without a newline
	n, err = pt.TermRead(buf, p, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "quit")

	_, err = pt.TermRead(buf, p, nil)
	test.ExpectEquality(t, err, io.EOF)

	// prompt is not printed for non-interactive input
	test.ExpectSuccess(t, w.Compare(""))
}

func TestPlainTerminalOutput(t *testing.T) {
	w := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), w)

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, w.Compare("hello\n* bad\n"))

	w.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, w.Compare("* bad\n"))
}
