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

//go:build !unix

package colorterm

import (
	"fmt"

	"github.com/jetsetilly/cardrex/terminal"
)

// ColorTerminal is not available on this platform. Initialise() will return
// an error and the plainterm package should be used instead.
type ColorTerminal struct{}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return fmt.Errorf("colorterm: not supported on this platform")
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(terminal.TabCompletion) {}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return false
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(bool) {}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(terminal.Style, string) {}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead([]byte, terminal.Prompt, *terminal.ReadEvents) (int, error) {
	return 0, fmt.Errorf("colorterm: not supported on this platform")
}
