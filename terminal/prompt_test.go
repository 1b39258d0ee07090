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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/cardrex/terminal"
	"github.com/jetsetilly/cardrex/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " epsxe000 "}
	test.ExpectEquality(t, p.String(), "[ epsxe000 ] > ")

	p.Changed = true
	test.ExpectEquality(t, p.String(), "[ epsxe000* ] > ")

	p = terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "are you sure? "}
	test.ExpectEquality(t, p.String(), "are you sure? ")
}
