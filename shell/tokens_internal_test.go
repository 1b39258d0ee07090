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
	"testing"

	"github.com/jetsetilly/cardrex/test"
)

func TestTokenise(t *testing.T) {
	tk, err := tokenise("  export 3   mcs  ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tk.Remaining(), 3)

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "export")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "3")
	test.ExpectEquality(t, tk.Remaining(), 2)

	tk.Get()
	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "3")

	test.ExpectEquality(t, tk.Remainder(), "mcs")
	test.ExpectSuccess(t, tk.IsEnd())
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)
}

func TestTokeniseQuotes(t *testing.T) {
	tk, err := tokenise(`import "my saves/ff7.mcs" 2`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tk.Remaining(), 3)
	tk.Get()
	s, _ := tk.Get()
	test.ExpectEquality(t, s, "my saves/ff7.mcs")

	// empty quotes are an empty token
	tk, err = tokenise(`comment 0 ""`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tk.Remaining(), 3)

	_, err = tokenise(`open "card.mcr`)
	test.ExpectFailure(t, err)
}
