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

func TestTabCompletion(t *testing.T) {
	tc := &tabCompletion{}
	tc.Reset()

	test.ExpectEquality(t, tc.Complete("li"), "LIST ")
	tc.Reset()

	// cycle through matches
	s := tc.Complete("co")
	test.ExpectEquality(t, s, "COMMENT ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "COMPARE ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "COPY ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "COMMENT ")
	tc.Reset()

	// sub-commands
	test.ExpectEquality(t, tc.Complete("icon 3 fl"), "icon 3 FLIPH ")
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("help ex"), "help EXPORT ")
	tc.Reset()

	// no match leaves input unchanged
	test.ExpectEquality(t, tc.Complete("xyz"), "xyz")
	test.ExpectEquality(t, tc.Complete("info 3 q"), "info 3 q")
}
