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
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface. Keywords are
// completed in the first position and sub-commands in the second position.
//
// Repeated completions of the same input cycle through the possible matches.
type tabCompletion struct {
	matches []string
	match   int

	// the input that the current list of matches applies to. the input
	// changes with every completion so the completed string is also noted
	lastInput      string
	lastCompletion string
}

func (tc *tabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = -1
	tc.lastInput = ""
	tc.lastCompletion = ""
}

func (tc *tabCompletion) Complete(input string) string {
	// cycle through matches if the input is the result of the previous
	// completion
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.complete(tc.lastInput, tc.matches[tc.match])
		return tc.lastCompletion
	}

	tc.matches = tc.matches[:0]
	tc.match = -1
	tc.lastInput = input

	// the partial word being completed
	fields := strings.Fields(input)
	partial := ""
	if len(fields) > 0 && !strings.HasSuffix(input, " ") {
		partial = fields[len(fields)-1]
		fields = fields[:len(fields)-1]
	}

	var candidates []string
	switch len(fields) {
	case 0:
		candidates = keywords
	default:
		// sub-commands can appear anywhere after the keyword
		candidates = subCommands[strings.ToUpper(fields[0])]
	}

	for _, c := range candidates {
		if strings.HasPrefix(c, strings.ToUpper(partial)) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.match = 0
	tc.lastCompletion = tc.complete(input, tc.matches[0])
	return tc.lastCompletion
}

// complete replaces the last partial word of the input with the match.
func (tc *tabCompletion) complete(input string, match string) string {
	if input == "" || strings.HasSuffix(input, " ") {
		return input + match + " "
	}
	i := strings.LastIndex(input, " ")
	return input[:i+1] + match + " "
}
