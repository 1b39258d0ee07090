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

	"github.com/jetsetilly/cardrex/curated"
)

// tokens is the user input divided into words. Words can be quoted with
// double quotes so that they contain spaces.
type tokens struct {
	input  string
	tokens []string
	curr   int
}

// tokenise the input string. Returns an error if a quote is not closed.
func tokenise(input string) (*tokens, error) {
	tk := &tokens{
		input: strings.TrimSpace(input),
	}

	var s strings.Builder
	inWord := false
	inQuote := false

	for _, r := range tk.input {
		switch {
		case r == '"':
			inQuote = !inQuote
			inWord = true
		case !inQuote && (r == ' ' || r == '\t'):
			if inWord {
				tk.tokens = append(tk.tokens, s.String())
				s.Reset()
				inWord = false
			}
		default:
			s.WriteRune(r)
			inWord = true
		}
	}

	if inQuote {
		return nil, curated.Errorf("unterminated quote")
	}
	if inWord {
		tk.tokens = append(tk.tokens, s.String())
	}

	return tk, nil
}

func (tk *tokens) String() string {
	return tk.input
}

// Get returns the next token and advances the list.
func (tk *tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek returns the next token without advancing the list.
func (tk *tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Unget walks backwards in the token list.
func (tk *tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// IsEnd returns true if there are no more tokens.
func (tk *tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remaining returns the number of tokens yet to be returned by Get().
func (tk *tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Remainder returns the remaining tokens as a single string and ends the
// token list.
func (tk *tokens) Remainder() string {
	s := strings.Join(tk.tokens[tk.curr:], " ")
	tk.curr = len(tk.tokens)
	return s
}
