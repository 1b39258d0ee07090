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

package memcard

import (
	"fmt"

	"github.com/jetsetilly/cardrex/curated"
)

// Difference is a single byte that differs between two saves.
type Difference struct {
	Offset int
	A      byte
	B      byte
}

func (d Difference) String() string {
	return fmt.Sprintf("%#06x: %02x %02x", d.Offset, d.A, d.B)
}

// Compare two saves of the same size. Returns the list of differences in
// offset order.
func Compare(a []byte, b []byte) ([]Difference, error) {
	if len(a) != len(b) {
		return nil, curated.Errorf(SizeMismatch, len(a), len(b))
	}

	var diff []Difference
	for i := range a {
		if a[i] != b[i] {
			diff = append(diff, Difference{Offset: i, A: a[i], B: b[i]})
		}
	}

	return diff, nil
}
