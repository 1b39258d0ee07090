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

package cardloader

import (
	"path"
	"strings"
)

// CardExtensions is the list of file extensions recognised as memory card
// files.
var CardExtensions = [...]string{".MCR", ".MCD", ".MC", ".BIN", ".DDF", ".MEM", ".PS", ".PSM", ".SRM", ".VM1", ".VMP", ".GME", ".VGS", ".VMC"}

// SaveExtensions is the list of file extensions recognised as single save
// files.
var SaveExtensions = [...]string{".MCS", ".PS1", ".PSX", ".MCB", ".MCX", ".PDA", ".PSV"}

// Kind of file being loaded.
type Kind int

// List of valid Kind values.
const (
	KindUnknown Kind = iota
	KindCard
	KindSave
)

func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindSave:
		return "save"
	}
	return "unknown"
}

func kindFromExtension(filename string) Kind {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range CardExtensions {
		if ext == e {
			return KindCard
		}
	}
	for _, e := range SaveExtensions {
		if ext == e {
			return KindSave
		}
	}
	return KindUnknown
}
