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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions lists the file extensions of supported archives.
var ArchiveExtensions = [...]string{".ZIP"}

// IsArchiveExt returns true if the filename has the extension of a supported
// archive.
func IsArchiveExt(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range ArchiveExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrimArchiveExt removes the extension of a supported archive from the end of
// the filename.
func TrimArchiveExt(filename string) string {
	if IsArchiveExt(filename) {
		return strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	return filename
}
