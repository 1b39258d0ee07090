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
	"archive/zip"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/cardrex/curated"
)

// Entry is a single item in a directory or archive.
type Entry struct {
	Name  string
	IsDir bool
}

func (e Entry) String() string {
	return e.Name
}

// Path is a location in the filesystem, possibly inside an archive. The zero
// value is ready to use. Close() should be called when the Path is no longer
// required.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// location inside the archive. zip files always use forward slashes
	inZip string
}

func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if the path is a directory. The root of an archive is a
// directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if the path is an archive or is inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Close any open archive and reset the path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZip = ""
	if afs.zf != nil {
		_ = afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Each element of the path is checked in turn. The first
// element that is a zip file is opened and the remaining elements are looked
// for inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	parts := strings.Split(pth, string(filepath.Separator))

	// restore leading separator lost by the split
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}

	var walk string

	for _, p := range parts {
		walk = filepath.Join(walk, p)

		if afs.zf != nil {
			afs.inZip = path.Join(afs.inZip, p)

			f, err := afs.zf.Open(afs.inZip)
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: %v", err)
			}
			fi, err := f.Stat()
			_ = f.Close()
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: %v", err)
			}
			afs.isDir = fi.IsDir()
			continue // for loop
		}

		fi, err := os.Stat(walk)
		if err != nil {
			afs.Close()
			return curated.Errorf("archivefs: %v", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue // for loop
		}

		afs.zf, err = zip.OpenReader(walk)
		if err == nil {
			afs.isDir = true
			continue // for loop
		}
		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return curated.Errorf("archivefs: %v", err)
		}
	}

	afs.current = pth

	return nil
}

// Read returns the contents of the file at the path.
func (afs Path) Read() ([]byte, error) {
	if afs.isDir {
		return nil, curated.Errorf("archivefs: %s is a directory", afs.current)
	}

	if afs.zf == nil {
		b, err := os.ReadFile(afs.current)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		return b, nil
	}

	f, err := afs.zf.Open(afs.inZip)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	return b, nil
}

// List the entries in the directory at the path. If the path is a file then
// the entries of the containing directory are listed. Directories are listed
// first and names are sorted without regard to letter case.
func (afs Path) List() ([]Entry, error) {
	var ent []Entry

	if afs.zf != nil {
		dir := afs.inZip
		if !afs.isDir {
			dir = path.Dir(dir)
		}
		if dir == "" {
			dir = "."
		}

		for _, f := range afs.zf.File {
			name := strings.TrimSuffix(f.Name, "/")
			if path.Dir(name) != dir {
				continue // for loop
			}
			ent = append(ent, Entry{
				Name:  path.Base(name),
				IsDir: f.FileInfo().IsDir(),
			})
		}
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}

		de, err := os.ReadDir(dir)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}

		for _, d := range de {
			// stat follows links to directories
			fi, err := os.Stat(filepath.Join(dir, d.Name()))
			if err != nil {
				continue // for loop
			}
			ent = append(ent, Entry{
				Name:  d.Name(),
				IsDir: fi.IsDir() || IsArchiveExt(d.Name()),
			})
		}
	}

	sort.SliceStable(ent, func(i, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}
