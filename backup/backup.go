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

// Package backup keeps a copy of every memory card file that is opened.
//
// Backups are placed in the backup directory of the resources path. An
// existing backup is never overwritten, so the backup is always of the file
// as it was when it was first opened.
package backup

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
	"github.com/jetsetilly/cardrex/resources"
)

// Directory is the name of the backup directory in the resources path.
const Directory = "backup"

// MaxSize is the size at which files are considered too large to be memory
// cards and are not backed up.
const MaxSize = 512 * 1024

// Error patterns.
const (
	TooLarge = "backup: %s is too large (%d bytes)"
	Exists   = "backup: %s has already been backed up"
)

// Card copies the file to the backup directory and returns the path of the
// copy.
func Card(filename string) (string, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return "", curated.Errorf("backup: %v", err)
	}
	if fi.Size() >= MaxSize {
		return "", curated.Errorf(TooLarge, fi.Name(), fi.Size())
	}

	dest, err := resources.JoinPath(Directory, fi.Name())
	if err != nil {
		return "", curated.Errorf("backup: %v", err)
	}

	src, err := os.Open(filename)
	if err != nil {
		return "", curated.Errorf("backup: %v", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", curated.Errorf(Exists, fi.Name())
		}
		return "", curated.Errorf("backup: %v", err)
	}

	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dest)
		return "", curated.Errorf("backup: %v", err)
	}

	logger.Logf(logger.Allow, "backup", "%s copied to %s", fi.Name(), filepath.Dir(dest))

	return dest, nil
}
