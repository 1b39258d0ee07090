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

package archivefs_test

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cardrex/archivefs"
	"github.com/jetsetilly/cardrex/test"
)

// testdir creates a directory containing a file and an archive:
//
//	testfile
//	testarchive.zip/archivefile1
//	testarchive.zip/archivefile2
//	testarchive.zip/archivedir/archivefile3
func testdir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0o644))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	_, err = zw.Create("archivedir/")
	test.DemandSuccess(t, err)
	for _, n := range []string{"archivefile1", "archivefile2", "archivedir/archivefile3"} {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		_, err = fmt.Fprintf(w, "%s contents\n", filepath.Base(n))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return dir
}

func TestPath(t *testing.T) {
	dir := testdir(t)

	var afs archivefs.Path
	defer afs.Close()

	// non-existent file
	test.ExpectFailure(t, afs.Set(filepath.Join(dir, "foo")))
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	test.ExpectSuccess(t, afs.Set(dir))
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	entries, err := afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")

	// a real file. the list is of the containing directory
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testfile")))
	test.ExpectFailure(t, afs.IsDir())
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)

	// the archive is a directory
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip")))
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1 archivefile2]")

	// directory in the archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir")))
	test.ExpectSuccess(t, afs.IsDir())
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivefile3]")

	// file in the archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile3")))
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())
	test.ExpectEquality(t, afs.Base(), "archivefile3")

	// missing file in the archive
	test.ExpectFailure(t, afs.Set(filepath.Join(dir, "testarchive.zip", "foo")))
	test.ExpectFailure(t, afs.InArchive())
}

func TestOpen(t *testing.T) {
	dir := testdir(t)

	d, err := archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivefile1"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1 contents\n")

	d, err = archivefs.Open(filepath.Join(dir, "testfile"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "testfile contents\n")

	_, err = archivefs.Open(filepath.Join(dir, "testarchive.zip"))
	test.ExpectFailure(t, err)
}

func TestArchiveExt(t *testing.T) {
	test.ExpectSuccess(t, archivefs.IsArchiveExt("cards.ZIP"))
	test.ExpectFailure(t, archivefs.IsArchiveExt("card.mcr"))
	test.ExpectEquality(t, archivefs.TrimArchiveExt("cards.zip"), "cards")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("card.mcr"), "card.mcr")
}
