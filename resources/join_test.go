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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cardrex/resources"
	"github.com/jetsetilly/cardrex/test"
)

func TestJoinPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv(resources.HomeEnv, home)

	b, err := resources.BasePath()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, home)

	p, err := resources.JoinPath("backup", "card.mcr")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(home, "backup", "card.mcr"))

	// the directory has been created but not the file
	fi, err := os.Stat(filepath.Join(home, "backup"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
