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

package plugins

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cardrex/curated"
)

// Extension of manifest files.
const Extension = ".plugin"

// Wildcard is the product code that matches every save.
const Wildcard = "*.*"

// Error patterns.
const (
	ManifestSyntax  = "plugins: %s: line %d: %s"
	ManifestMissing = "plugins: %s: no %s entry"
)

// Manifest describes a plugin.
type Manifest struct {
	Name   string
	Author string
	Games  string
	Codes  []string

	// the program and its arguments. the product code is added as an
	// additional argument when the program is run
	Command []string

	// the manifest file
	Path string
}

// ParseManifest reads manifest data. The path is used to resolve relative
// commands and to identify the manifest in error messages.
func ParseManifest(r io.Reader, path string) (Manifest, error) {
	m := Manifest{Path: path}

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++

		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue // for loop
		}

		k, v, ok := strings.Cut(l, "::")
		if !ok {
			return Manifest{}, curated.Errorf(ManifestSyntax, path, n, "missing separator")
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)

		switch k {
		case "name":
			m.Name = v
		case "author":
			m.Author = v
		case "games":
			m.Games = v
		case "codes":
			for _, c := range strings.Split(v, ",") {
				if c = strings.TrimSpace(c); c != "" {
					m.Codes = append(m.Codes, c)
				}
			}
		case "command":
			m.Command = strings.Fields(v)
		default:
			return Manifest{}, curated.Errorf(ManifestSyntax, path, n, "unknown key "+k)
		}
	}
	if err := scanner.Err(); err != nil {
		return Manifest{}, curated.Errorf("plugins: %v", err)
	}

	if m.Name == "" {
		return Manifest{}, curated.Errorf(ManifestMissing, path, "name")
	}
	if len(m.Command) == 0 {
		return Manifest{}, curated.Errorf(ManifestMissing, path, "command")
	}

	// commands are relative to the manifest if possible
	if path != "" && !filepath.IsAbs(m.Command[0]) {
		rel := filepath.Join(filepath.Dir(path), m.Command[0])
		if _, err := os.Stat(rel); err == nil {
			m.Command[0] = rel
		}
	}

	return m, nil
}

// Supports returns true if the manifest lists the product code or the
// wildcard.
func (m Manifest) Supports(productCode string) bool {
	for _, c := range m.Codes {
		if c == Wildcard || c == productCode {
			return true
		}
	}
	return false
}
