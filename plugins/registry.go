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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
)

// Registry is the list of plugins found in a plugin directory.
type Registry struct {
	plugins []*Plugin
}

// NewRegistry reads every manifest in the directory. A directory that does
// not exist results in an empty Registry. Manifests that can not be parsed are
// logged and ignored.
func NewRegistry(dir string) (*Registry, error) {
	reg := &Registry{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Logf(logger.Allow, "plugins", "no plugin directory (%s)", dir)
			return reg, nil
		}
		return nil, curated.Errorf("plugins: %v", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Extension) {
			continue // for loop
		}

		path := filepath.Join(dir, e.Name())
		f, err := os.Open(path)
		if err != nil {
			logger.Logf(logger.Allow, "plugins", "%v", err)
			continue // for loop
		}
		m, err := ParseManifest(f, path)
		_ = f.Close()
		if err != nil {
			logger.Log(logger.Allow, "plugins", err.Error())
			continue // for loop
		}

		reg.Add(NewPlugin(m))
	}

	logger.Logf(logger.Allow, "plugins", "%d plugins in %s", len(reg.plugins), dir)

	return reg, nil
}

// Add a plugin to the Registry. Plugins are kept in name order.
func (reg *Registry) Add(p *Plugin) {
	reg.plugins = append(reg.plugins, p)
	sort.SliceStable(reg.plugins, func(i, j int) bool {
		return strings.ToLower(reg.plugins[i].Name) < strings.ToLower(reg.plugins[j].Name)
	})
}

// Plugins returns every plugin in the Registry.
func (reg *Registry) Plugins() []*Plugin {
	return append([]*Plugin{}, reg.plugins...)
}

// Supported returns the plugins that support the product code.
func (reg *Registry) Supported(productCode string) []*Plugin {
	var s []*Plugin
	for _, p := range reg.plugins {
		if p.Supports(productCode) {
			s = append(s, p)
		}
	}
	return s
}

// Find returns the plugin with the name. The comparison ignores case.
func (reg *Registry) Find(name string) (*Plugin, bool) {
	for _, p := range reg.plugins {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}
