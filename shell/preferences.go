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
	"fmt"
	"strings"

	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/prefs"
	"github.com/jetsetilly/cardrex/resources"
)

// values for the TitleEncoding preference.
const (
	TitleASCII  = "ascii"
	TitleNative = "native"
)

// Preferences defines and collates all the preference values used by the
// shell and by the command line modes.
type Preferences struct {
	dsk *prefs.Disk

	// which of the two forms of the save title to display
	TitleEncoding prefs.String

	// the container used when saving a card that has no container of its
	// own that can be written
	DefaultFormat prefs.String

	// make a copy of card files when they are opened
	Backup prefs.Bool

	// ask for confirmation before destructive operations
	Warnings prefs.Bool

	// the codepage for product codes, identifiers and comments
	Codepage prefs.String

	// the directory containing plugin manifests
	PluginDir prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the preferences file in the
// resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	plugins, err := resources.JoinPath("plugins")
	if err != nil {
		return nil, err
	}

	// defaults
	_ = p.TitleEncoding.Set(TitleASCII)
	_ = p.DefaultFormat.Set(strings.ToLower(memcard.ContainerRaw.String()))
	_ = p.Backup.Set(false)
	_ = p.Warnings.Set(true)
	_ = p.Codepage.Set("windows-1252")
	_ = p.PluginDir.Set(plugins)

	p.TitleEncoding.SetHookPre(func(v prefs.Value) error {
		switch strings.ToLower(fmt.Sprintf("%v", v)) {
		case TitleASCII, TitleNative:
			return nil
		}
		return fmt.Errorf("title encoding must be %s or %s", TitleASCII, TitleNative)
	})

	p.DefaultFormat.SetHookPre(func(v prefs.Value) error {
		typ, err := memcard.ParseContainerType(fmt.Sprintf("%v", v))
		if err != nil {
			return err
		}
		if !typ.Writable() {
			return fmt.Errorf("%s is not a writable format", typ)
		}
		return nil
	})

	p.Codepage.SetHookPre(func(v prefs.Value) error {
		_, err := memcard.NewConfig(fmt.Sprintf("%v", v))
		return err
	})

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("cardrex.titleEncoding", &p.TitleEncoding); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cardrex.defaultFormat", &p.DefaultFormat); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cardrex.backup", &p.Backup); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cardrex.warnings", &p.Warnings); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cardrex.codepage", &p.Codepage); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cardrex.pluginDir", &p.PluginDir); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Set the preference identified by the key. The key can be given with or
// without the "cardrex." prefix.
func (p *Preferences) Set(key string, value string) error {
	if !strings.HasPrefix(key, "cardrex.") {
		key = "cardrex." + key
	}
	for _, k := range p.dsk.Keys() {
		if strings.EqualFold(k, key) {
			return p.dsk.Set(k, value)
		}
	}
	return p.dsk.Set(key, value)
}

// Config returns the memcard.Config described by the preferences.
func (p *Preferences) Config() (memcard.Config, error) {
	return memcard.NewConfig(p.Codepage.String())
}

// Container returns the container type of the DefaultFormat preference.
func (p *Preferences) Container() memcard.ContainerType {
	typ, err := memcard.ParseContainerType(p.DefaultFormat.String())
	if err != nil || !typ.Writable() {
		return memcard.ContainerRaw
	}
	return typ
}

// NativeTitles returns true if the native Shift-JIS title should be shown.
func (p *Preferences) NativeTitles() bool {
	return strings.EqualFold(p.TitleEncoding.String(), TitleNative)
}
