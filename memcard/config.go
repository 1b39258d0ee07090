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
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/jetsetilly/cardrex/curated"
)

// Config for a Card. The Config value is copied into the Card when it is
// created and does not change thereafter.
type Config struct {
	// the character encoding used for product codes, identifiers, comments
	// and the filenames of raw single saves. the save title is always
	// Shift-JIS
	Codepage encoding.Encoding
}

// DefaultConfig returns a Config with the Windows-1252 codepage.
func DefaultConfig() Config {
	return Config{Codepage: charmap.Windows1252}
}

// NewConfig returns a Config for the named codepage. The name can be any name
// recognised by the WHATWG encoding standard. For example, "windows-1252",
// "shift_jis" or "iso-8859-2".
func NewConfig(codepage string) (Config, error) {
	enc, err := htmlindex.Get(codepage)
	if err != nil {
		return Config{}, curated.Errorf("memcard: unsupported codepage (%s)", codepage)
	}
	return Config{Codepage: enc}, nil
}

func (cfg Config) codepage() encoding.Encoding {
	if cfg.Codepage == nil {
		return charmap.Windows1252
	}
	return cfg.Codepage
}

// decode fixed width string. the string ends at the first NUL byte.
func (cfg Config) decode(b []byte) string {
	if i := bytes.IndexByte(b, 0x00); i >= 0 {
		b = b[:i]
	}
	s, err := cfg.codepage().NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// encode string. characters that are not in the codepage are replaced.
func (cfg Config) encode(s string) []byte {
	b, err := encoding.ReplaceUnsupported(cfg.codepage().NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}
