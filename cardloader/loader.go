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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cardrex/archivefs"
	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
	"github.com/jetsetilly/cardrex/memcard"
)

// Loader is used to load a memory card or a single save.
type Loader struct {
	// filename or URL of the file to load
	Filename string

	// the kind of file. set by NewLoader() from the file extension and
	// refined by Load() from the loaded data
	Kind Kind

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// the file was loaded from inside an archive
	InArchive bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Kind:     kindFromExtension(filename),
	}
}

// ShortName returns the base filename without the extension.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// IsLocal returns true if the Filename does not use a network scheme.
func (ld Loader) IsLocal() bool {
	s := scheme(ld.Filename)
	return s != "http" && s != "https"
}

func scheme(filename string) string {
	u, err := url.Parse(filename)
	if err != nil {
		return "file"
	}

	// single letter schemes are windows drive letters
	if len(u.Scheme) == 1 {
		return "file"
	}

	return u.Scheme
}

// Load the file data. Filenames with a valid scheme will use that method to
// load the data. Currently supported schemes are HTTP(S) and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	var err error

	switch s := scheme(ld.Filename); s {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("cardloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cardloader: %v", fmt.Sprintf("%s (%s)", resp.Status, ld.Filename))
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cardloader: %v", err)
		}

	case "file", "":
		fn := ld.Filename
		if s == "file" {
			fn = strings.TrimPrefix(fn, "file://")
		}

		ld.Data, err = ld.readLocal(fn)
		if err != nil {
			return curated.Errorf("cardloader: %v", err)
		}

	default:
		return curated.Errorf("cardloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", s))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("cardloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	// the data decides the kind when the extension is not conclusive
	if ld.Kind == KindUnknown {
		if memcard.Detect(ld.Data) != memcard.ContainerNone {
			ld.Kind = KindCard
		} else if _, err := memcard.DetectSaveFormat(ld.Data); err == nil {
			ld.Kind = KindSave
		}
	}

	logger.Logf(logger.Allow, "cardloader", "%s: %d bytes (%s)", ld.ShortName(), len(ld.Data), ld.Kind)

	return nil
}

// readLocal reads a file from disk or from inside an archive. If the filename
// is an archive then the first card or save in the root of the archive is read.
func (ld *Loader) readLocal(fn string) ([]byte, error) {
	var afs archivefs.Path
	if err := afs.Set(fn); err != nil {
		return nil, err
	}
	defer afs.Close()

	if afs.IsDir() && afs.InArchive() {
		ent, err := afs.List()
		if err != nil {
			return nil, err
		}

		found := false
		for _, e := range ent {
			if k := kindFromExtension(e.Name); !e.IsDir && k != KindUnknown {
				if err := afs.Set(filepath.Join(fn, e.Name)); err != nil {
					return nil, err
				}
				ld.Kind = k
				found = true
				break // for loop
			}
		}
		if !found {
			return nil, curated.Errorf("no memory card or save in %s", filepath.Base(fn))
		}
	}

	ld.InArchive = afs.InArchive()

	return afs.Read()
}

// Card parses the loaded data as a memory card. Load() is called if necessary.
func (ld *Loader) Card(cfg memcard.Config) (*memcard.Card, error) {
	if err := ld.Load(); err != nil {
		return nil, err
	}

	location := ld.Filename
	if !ld.IsLocal() || ld.InArchive {
		// cards loaded from the network or from an archive can not be saved
		// back to where they came from
		location = ""
	}

	c, err := memcard.Parse(ld.Data, location, cfg)
	if err != nil {
		return nil, err
	}
	if location == "" {
		c.Name = ld.ShortName()
	}

	return c, nil
}

// Save converts the loaded data to the bytes of a save, suitable for
// memcard.Card.SetSaveBytes(). Load() is called if necessary.
func (ld *Loader) Save(cfg memcard.Config) ([]byte, error) {
	if err := ld.Load(); err != nil {
		return nil, err
	}
	return memcard.ToSaveBytes(ld.Data, path.Base(ld.Filename), cfg)
}
