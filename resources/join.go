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

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// the name of the portable directory.
const portablePath = ".cardrex"

// the name of the sub-directory in the user's configuration directory.
const configPath = "cardrex"

// HomeEnv is the environment variable that overrides the base path.
const HomeEnv = "CARDREX_HOME"

// BasePath returns the directory that all resources are relative to.
func BasePath() (string, error) {
	if p := os.Getenv(HomeEnv); p != "" {
		return p, nil
	}

	if fi, err := os.Stat(portablePath); err == nil && fi.IsDir() {
		return portablePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return filepath.Join(cfg, configPath), nil
}

// JoinPath prepends the supplied path with the base path.
//
// The function creates all directories necessary to reach the final element
// of the path. It does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	b, err := BasePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}
