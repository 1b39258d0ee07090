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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
)

// DefaultTimeout is the time a plugin is allowed to run for.
const DefaultTimeout = 10 * time.Second

// exit status of a plugin that declines to edit a save.
const declined = 1

// Plugin runs the command described by a Manifest.
type Plugin struct {
	Manifest
	Timeout time.Duration
}

// NewPlugin is the preferred method of initialisation for the Plugin type.
func NewPlugin(m Manifest) *Plugin {
	return &Plugin{
		Manifest: m,
		Timeout:  DefaultTimeout,
	}
}

func (p *Plugin) String() string {
	if p.Author == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Author)
}

// Transform implements the memcard.Transformer interface.
func (p *Plugin) Transform(productCode string, save []byte) ([]byte, bool, error) {
	if len(p.Command) == 0 {
		return nil, false, curated.Errorf("plugins: %s: no command", p.Name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.Timeout)
	defer cancel()

	args := append([]string{}, p.Command[1:]...)
	args = append(args, productCode)
	cmd := exec.CommandContext(ctx, p.Command[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(save)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, false, curated.Errorf("plugins: %s: %v", p.Name, ctx.Err())
	}

	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) && exit.ExitCode() == declined {
			logger.Logf(logger.Allow, "plugins", "%s declined to edit %s", p.Name, productCode)
			return nil, false, nil
		}

		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, false, curated.Errorf("plugins: %s: %v: %s", p.Name, err, msg)
		}
		return nil, false, curated.Errorf("plugins: %s: %v", p.Name, err)
	}

	if stdout.Len() == 0 {
		logger.Logf(logger.Allow, "plugins", "%s returned no data for %s", p.Name, productCode)
		return nil, false, nil
	}

	logger.Logf(logger.Allow, "plugins", "%s edited %s (%d bytes)", p.Name, productCode, stdout.Len())

	return stdout.Bytes(), true, nil
}
