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

package device_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/device"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/test"
)

func TestChecksum(t *testing.T) {
	test.ExpectEquality(t, device.Checksum(0, nil), byte(0))
	test.ExpectEquality(t, device.Checksum(0x0102, nil), byte(0x03))
	test.ExpectEquality(t, device.Checksum(0x0001, []byte{0x01, 0xf0}), byte(0xf0))
}

func pattern() []byte {
	raw := make([]byte, memcard.CardSize)
	for i := range raw {
		raw[i] = byte(i % 253)
	}
	return raw
}

func TestReadWrite(t *testing.T) {
	m := device.NewMock()
	raw := pattern()

	var frames int
	err := device.WriteCard(context.Background(), m, raw, func(f int) {
		frames++
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, device.NumFrames)
	test.ExpectSuccess(t, bytes.Equal(m.Image(), raw))

	frames = 0
	b, err := device.ReadCard(context.Background(), m, func(f int) {
		test.ExpectEquality(t, f, frames)
		frames++
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, device.NumFrames)
	test.ExpectSuccess(t, bytes.Equal(b, raw))
}

func TestFaults(t *testing.T) {
	m := device.NewMock()
	raw := pattern()

	// a frame that fails a few times is retried
	m.Fault(10, 3)
	test.ExpectSuccess(t, device.WriteCard(context.Background(), m, raw, nil))
	test.ExpectEquality(t, m.Transfers, device.NumFrames+3)

	m.Fault(500, 2)
	b, err := device.ReadCard(context.Background(), m, nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(b, raw))

	// a frame that always fails stops the transfer
	m.Fault(20, device.MaxRetries)
	b, err = device.ReadCard(context.Background(), m, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, device.FrameRetries))
	test.ExpectEquality(t, len(b), 0)
}

func TestCancel(t *testing.T) {
	m := device.NewMock()

	ctx, cancel := context.WithCancel(context.Background())
	b, err := device.ReadCard(ctx, m, func(f int) {
		if f == 100 {
			cancel()
		}
	})
	test.ExpectSuccess(t, curated.Is(err, device.Cancelled))
	test.ExpectEquality(t, len(b), 0)
	test.ExpectEquality(t, m.Transfers, 101)
}

func TestQuickFormat(t *testing.T) {
	m := device.NewMock()
	test.DemandSuccess(t, device.WriteCard(context.Background(), m, pattern(), nil))

	// only the first frames are written
	f := memcard.NewCard(memcard.DefaultConfig()).Raw()
	test.ExpectSuccess(t, device.WriteFrames(context.Background(), m, f, device.QuickFormatFrames, nil))

	img := m.Image()
	n := device.QuickFormatFrames * device.FrameSize
	test.ExpectSuccess(t, bytes.Equal(img[:n], f[:n]))
	test.ExpectSuccess(t, bytes.Equal(img[n:], pattern()[n:]))

	test.ExpectFailure(t, device.WriteCard(context.Background(), m, f[:100], nil))
}

func TestMockImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.img")

	m, err := device.OpenMock(path)
	test.DemandSuccess(t, err)
	raw := pattern()
	test.DemandSuccess(t, device.WriteCard(context.Background(), m, raw, nil))
	test.ExpectSuccess(t, m.Flush())

	m, err = device.OpenMock(path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(m.Image(), raw))

	// the card read from the reader is a valid card
	b, err := device.ReadCard(context.Background(), device.NewMock(), nil)
	test.DemandSuccess(t, err)
	c, err := memcard.FromRaw(b, memcard.DefaultConfig())
	test.ExpectSuccess(t, err)
	if c != nil {
		test.ExpectEquality(t, c.Name, "Untitled")
	}
}
