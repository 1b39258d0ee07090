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

package device

import (
	"context"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
	"github.com/jetsetilly/cardrex/memcard"
)

// Frame geometry of a memory card.
const (
	FrameSize = 128
	NumFrames = memcard.CardSize / FrameSize

	// frame zero and the directory frames
	QuickFormatFrames = 16
)

// MaxRetries is the number of times a frame transfer is attempted before the
// transfer of the card is abandoned.
const MaxRetries = 8

// Error patterns.
const (
	FrameChecksum = "device: frame %d: checksum mismatch"
	FrameFailed   = "device: frame %d: %v"
	FrameRetries  = "device: frame %d: failed after %d attempts"
	WrongSize     = "device: card data must be %d bytes (not %d)"
	Cancelled     = "device: %v"
)

// Provider implementations give frame level access to a memory card.
type Provider interface {
	// ReadFrame returns the 128 bytes of the numbered frame and the checksum
	// calculated by the reader.
	ReadFrame(frame uint16) ([]byte, byte, error)

	// WriteFrame writes the 128 bytes of the numbered frame. The checksum is
	// calculated by the caller and is verified by the reader.
	WriteFrame(frame uint16, data []byte, checksum byte) error
}

// Progress is called after every successful frame transfer with the number of
// the frame that has been transferred. May be nil.
type Progress func(frame int)

// Checksum returns the checksum of the frame data for the numbered frame.
func Checksum(frame uint16, data []byte) byte {
	x := byte(frame>>8) ^ byte(frame)
	for _, b := range data {
		x ^= b
	}
	return x
}

// ReadCard reads all frames of the memory card and returns the raw card data.
// Suitable for memcard.FromRaw().
//
// A frame with a checksum mismatch is read again. No data is returned if the
// context is cancelled or if a frame can not be read.
func ReadCard(ctx context.Context, dev Provider, progress Progress) ([]byte, error) {
	raw := make([]byte, memcard.CardSize)

	for f := 0; f < NumFrames; f++ {
		var err error
		var ok bool

		for attempt := 0; attempt < MaxRetries && !ok; attempt++ {
			if ctx.Err() != nil {
				return nil, curated.Errorf(Cancelled, ctx.Err())
			}

			var data []byte
			var chk byte

			data, chk, err = dev.ReadFrame(uint16(f))
			if err != nil {
				return nil, curated.Errorf(FrameFailed, f, err)
			}

			if len(data) != FrameSize || Checksum(uint16(f), data) != chk {
				logger.Logf(logger.Allow, "device", "checksum mismatch reading frame %d (attempt %d)", f, attempt+1)
				continue // for loop
			}

			copy(raw[f*FrameSize:], data)
			ok = true
		}

		if !ok {
			return nil, curated.Errorf(FrameRetries, f, MaxRetries)
		}

		if progress != nil {
			progress(f)
		}
	}

	logger.Logf(logger.Allow, "device", "read %d frames", NumFrames)

	return raw, nil
}

// WriteCard writes all frames of the raw card data to the memory card.
func WriteCard(ctx context.Context, dev Provider, raw []byte, progress Progress) error {
	return WriteFrames(ctx, dev, raw, NumFrames, progress)
}

// WriteFrames writes the first n frames of the raw card data to the memory
// card. A quick format writes QuickFormatFrames frames of a newly formatted
// card.
//
// A rejected frame is written again. If the context is cancelled then the
// frames that have already been written remain written.
func WriteFrames(ctx context.Context, dev Provider, raw []byte, n int, progress Progress) error {
	if len(raw) != memcard.CardSize {
		return curated.Errorf(WrongSize, memcard.CardSize, len(raw))
	}
	if n > NumFrames {
		n = NumFrames
	}

	for f := 0; f < n; f++ {
		data := raw[f*FrameSize : (f+1)*FrameSize]
		chk := Checksum(uint16(f), data)

		var err error
		for attempt := 0; attempt < MaxRetries; attempt++ {
			if ctx.Err() != nil {
				return curated.Errorf(Cancelled, ctx.Err())
			}

			err = dev.WriteFrame(uint16(f), data, chk)
			if err == nil {
				break // for loop
			}

			if !curated.Is(err, FrameChecksum) {
				return curated.Errorf(FrameFailed, f, err)
			}

			logger.Logf(logger.Allow, "device", "frame %d rejected by reader (attempt %d)", f, attempt+1)
		}

		if err != nil {
			return curated.Errorf(FrameRetries, f, MaxRetries)
		}

		if progress != nil {
			progress(f)
		}
	}

	logger.Logf(logger.Allow, "device", "wrote %d frames", n)

	return nil
}
