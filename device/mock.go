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
	"fmt"
	"os"
	"sync"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/memcard"
)

// Mock is an in-memory card reader. It is safe to use from more than one
// goroutine.
type Mock struct {
	crit sync.Mutex

	data [memcard.CardSize]byte
	path string

	// number of times the frame will be transferred with a bad checksum
	faults map[uint16]int

	// number of frames transferred, including bad transfers
	Transfers int
}

// NewMock creates a Mock containing a formatted memory card.
func NewMock() *Mock {
	m := &Mock{
		faults: make(map[uint16]int),
	}
	copy(m.data[:], memcard.NewCard(memcard.DefaultConfig()).Raw())
	return m
}

// OpenMock creates a Mock backed by an image file. If the file does not exist
// then the Mock contains a formatted memory card. The file is only written by
// Flush().
func OpenMock(path string) (*Mock, error) {
	m := NewMock()
	m.path = path

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, curated.Errorf("device: %v", err)
	}

	if len(b) != memcard.CardSize {
		return nil, curated.Errorf(WrongSize, memcard.CardSize, len(b))
	}
	copy(m.data[:], b)

	return m, nil
}

func (m *Mock) String() string {
	if m.path == "" {
		return "mock reader"
	}
	return fmt.Sprintf("mock reader (%s)", m.path)
}

// Fault causes the next n transfers of the numbered frame to have a bad
// checksum.
func (m *Mock) Fault(frame uint16, n int) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.faults[frame] = n
}

func (m *Mock) fault(frame uint16) bool {
	if m.faults[frame] > 0 {
		m.faults[frame]--
		return true
	}
	return false
}

// ReadFrame implements the Provider interface.
func (m *Mock) ReadFrame(frame uint16) ([]byte, byte, error) {
	m.crit.Lock()
	defer m.crit.Unlock()

	if int(frame) >= NumFrames {
		return nil, 0, curated.Errorf("device: no frame %d", frame)
	}
	m.Transfers++

	data := make([]byte, FrameSize)
	copy(data, m.data[int(frame)*FrameSize:])
	chk := Checksum(frame, data)
	if m.fault(frame) {
		chk ^= 0xff
	}

	return data, chk, nil
}

// WriteFrame implements the Provider interface.
func (m *Mock) WriteFrame(frame uint16, data []byte, checksum byte) error {
	m.crit.Lock()
	defer m.crit.Unlock()

	if int(frame) >= NumFrames {
		return curated.Errorf("device: no frame %d", frame)
	}
	if len(data) != FrameSize {
		return curated.Errorf("device: frame data must be %d bytes", FrameSize)
	}
	m.Transfers++

	if m.fault(frame) || Checksum(frame, data) != checksum {
		return curated.Errorf(FrameChecksum, frame)
	}
	copy(m.data[int(frame)*FrameSize:], data)

	return nil
}

// Image returns a copy of the card data held by the Mock.
func (m *Mock) Image() []byte {
	m.crit.Lock()
	defer m.crit.Unlock()
	b := make([]byte, len(m.data))
	copy(b, m.data[:])
	return b
}

// Flush writes the card data to the image file. Does nothing if the Mock was
// not created with OpenMock().
func (m *Mock) Flush() error {
	if m.path == "" {
		return nil
	}
	if err := os.WriteFile(m.path, m.Image(), 0o644); err != nil {
		return curated.Errorf("device: %v", err)
	}
	return nil
}
