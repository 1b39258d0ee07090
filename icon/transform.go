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

package icon

func (ic *Icon) apply(frame int, f func(g grid) grid) error {
	if err := checkFrame(frame); err != nil {
		return err
	}
	ic.setGrid(frame, f(ic.grid(frame)))
	return nil
}

func flipH(g grid) grid {
	var n grid
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n[x][y] = g[width-1-x][y]
		}
	}
	return n
}

func flipV(g grid) grid {
	var n grid
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n[x][y] = g[x][height-1-y]
		}
	}
	return n
}

func transpose(g grid) grid {
	var n grid
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n[x][y] = g[y][x]
		}
	}
	return n
}

// FlipHorizontal mirrors the numbered frame left to right.
func (ic *Icon) FlipHorizontal(frame int) error {
	return ic.apply(frame, flipH)
}

// FlipVertical mirrors the numbered frame top to bottom.
func (ic *Icon) FlipVertical(frame int) error {
	return ic.apply(frame, flipV)
}

// RotateLeft rotates the numbered frame anti-clockwise by 90 degrees.
func (ic *Icon) RotateLeft(frame int) error {
	return ic.apply(frame, func(g grid) grid {
		return flipV(transpose(g))
	})
}

// RotateRight rotates the numbered frame clockwise by 90 degrees.
func (ic *Icon) RotateRight(frame int) error {
	return ic.apply(frame, func(g grid) grid {
		return flipH(transpose(g))
	})
}
