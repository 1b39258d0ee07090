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

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/jetsetilly/cardrex/curated"
)

// Format is an image file format.
type Format int

// List of valid Format values.
const (
	BMP Format = iota
	GIF
	JPEG
	PNG
)

func (f Format) String() string {
	switch f {
	case BMP:
		return "bmp"
	case GIF:
		return "gif"
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	}
	return "unknown"
}

// UnsupportedFormat is the error pattern for unrecognised image formats.
const UnsupportedFormat = "icon: unsupported image format (%s)"

// ParseFormat returns the Format named by the string. The string can also be
// a filename, in which case the format is taken from the extension.
func ParseFormat(s string) (Format, error) {
	if ext := filepath.Ext(s); ext != "" {
		s = ext[1:]
	}

	switch strings.ToLower(s) {
	case "bmp":
		return BMP, nil
	case "gif":
		return GIF, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	}

	return BMP, curated.Errorf(UnsupportedFormat, s)
}

// MaxScale is the largest scaling value accepted by Export().
const MaxScale = 32

func scaled(img *image.Paletted, scale int) *image.Paletted {
	if scale < 1 {
		scale = 1
	} else if scale > MaxScale {
		scale = MaxScale
	}
	if scale == 1 {
		return img
	}

	b := img.Bounds()
	s := image.NewPaletted(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale), img.Palette)
	for y := 0; y < s.Rect.Dy(); y++ {
		for x := 0; x < s.Rect.Dx(); x++ {
			s.SetColorIndex(x, y, img.ColorIndexAt(b.Min.X+x/scale, b.Min.Y+y/scale))
		}
	}
	return s
}

// Export the numbered frame in the specified image format. Each pixel of the
// icon is drawn as a square of scale by scale pixels.
func (ic *Icon) Export(w io.Writer, frame int, format Format, scale int) error {
	img, err := ic.Frame(frame)
	if err != nil {
		return err
	}
	img = scaled(img, scale)

	switch format {
	case BMP:
		err = bmp.Encode(w, img)
	case GIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: len(img.Palette)})
	case JPEG:
		err = jpeg.Encode(w, opaque(img), &jpeg.Options{Quality: 100})
	case PNG:
		err = png.Encode(w, img)
	default:
		return curated.Errorf(UnsupportedFormat, format)
	}

	if err != nil {
		return curated.Errorf("icon: %v", err)
	}

	return nil
}

// opaque replaces transparent palette entries with black. jpeg has no alpha
// channel.
func opaque(img *image.Paletted) *image.Paletted {
	pal := make(color.Palette, len(img.Palette))
	for i, c := range img.Palette {
		if _, _, _, a := c.RGBA(); a == 0 {
			pal[i] = color.RGBA{A: 0xff}
		} else {
			pal[i] = c
		}
	}
	o := *img
	o.Palette = pal
	return &o
}

// AnimationDelay is the delay between frames of an exported animation, in
// hundredths of a second.
const AnimationDelay = 16

// ExportAnimation writes the first frames of the icon as an animated GIF.
// Icons with a single frame produce a GIF with a single image.
func (ic *Icon) ExportAnimation(w io.Writer, frames int, scale int) error {
	if frames < 1 || frames > 3 {
		return curated.Errorf(InvalidFrame, frames)
	}

	anim := &gif.GIF{}
	for f := 0; f < frames; f++ {
		img, err := ic.Frame(f)
		if err != nil {
			return err
		}
		anim.Image = append(anim.Image, scaled(img, scale))
		anim.Delay = append(anim.Delay, AnimationDelay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return curated.Errorf("icon: %v", err)
	}

	return nil
}
