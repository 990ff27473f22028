// This file is part of Nest.
//
// Nest is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nest is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nest.  If not, see <https://www.gnu.org/licenses/>.

package ppu

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/Astral-C/nest/curated"
	"github.com/cespare/xxhash"
	"golang.org/x/image/bmp"
)

// Dimensions of the visible NES screen.
const (
	Width  = 256
	Height = 240
)

// Black is the opaque black colour that the framebuffer is cleared to.
// Colours are packed as 0xAARRGGBB.
const Black = uint32(0xff000000)

// Framebuffer is a fixed size array of packed colour values in row-major
// order.
type Framebuffer struct {
	pixels []uint32
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{
		pixels: make([]uint32, Width*Height),
	}
	fb.Clear()
	return fb
}

// Pixels returns the underlying pixel data. Changes to the returned slice
// change the framebuffer.
func (fb *Framebuffer) Pixels() []uint32 {
	return fb.pixels
}

// Set the colour of the pixel at x, y. Coordinates outside the screen are
// ignored.
func (fb *Framebuffer) Set(x, y int, col uint32) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	fb.pixels[y*Width+x] = col
}

// At returns the colour of the pixel at x, y. Coordinates outside the screen
// return Black.
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Black
	}
	return fb.pixels[y*Width+x]
}

// Clear every pixel to Black.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = Black
	}
}

// Digest returns a hash of the pixel data. Each pixel is hashed as four
// little-endian bytes.
func (fb *Framebuffer) Digest() uint64 {
	b := make([]byte, len(fb.pixels)*4)
	for i, p := range fb.pixels {
		binary.LittleEndian.PutUint32(b[i*4:], p)
	}
	return xxhash.Sum64(b)
}

// Image returns a copy of the framebuffer as an image.Image.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := fb.pixels[y*Width+x]
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(p >> 16),
				G: uint8(p >> 8),
				B: uint8(p),
				A: uint8(p >> 24),
			})
		}
	}
	return img
}

// WriteBMP encodes the framebuffer as a BMP image.
func (fb *Framebuffer) WriteBMP(w io.Writer) error {
	err := bmp.Encode(w, fb.Image())
	if err != nil {
		return curated.Errorf("ppu: %v", err)
	}
	return nil
}
