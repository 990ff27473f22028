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

package ppu_test

import (
	"bytes"
	"testing"

	"github.com/Astral-C/nest/hardware/ppu"
	"github.com/Astral-C/nest/test"
	"golang.org/x/image/bmp"
)

func TestFramebuffer(t *testing.T) {
	fb := ppu.NewFramebuffer()
	test.ExpectEquality(t, len(fb.Pixels()), ppu.Width*ppu.Height)
	for _, p := range fb.Pixels() {
		if p != ppu.Black {
			t.Fatalf("framebuffer not initialised to black (%08x)", p)
		}
	}

	fb.Set(10, 20, 0xff112233)
	test.ExpectEquality(t, fb.At(10, 20), uint32(0xff112233))
	test.ExpectEquality(t, fb.Pixels()[20*ppu.Width+10], uint32(0xff112233))

	// out of range coordinates
	fb.Set(-1, 0, 0xffffffff)
	fb.Set(ppu.Width, 0, 0xffffffff)
	fb.Set(0, ppu.Height, 0xffffffff)
	test.ExpectEquality(t, fb.At(-1, 0), ppu.Black)
	test.ExpectEquality(t, fb.At(0, ppu.Height), ppu.Black)

	fb.Clear()
	test.ExpectEquality(t, fb.At(10, 20), ppu.Black)
}

func TestDigest(t *testing.T) {
	a := ppu.NewFramebuffer()
	b := ppu.NewFramebuffer()
	test.ExpectEquality(t, a.Digest(), b.Digest())

	a.Set(100, 100, 0xffff0000)
	test.ExpectInequality(t, a.Digest(), b.Digest())

	b.Set(100, 100, 0xffff0000)
	test.ExpectEquality(t, a.Digest(), b.Digest())

	a.Clear()
	test.ExpectEquality(t, a.Digest(), ppu.NewFramebuffer().Digest())
}

func TestWriteBMP(t *testing.T) {
	fb := ppu.NewFramebuffer()
	fb.Set(1, 2, 0xff102030)

	var buf bytes.Buffer
	test.DemandSuccess(t, fb.WriteBMP(&buf))

	img, err := bmp.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), ppu.Width)
	test.ExpectEquality(t, img.Bounds().Dy(), ppu.Height)

	r, g, b, _ := img.At(1, 2).RGBA()
	test.ExpectEquality(t, r>>8, uint32(0x10))
	test.ExpectEquality(t, g>>8, uint32(0x20))
	test.ExpectEquality(t, b>>8, uint32(0x30))

	r, g, b, _ = img.At(0, 0).RGBA()
	test.ExpectEquality(t, r|g|b, uint32(0))
}
