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

package cartridgeloader_test

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Astral-C/nest/cartridgeloader"
	"github.com/Astral-C/nest/curated"
	"github.com/Astral-C/nest/test"
	"github.com/cespare/xxhash"
)

// makeINES creates an iNES image with the specified number of PRG banks. The
// first byte of each PRG bank is the bank number.
func makeINES(prgBanks int, flags6 uint8, flags7 uint8) []byte {
	data := []byte{'N', 'E', 'S', 0x1a, uint8(prgBanks), 1, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&0x04 == 0x04 {
		data = append(data, make([]byte, cartridgeloader.TrainerSize)...)
	}
	for i := 0; i < prgBanks; i++ {
		bank := make([]byte, cartridgeloader.PRGUnit)
		bank[0] = uint8(i)
		data = append(data, bank...)
	}
	return append(data, make([]byte, cartridgeloader.CHRUnit)...)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestHeader(t *testing.T) {
	h, err := cartridgeloader.ParseHeader(makeINES(2, 0x01, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.PRGBanks, 2)
	test.ExpectEquality(t, h.CHRBanks, 1)
	test.ExpectEquality(t, h.Mapper, uint8(0))
	test.ExpectEquality(t, h.VerticalMirroring, true)
	test.ExpectEquality(t, h.Trainer, false)
	test.ExpectEquality(t, h.NES20, false)
	test.ExpectEquality(t, h.String(), "mapper 0, 32K PRG, 8K CHR, vertical mirroring")

	h, err = cartridgeloader.ParseHeader(makeINES(1, 0x16, 0x48))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Mapper, uint8(0x41))
	test.ExpectEquality(t, h.Battery, true)
	test.ExpectEquality(t, h.Trainer, true)
	test.ExpectEquality(t, h.NES20, true)

	_, err = cartridgeloader.ParseHeader([]byte{'N', 'E', 'S'})
	test.ExpectFailure(t, err)

	_, err = cartridgeloader.ParseHeader(make([]byte, 32))
	test.ExpectFailure(t, err)
}

func TestLoadINES(t *testing.T) {
	data := makeINES(1, 0x00, 0x00)
	cl := cartridgeloader.NewLoader(writeFile(t, "test.nes", data))
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectEquality(t, cl.HasLoaded(), false)
	test.ExpectEquality(t, len(cl.PRG()), 0)

	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, cl.Hash, xxhash.Sum64(data))
	test.DemandEquality(t, cl.Header != nil, true)
	test.ExpectEquality(t, len(cl.PRG()), cartridgeloader.PRGUnit)

	// loading a second time is a no-op
	test.ExpectSuccess(t, cl.Load())
}

func TestLoadTrainer(t *testing.T) {
	cl := cartridgeloader.NewLoader(writeFile(t, "trainer.nes", makeINES(2, 0x04, 0x00)))
	test.DemandSuccess(t, cl.Load())

	prg := cl.PRG()
	test.DemandEquality(t, len(prg), cartridgeloader.PRGUnit*2)
	test.ExpectEquality(t, prg[0], uint8(0))
	test.ExpectEquality(t, prg[cartridgeloader.PRGUnit], uint8(1))
}

func TestLoadRaw(t *testing.T) {
	data := make([]byte, cartridgeloader.PRGUnit)
	data[0] = 0xea
	cl := cartridgeloader.NewLoader(writeFile(t, "raw.bin", data))
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Header == nil, true)
	test.ExpectEquality(t, cl.PRG()[0], uint8(0xea))

	cl = cartridgeloader.NewLoader(writeFile(t, "odd.bin", make([]byte, 100)))
	test.ExpectFailure(t, cl.Load())
}

func TestLoadErrors(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, "cartridgeloader: %v"), true)

	cl = cartridgeloader.NewLoader(writeFile(t, "mapper.nes", makeINES(1, 0x10, 0x00)))
	test.ExpectFailure(t, cl.Load())

	// header claims more PRG than the file contains
	data := makeINES(1, 0x00, 0x00)
	data[4] = 4
	cl = cartridgeloader.NewLoader(writeFile(t, "short.nes", data))
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader(writeFile(t, "hash.nes", makeINES(1, 0x00, 0x00)))
	cl.Hash = 1
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader("ftp://example.com/test.nes")
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader(writeFile(t, "broken.7z", []byte("not an archive")))
	test.ExpectFailure(t, cl.Load())
}

func TestLoadHTTP(t *testing.T) {
	data := makeINES(2, 0x00, 0x00)

	mux := http.NewServeMux()
	mux.HandleFunc("/test.nes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/test.nes")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Hash, xxhash.Sum64(data))
	test.ExpectEquality(t, len(cl.PRG()), 2*cartridgeloader.PRGUnit)

	// the body of an error page is not mistaken for cartridge data
	cl = cartridgeloader.NewLoader(srv.URL + "/missing.nes")
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "404 Not Found"))
	test.ExpectEquality(t, cl.HasLoaded(), false)
}

func TestLoadGzip(t *testing.T) {
	data := makeINES(1, 0x00, 0x00)

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	cl := cartridgeloader.NewLoader(writeFile(t, "test.nes.gz", buf.Bytes()))
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Hash, xxhash.Sum64(data))
	test.ExpectEquality(t, len(cl.PRG()), cartridgeloader.PRGUnit)
}

func TestLoadZip(t *testing.T) {
	data := makeINES(2, 0x00, 0x00)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("test.nes")
	test.DemandSuccess(t, err)
	_, err = f.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	cl := cartridgeloader.NewLoader(writeFile(t, "TEST.ZIP", buf.Bytes()))
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Hash, xxhash.Sum64(data))
	test.ExpectEquality(t, len(cl.PRG()), cartridgeloader.PRGUnit*2)
}
