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

package cartridgeloader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Astral-C/nest/curated"
	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
)

// Loader is used to specify the cartridge to use when attaching to the NES.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. zero indicates that the hash is
	// unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash uint64

	// copy of the loaded data after decompression. subsequent calls to Load()
	// will not reload the data
	Data []byte

	// the decoded iNES header. nil if the data is a headerless PRG image
	Header *Header

	archive int
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The file extension is used to decide whether the file is an archive.
// Alphabetic characters in file extensions can be in upper or lower case or
// a mixture of both.
func NewLoader(filename string) Loader {
	cl := Loader{
		Filename: filename,
	}

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".ZIP":
		cl.archive = archiveZip
	case ".GZ":
		cl.archive = archiveGzip
	case ".7Z":
		cl.archive = archive7z
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("%s (%s)", resp.Status, cl.Filename))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file", "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	data, err = unpack(cl.archive, data)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if IsINES(data) {
		h, err := ParseHeader(data)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		if h.Mapper != 0 {
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported mapper (%d)", h.Mapper))
		}
		if len(data) < h.prgOffset()+h.PRGBanks*PRGUnit {
			return curated.Errorf("cartridgeloader: %v", "file shorter than the size in the header")
		}
		cl.Header = &h
	} else if len(data) != PRGUnit && len(data) != PRGUnit*2 {
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("not an iNES file and not a 16K or 32K image (%d bytes)", len(data)))
	}

	hash := xxhash.Sum64(data)
	if cl.Hash != 0 && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}
	cl.Hash = hash
	cl.Data = data

	return nil
}

// PRG returns the PRG-ROM part of the loaded data. Returns nil if Load() has
// not been called successfully.
func (cl Loader) PRG() []byte {
	if !cl.HasLoaded() {
		return nil
	}
	if cl.Header == nil {
		return cl.Data
	}
	o := cl.Header.prgOffset()
	return cl.Data[o : o+cl.Header.PRGBanks*PRGUnit]
}

// unpack returns the first file in the archive. Data that is not archived is
// returned unchanged.
func unpack(archive int, data []byte) ([]byte, error) {
	var r io.ReadCloser
	var err error

	switch archive {
	case archiveZip:
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("empty zip archive")
		}
		r, err = zr.File[0].Open()
		if err != nil {
			return nil, err
		}
	case archiveGzip:
		r, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	case archive7z:
		sr, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(sr.File) == 0 {
			return nil, fmt.Errorf("empty 7z archive")
		}
		r, err = sr.File[0].Open()
		if err != nil {
			return nil, err
		}
	default:
		return data, nil
	}
	defer r.Close()

	return io.ReadAll(r)
}
