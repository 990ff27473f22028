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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated NES.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
// Local files can be compressed as zip, gzip or 7z archives, in which case
// the first file in the archive is used.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/nestest.nes",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// Loaded data is either an iNES image, identified by the "NES\x1a" magic
// number at the start of the file, or a headerless 16K or 32K PRG-ROM image.
// Only mapper 0 (NROM) iNES images are accepted.
package cartridgeloader
