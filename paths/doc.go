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

// Package paths should be used whenever a request to the filesystem is made.
// The functions herein make sure that the correct path (depending on the
// operating system) is used for the resource.
//
// When compiled without the "release" tag the resource path is relative to
// the current directory, which is useful during development. With the
// "release" tag the resource path is in the user's configuration directory.
//
// UniqueFilename() creates filenames that are unlikely to collide with
// existing files, for example when saving screenshots.
package paths
