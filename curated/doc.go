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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("cartridgeloader: unsupported mapper (%d)", 4)
//
//	if curated.Is(e, "cartridgeloader: unsupported mapper (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("nes: %v", e)
//
//	if curated.Has(f, "cartridgeloader: unsupported mapper (%d)") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result.
//
// Curated errors also implement Unwrap() so that errors from the standard
// library (os.ErrNotExist for example) can still be found with errors.Is()
// after they have been placed in a curated chain.
//
// The Error() function normalises the chain so that it does not contain
// duplicate adjacent parts. For example, "nes: nes: bad file" becomes "nes:
// bad file".
package curated
