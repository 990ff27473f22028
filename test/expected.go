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

package test

import (
	"math"
	"testing"
)

// success returns true if the value v is a 'success' value for its type.
// Unsupported types are a fatal error.
func success(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}

	return false
}

// ExpectFailure tests argument v for a failure condition suitable for it's
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// A nil value is a success and so ExpectFailure() will fail. Returns true if
// the expectation was met.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	if success(t, v) {
		t.Errorf("a failure value is expected for type %T", v)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition suitable for it's
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// A nil value is a success. Returns true if the expectation was met.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	if !success(t, v) {
		if err, ok := v.(error); ok {
			t.Errorf("a success value is expected for type %T (%v)", v, err)
		} else {
			t.Errorf("a success value is expected for type %T", v)
		}
		return false
	}
	return true
}

// ExpectEquality is used to test equality between one value and another.
// Returns true if the values are equal.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// In other words, the test does not want the values to be equal.
func ExpectInequality[T comparable](t *testing.T, v T, notExpectedValue T) bool {
	t.Helper()
	if v == notExpectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", v, v, notExpectedValue)
		return false
	}
	return true
}

// ExpectApproximate is used to test approximate equality between one value
// and another. The tolerance argument is a fraction of the expected value.
func ExpectApproximate[T ~int | ~float64](t *testing.T, v T, expectedValue T, tolerance float64) bool {
	t.Helper()
	top := float64(expectedValue) * (1 + tolerance)
	bot := float64(expectedValue) * (1 - tolerance)
	if math.Abs(float64(v)) < math.Abs(bot) || math.Abs(float64(v)) > math.Abs(top) {
		t.Errorf("approximation test of type %T failed: '%v' is outside the range '%v' to '%v'", v, v, bot, top)
		return false
	}
	return true
}
