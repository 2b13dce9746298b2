// This file is part of GopherCube.
//
// GopherCube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherCube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherCube.  If not, see <https://www.gnu.org/licenses/>.

// Package curated provides the error type used throughout the application.
// Curated errors keep hold of the pattern string used to create them, which
// means callers can test for a particular category of error without the
// package having to export sentinel values for every failure mode.
//
// Create errors with the Errorf() function:
//
//	curated.Errorf("dvd: no disc inserted")
//
// Wrapping is achieved by passing an error value as one of the format
// arguments:
//
//	curated.Errorf("boot: %v", err)
//
// The Is() and Has() functions test the error (or any error in the wrapped
// chain, in the case of Has()) against a pattern string.
package curated
