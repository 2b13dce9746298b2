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

// Package dvd represents the optical disc drive of the emulated console.
//
// The Drive type holds at most one inserted Volume. The Volume interface is
// the narrow contract the boot sequence relies on: read bytes at an offset,
// read a big-endian header field, and report the disc's declared platform,
// region and game id. The details of disc image containers and partition
// decryption live behind this interface.
//
// Two implementations are provided. FileVolume reads a raw disc dump
// (.gcm/.iso). ISOVolume serves a homebrew data disc from a standard ISO9660
// image, synthesising the console-specific header fields that such images
// do not carry.
package dvd
