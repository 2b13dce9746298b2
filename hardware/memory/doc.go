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

// Package memory implements the main memory of the emulated console.
//
// MEM1 is the 24MiB bank present on both console generations. MEM2 is the
// additional 64MiB bank present only on the Wii. Addresses accepted by the
// access functions may be physical or from any of the standard virtual
// mirrors (0x8000_0000 cached, 0xc000_0000 uncached); the top two address
// bits are not significant for bank selection.
//
// All multi-byte accessors are big-endian, matching the CPU.
package memory
