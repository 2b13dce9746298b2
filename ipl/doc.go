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

// Package ipl handles the console's boot ROM (the IPL, containing the
// BS1/BS2 bootstrap code).
//
// A ROM dump is identified by its CRC32 against a table of known dumps,
// each of which implies a console region. Dumps with an unknown checksum
// are still usable; a warning is logged and the region is reported as
// unknown.
//
// The bootstrap portion of the ROM is stored scrambled. The Descrambler
// interface is the capability the boot sequence needs to reverse this;
// the package provides the standard implementation.
package ipl
