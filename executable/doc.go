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

// Package executable parses the two raw executable formats the console
// can boot directly: the flat-segment DOL format used by the native SDK
// and relocatable ELF images produced by homebrew toolchains.
//
// Both parsers implement the Executable interface, which is the only
// view the boot sequence has of them: validity, declared platform, entry
// point and a LoadInto() operation that places the image's segments into
// console memory.
package executable
