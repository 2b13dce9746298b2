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

// Package nand deals with titles installed to the console's internal
// storage. The boot sequence only needs enough of the installed-title
// format to identify what is being booted: title execution itself is
// owned by the IOS emulation.
//
// The WADLoader type reads the title metadata (TMD) from a WAD container
// file, which is how installed titles are distributed and archived.
package nand
