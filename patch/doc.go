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

// Package patch applies memory patches to a freshly booted console.
// Patch files live in the patches sub-directory of the resources path
// and are plain text, one poke per line:
//
//	poke32 80003180 47414d45
//	poke8  80003188 01
//
// Addresses and values are hexadecimal. Blank lines and lines starting
// with '#' are skipped.
package patch
