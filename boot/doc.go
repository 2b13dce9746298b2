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

// Package boot takes a freshly created console and prepares it for
// execution: memory and CPU registers are initialised, the game or boot
// ROM is loaded, and post-load patching (setup database, symbol maps,
// native function hooks) is applied.
//
// The preferred entry point is the BootUp() function with a Request
// value describing what to boot. The request's Source field selects one
// of a fixed set of boot sources: a disc image, a standalone executable,
// an installed title, the bare boot ROM, or a recorded session.
//
// BootUp() either succeeds completely or returns an error. There are no
// partial-state guarantees on failure; the caller should discard the
// console.
package boot
