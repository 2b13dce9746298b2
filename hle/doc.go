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

// Package hle replaces well known guest library functions with fast
// native equivalents. Recognised functions (by symbol name) have their
// first instruction overwritten with a trap opcode from a reserved
// illegal-instruction range; the interpreter dispatches the trap to the
// native implementation.
//
// Patching is idempotent. A function that already carries a trap opcode
// is left alone, so the symbol-map and signature-scan patch steps can
// both run in sequence without conflict.
package hle
