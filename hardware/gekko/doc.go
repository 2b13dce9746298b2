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

// Package gekko implements the register file of the console's PowerPC CPU.
//
// The boot sequence is only concerned with architectural state: general
// purpose registers, the machine state register, special purpose registers
// and in particular the block address translation (BAT) register pairs
// that define the virtual memory windows guest code runs under. Instruction
// execution is the interpreter's business, not ours.
package gekko
