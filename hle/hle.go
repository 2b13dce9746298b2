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

package hle

import (
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/symbols"
)

// Memory is the narrow memory contract needed by the patch functions.
type Memory interface {
	ReadU32(address uint32) (uint32, error)
	WriteU32(address uint32, value uint32) error
}

// trap opcodes live in a reserved illegal-instruction range. the low
// bits carry the hook index.
const (
	trapBase = 0x0cc00000
	trapMask = 0xffff0000
)

// Hooks is the fixed table of library functions with native
// implementations. The position in the table is the hook index encoded
// in the trap opcode.
var Hooks = []string{
	"OSReport",
	"OSVReport",
	"OSPanic",
	"DBPrintf",
	"__write_console",
	"HBReload",
}

// TrapOpcode returns the trap opcode for the given hook index.
func TrapOpcode(index int) uint32 {
	return trapBase | uint32(index)
}

// IsTrap decodes a trap opcode. The boolean return value is false if
// the opcode is not from the reserved trap range.
func IsTrap(opcode uint32) (int, bool) {
	if opcode&trapMask != trapBase {
		return 0, false
	}
	return int(opcode & ^uint32(trapMask)), true
}

// PatchFunctions overwrites the first instruction of every hooked
// function present in the symbol table with the corresponding trap
// opcode. Functions that already carry a trap are not patched again.
// The number of newly patched functions is returned.
func PatchFunctions(mem Memory, tbl *symbols.Table) int {
	n := 0

	for i, name := range Hooks {
		sym, ok := tbl.LookupName(name)
		if !ok {
			continue
		}

		opcode, err := mem.ReadU32(sym.Address)
		if err != nil {
			continue
		}
		if _, ok := IsTrap(opcode); ok {
			continue
		}

		if err := mem.WriteU32(sym.Address, TrapOpcode(i)); err != nil {
			continue
		}

		logger.Logf("hle", "patched %s (%08x)", name, sym.Address)
		n++
	}

	return n
}

// address and signature of the homebrew reload stub. homebrew loaders
// install a stub at a fixed address, identified by a magic string
// immediately after the branch target.
const (
	reloadStubAddress = 0x80001800
	reloadStubMagic   = 0x80001804

	// "STUB" and "HAXX"
	magicStub = 0x53545542
	magicHaxx = 0x48415858
)

// PatchFixedFunctions installs hooks at fixed, well known addresses
// rather than at symbol table locations. Currently this is only the
// homebrew reload stub. Like PatchFunctions it is idempotent.
func PatchFixedFunctions(mem Memory) int {
	a, err := mem.ReadU32(reloadStubMagic)
	if err != nil {
		return 0
	}
	b, err := mem.ReadU32(reloadStubMagic + 4)
	if err != nil {
		return 0
	}

	if a != magicStub || b != magicHaxx {
		return 0
	}

	opcode, err := mem.ReadU32(reloadStubAddress)
	if err != nil {
		return 0
	}
	if _, ok := IsTrap(opcode); ok {
		return 0
	}

	for i, name := range Hooks {
		if name == "HBReload" {
			if err := mem.WriteU32(reloadStubAddress, TrapOpcode(i)); err != nil {
				return 0
			}
			logger.Logf("hle", "patched homebrew reload stub (%08x)", uint32(reloadStubAddress))
			return 1
		}
	}

	return 0
}
