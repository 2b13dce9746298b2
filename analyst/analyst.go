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

package analyst

import (
	"fmt"

	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/symbols"
)

// MemoryReader is the narrow memory contract needed by the function
// finder.
type MemoryReader interface {
	ReadU32(address uint32) (uint32, error)
}

// instructions recognised by the function finder.
const (
	// mflr r0. the second instruction of the standard prologue
	opMflr = 0x7c0802a6

	// blr. the standard return
	opBlr = 0x4e800020
)

// isStwuSP returns true for a "stwu r1,-N(r1)" instruction, the first
// instruction of the standard prologue.
func isStwuSP(opcode uint32) bool {
	return opcode>>26 == 37 && (opcode>>21)&0x1f == 1 && (opcode>>16)&0x1f == 1 && opcode&0x8000 == 0x8000
}

// upper limit on the size of a recognised function. anything longer
// without a blr is treated as data and skipped.
const maxFunctionLength = 0x10000

// FindFunctions scans guest code between the lo and hi addresses for
// function prologues, adding an anonymous symbol for every function
// found. The number of functions found is returned.
//
// Anonymous symbols are named "fn_" followed by the function address;
// a signature database or a map file can replace these names later.
func FindFunctions(mem MemoryReader, lo uint32, hi uint32, tbl *symbols.Table) int {
	n := 0

	for address := lo &^ 0x3; address < hi; address += 4 {
		opcode, err := mem.ReadU32(address)
		if err != nil {
			// unmapped address. nothing more to scan
			break
		}

		if !isStwuSP(opcode) {
			continue
		}

		next, err := mem.ReadU32(address + 4)
		if err != nil || next != opMflr {
			continue
		}

		// prologue found. look for the return
		size := uint32(0)
		for o := uint32(8); o < maxFunctionLength; o += 4 {
			opcode, err := mem.ReadU32(address + o)
			if err != nil {
				break
			}
			if opcode == opBlr {
				size = o + 4
				break
			}
		}

		if size == 0 {
			continue
		}

		tbl.Add(symbols.Symbol{
			Address: address,
			Size:    size,
			Name:    fmt.Sprintf("fn_%08x", address),
		})
		n++

		// resume scanning after the function body
		address += size - 4
	}

	if n > 0 {
		logger.Logf("analyst", "%d functions found between %08x and %08x", n, lo, hi)
	}

	return n
}

// Checksum computes the signature checksum of a function: a 32bit sum
// over the instruction words with the rotation applied per word. Simple
// but stable across load addresses for position independent sequences.
func Checksum(mem MemoryReader, address uint32, size uint32) (uint32, error) {
	var sum uint32

	for o := uint32(0); o < size; o += 4 {
		opcode, err := mem.ReadU32(address + o)
		if err != nil {
			return 0, err
		}
		sum = (sum<<3 | sum>>29) ^ opcode
	}

	return sum, nil
}
