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

package hle_test

import (
	"testing"

	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/hle"
	"github.com/gophercube/gophercube/symbols"
	"github.com/gophercube/gophercube/test"
)

func TestPatchFunctions(t *testing.T) {
	mem := memory.NewMemory(false)

	var tbl symbols.Table
	tbl.Add(symbols.Symbol{Address: 0x80004000, Size: 0x20, Name: "OSReport"})
	tbl.Add(symbols.Symbol{Address: 0x80004100, Size: 0x20, Name: "NotHooked"})

	n := hle.PatchFunctions(mem, &tbl)
	test.Equate(t, n, 1)

	opcode, err := mem.ReadU32(0x80004000)
	test.ExpectSuccess(t, err == nil)

	i, ok := hle.IsTrap(opcode)
	test.ExpectSuccess(t, ok)
	test.Equate(t, hle.Hooks[i], "OSReport")

	// functions that are not hooked are untouched
	opcode, err = mem.ReadU32(0x80004100)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, opcode, 0)
}

func TestPatchIdempotence(t *testing.T) {
	mem := memory.NewMemory(false)

	var tbl symbols.Table
	tbl.Add(symbols.Symbol{Address: 0x80004000, Size: 0x20, Name: "OSPanic"})

	test.Equate(t, hle.PatchFunctions(mem, &tbl), 1)

	before, err := mem.ReadU32(0x80004000)
	test.ExpectSuccess(t, err == nil)

	// second application changes nothing
	test.Equate(t, hle.PatchFunctions(mem, &tbl), 0)

	after, err := mem.ReadU32(0x80004000)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, after, before)
}

func TestPatchFixedFunctions(t *testing.T) {
	mem := memory.NewMemory(false)

	// no magic string. nothing patched
	test.Equate(t, hle.PatchFixedFunctions(mem), 0)

	test.ExpectSuccess(t, mem.WriteU32(0x80001804, 0x53545542) == nil) // "STUB"
	test.ExpectSuccess(t, mem.WriteU32(0x80001808, 0x48415858) == nil) // "HAXX"

	test.Equate(t, hle.PatchFixedFunctions(mem), 1)

	opcode, err := mem.ReadU32(0x80001800)
	test.ExpectSuccess(t, err == nil)

	i, ok := hle.IsTrap(opcode)
	test.ExpectSuccess(t, ok)
	test.Equate(t, hle.Hooks[i], "HBReload")

	// idempotent
	test.Equate(t, hle.PatchFixedFunctions(mem), 0)
}
