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

package analyst_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/analyst"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/symbols"
	"github.com/gophercube/gophercube/test"
)

// standard prologue and return instructions.
const (
	opStwuSP = 0x9421ffe0 // stwu r1,-32(r1)
	opMflr   = 0x7c0802a6 // mflr r0
	opNop    = 0x60000000 // ori r0,r0,0
	opBlr    = 0x4e800020 // blr
)

// placeFunction writes a recognisable function at the given address and
// returns its size.
func placeFunction(t *testing.T, mem *memory.Memory, address uint32, body int) uint32 {
	t.Helper()

	insns := []uint32{opStwuSP, opMflr}
	for i := 0; i < body; i++ {
		insns = append(insns, opNop)
	}
	insns = append(insns, opBlr)

	for i, insn := range insns {
		if err := mem.WriteU32(address+uint32(i*4), insn); err != nil {
			t.Fatal(err)
		}
	}

	return uint32(len(insns) * 4)
}

func TestFindFunctions(t *testing.T) {
	mem := memory.NewMemory(false)

	sizeA := placeFunction(t, mem, 0x80004000, 4)
	_ = placeFunction(t, mem, 0x80004100, 8)

	var tbl symbols.Table
	n := analyst.FindFunctions(mem, 0x80004000, 0x80005000, &tbl)
	test.Equate(t, n, 2)
	test.Equate(t, tbl.Len(), 2)

	sym, ok := tbl.LookupAddress(0x80004000)
	test.ExpectSuccess(t, ok)
	test.Equate(t, sym.Size, sizeA)
	test.Equate(t, sym.Name, "fn_80004000")
}

func TestSignatureDB(t *testing.T) {
	mem := memory.NewMemory(false)

	size := placeFunction(t, mem, 0x80004000, 4)

	var tbl symbols.Table
	analyst.FindFunctions(mem, 0x80004000, 0x80005000, &tbl)

	checksum, err := analyst.Checksum(mem, 0x80004000, size)
	test.ExpectSuccess(t, err == nil)

	fn := filepath.Join(t.TempDir(), "signatures.db")
	content := fmt.Sprintf("# known functions\n%08x %08x OSReport\n", checksum, size)
	if err := os.WriteFile(fn, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	var db analyst.SignatureDB
	test.ExpectSuccess(t, db.Load(fn) == nil)
	test.Equate(t, db.Len(), 1)

	n := db.Apply(mem, &tbl)
	test.Equate(t, n, 1)

	sym, ok := tbl.LookupName("OSReport")
	test.ExpectSuccess(t, ok)
	test.Equate(t, sym.Address, 0x80004000)

	db.Clear()
	test.Equate(t, db.Len(), 0)
}
