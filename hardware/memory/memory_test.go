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

package memory_test

import (
	"testing"

	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/test"
)

func TestEndianness(t *testing.T) {
	mem := memory.NewMemory(false)

	test.ExpectSuccess(t, mem.WriteU32(0x1000, 0x0d15ea5e) == nil)

	v, err := mem.ReadU32(0x1000)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 0x0d15ea5e)

	// big-endian byte order
	b, err := mem.ReadU8(0x1000)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, int(b), 0x0d)

	h, err := mem.ReadU16(0x1002)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, int(h), 0xea5e)
}

func TestMirrors(t *testing.T) {
	mem := memory.NewMemory(false)

	// cached and uncached mirrors address the same storage
	test.ExpectSuccess(t, mem.WriteU32(0x80003180, 0x47414c45) == nil)

	v, err := mem.ReadU32(0x00003180)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 0x47414c45)

	v, err = mem.ReadU32(0xc0003180)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 0x47414c45)
}

func TestBounds(t *testing.T) {
	mem := memory.NewMemory(false)

	// last valid word of MEM1
	test.ExpectSuccess(t, mem.WriteU32(0x817ffffc, 1) == nil)
	test.ExpectFailure(t, mem.WriteU32(0x817ffffd, 1))

	// MEM2 is unmapped on the GameCube
	test.ExpectFailure(t, mem.WriteU32(0x90000000, 1))

	mem.EnableMem2()
	test.ExpectSuccess(t, mem.WriteU32(0x90000000, 1) == nil)
	test.ExpectSuccess(t, mem.WriteU32(0x93fffffc, 1) == nil)
	test.ExpectFailure(t, mem.WriteU32(0x94000000, 1))
}

func TestCopyAndFill(t *testing.T) {
	mem := memory.NewMemory(true)

	test.ExpectSuccess(t, mem.CopyToMain(0x81200000, []byte{1, 2, 3, 4}) == nil)
	v, err := mem.ReadU32(0x01200000)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 0x01020304)

	test.ExpectSuccess(t, mem.Fill(0x81200000, 0xff, 2) == nil)
	v, err = mem.ReadU32(0x01200000)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 0xffff0304)

	u, err := mem.ReadU64(0x01200000)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, u, uint64(0xffff030400000000))
}
