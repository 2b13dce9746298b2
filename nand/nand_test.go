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

package nand_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/nand"
	"github.com/gophercube/gophercube/test"
)

// buildWAD assembles a WAD container with empty certificate chain and
// ticket sections and a TMD carrying the given title id.
func buildWAD(t *testing.T, titleID uint64, titleVersion uint64) string {
	t.Helper()

	const tmdSize = 0x1e4

	data := make([]byte, 0x40+0x40+0x40+tmdSize)

	put := func(offset int, value uint32) {
		binary.BigEndian.PutUint32(data[offset:], value)
	}

	put(0x00, 0x20)       // header size
	put(0x04, 0x49730000) // type "Is"
	put(0x08, 0x40)       // cert chain size
	put(0x10, 0x40)       // ticket size
	put(0x14, tmdSize)    // tmd size

	// header at 0, certs at 0x40, ticket at 0x80, tmd at 0xc0
	binary.BigEndian.PutUint64(data[0xc0+0x184:], titleVersion)
	binary.BigEndian.PutUint64(data[0xc0+0x18c:], titleID)

	fn := filepath.Join(t.TempDir(), "title.wad")
	if err := os.WriteFile(fn, data, 0600); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestWADLoader(t *testing.T) {
	fn := buildWAD(t, 0x0001000148414241, 0x000000010000003a)

	wad, err := nand.NewWADLoader(fn)
	test.ExpectSuccess(t, err == nil)
	test.ExpectSuccess(t, wad.IsValid())
	test.Equate(t, wad.TitleID(), uint64(0x0001000148414241))
	test.Equate(t, wad.TitleVersion(), uint64(0x000000010000003a))
}

func TestWADLoaderInvalid(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "title.wad")
	if err := os.WriteFile(fn, make([]byte, 0x100), 0600); err != nil {
		t.Fatal(err)
	}

	wad, err := nand.NewWADLoader(fn)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, wad.IsValid())
}

func TestFormatTitleID(t *testing.T) {
	test.Equate(t, nand.FormatTitleID(0x0001000148414241), "00010001_48414241")
}
