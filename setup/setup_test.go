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

package setup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/setup"
	"github.com/gophercube/gophercube/test"
)

// chdir to a temporary directory that acts as a portable resources
// directory.
func setupResources(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tmp := t.TempDir()

	d := filepath.Join(tmp, ".gophercube")
	if err := os.MkdirAll(d, 0700); err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return d
}

func TestApplyNoDatabase(t *testing.T) {
	setupResources(t)

	mem := memory.NewMemory(false)

	// absence of the setup database is not an error
	test.ExpectSuccess(t, setup.Apply(mem, "GAFE01") == nil)
}

func TestApplyPatchEntry(t *testing.T) {
	d := setupResources(t)

	if err := os.MkdirAll(filepath.Join(d, "patches"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(d, "patches", "widescreen"),
		[]byte("poke32 80003180 00000001\n"), 0600); err != nil {
		t.Fatal(err)
	}

	dbContent := "000,patch,GAFE01,widescreen,widescreen hack\n"
	if err := os.WriteFile(filepath.Join(d, "setupDB"), []byte(dbContent), 0600); err != nil {
		t.Fatal(err)
	}

	mem := memory.NewMemory(false)

	test.ExpectSuccess(t, setup.Apply(mem, "GAFE01") == nil)

	v, err := mem.ReadU32(0x80003180)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 1)

	// a different game id leaves memory untouched
	mem = memory.NewMemory(false)
	test.ExpectSuccess(t, setup.Apply(mem, "GZLE01") == nil)

	v, err = mem.ReadU32(0x80003180)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 0)
}
