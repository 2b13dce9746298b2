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

package executable

import (
	"bytes"
	"debug/elf"
	"io"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/dvd"
)

// ELF wraps a big-endian 32bit PowerPC ELF image. Homebrew toolchains
// produce these rather than DOL files.
type ELF struct {
	file  *elf.File
	valid bool
	wii   bool
}

// NewELF parses an ELF image from the supplied data.
func NewELF(data []byte) (*ELF, error) {
	e := &ELF{}

	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return e, curated.Errorf("executable: elf: %v", err)
	}

	// the console CPU is a 32bit big-endian PowerPC
	if f.Class != elf.ELFCLASS32 || f.Data != elf.ELFDATA2MSB || f.Machine != elf.EM_PPC {
		return e, curated.Errorf("executable: elf: not a 32bit big-endian PowerPC image")
	}

	if f.Entry == 0 {
		return e, curated.Errorf("executable: elf: no entry point")
	}

	e.file = f
	e.valid = true

	e.wii = addressIndicatesWii(uint32(f.Entry))
	for _, p := range f.Progs {
		if p.Type == elf.PT_LOAD && p.Memsz > 0 && addressIndicatesWii(uint32(p.Vaddr)) {
			e.wii = true
		}
	}

	return e, nil
}

// IsValid implements the Executable interface.
func (e *ELF) IsValid() bool {
	return e.valid
}

// Platform implements the Executable interface.
func (e *ELF) Platform() dvd.Platform {
	if e.wii {
		return dvd.Wii
	}
	return dvd.GameCube
}

// EntryPoint implements the Executable interface.
func (e *ELF) EntryPoint() uint32 {
	if !e.valid {
		return 0
	}
	return uint32(e.file.Entry)
}

// LoadInto implements the Executable interface.
func (e *ELF) LoadInto(mem Memory) error {
	if !e.valid {
		return curated.Errorf("executable: elf: loading invalid executable")
	}

	for _, p := range e.file.Progs {
		if p.Type != elf.PT_LOAD || p.Memsz == 0 {
			continue
		}

		if p.Filesz > 0 {
			b := make([]byte, p.Filesz)
			if _, err := io.ReadFull(p.Open(), b); err != nil {
				return curated.Errorf("executable: elf: %v", err)
			}
			if err := mem.CopyToMain(uint32(p.Vaddr), b); err != nil {
				return curated.Errorf("executable: elf: %v", err)
			}
		}

		// the part of the segment not backed by file data is zeroed
		if p.Memsz > p.Filesz {
			err := mem.Fill(uint32(p.Vaddr+p.Filesz), 0, uint32(p.Memsz-p.Filesz))
			if err != nil {
				return curated.Errorf("executable: elf: %v", err)
			}
		}
	}

	return nil
}
