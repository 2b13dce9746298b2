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
	"os"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/dvd"
)

// Memory is the narrow memory contract needed by LoadInto().
type Memory interface {
	CopyToMain(address uint32, data []byte) error
	Fill(address uint32, value uint8, length uint32) error
}

// Executable is the view the boot sequence has of a parsed executable
// image.
type Executable interface {
	// IsValid is false if the file was structurally unsound. the other
	// functions return zero values for invalid executables.
	IsValid() bool

	// Platform the executable declares itself to be for. unlike a disc
	// volume an executable is not authoritative about its platform; the
	// value here is a heuristic from the segment addresses.
	Platform() dvd.Platform

	// EntryPoint is the address execution should start from once the
	// image is loaded.
	EntryPoint() uint32

	// LoadInto copies the image's segments into console memory and
	// zeroes the BSS extent.
	LoadInto(mem Memory) error
}

// elf magic number.
var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// Open parses the named executable file. The format is decided by the
// file's magic number: ELF images are self-identifying and anything else
// is treated as a DOL.
func Open(filename string) (Executable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("executable: %v", err)
	}

	if bytes.HasPrefix(data, elfMagic) {
		return NewELF(data)
	}

	return NewDOL(data)
}

// segment addresses at or above this value indicate the executable
// expects the successor console's additional memory bank.
const mem2Window = 0x90000000

// addressIndicatesWii is the platform heuristic shared by both parsers.
func addressIndicatesWii(address uint32) bool {
	return address&0x3fffffff >= mem2Window&0x3fffffff
}
