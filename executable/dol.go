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
	"encoding/binary"

	"github.com/lunixbochs/struc"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/dvd"
)

// number of segments in a DOL image.
const (
	dolNumText = 7
	dolNumData = 11
)

// size of the DOL header in bytes.
const dolHeaderSize = 0x100

// dolHeader is the on-file header of a DOL image. All fields are
// big-endian.
type dolHeader struct {
	TextOffset  [dolNumText]uint32
	DataOffset  [dolNumData]uint32
	TextAddress [dolNumText]uint32
	DataAddress [dolNumData]uint32
	TextSize    [dolNumText]uint32
	DataSize    [dolNumData]uint32
	BSSAddress  uint32
	BSSSize     uint32
	Entry       uint32
	Padding     [28]byte
}

// DOL is the flat-segment executable format used by the native SDK. Up
// to seven text and eleven data segments, each with a file offset, a
// load address and a size; plus a BSS extent and an entry point.
type DOL struct {
	header dolHeader
	data   []byte
	valid  bool
	wii    bool
}

// NewDOL parses a DOL image from the supplied data.
func NewDOL(data []byte) (*DOL, error) {
	dol := &DOL{data: data}

	if len(data) < dolHeaderSize {
		return dol, curated.Errorf("executable: dol: file is too small")
	}

	err := struc.UnpackWithOrder(bytes.NewReader(data[:dolHeaderSize]), &dol.header, binary.BigEndian)
	if err != nil {
		return dol, curated.Errorf("executable: dol: %v", err)
	}

	// every declared segment must lie inside the file
	for i := 0; i < dolNumText; i++ {
		if err := dol.checkSegment(dol.header.TextOffset[i], dol.header.TextSize[i]); err != nil {
			return dol, err
		}
	}
	for i := 0; i < dolNumData; i++ {
		if err := dol.checkSegment(dol.header.DataOffset[i], dol.header.DataSize[i]); err != nil {
			return dol, err
		}
	}

	if dol.header.Entry == 0 {
		return dol, curated.Errorf("executable: dol: no entry point")
	}

	dol.valid = true

	// platform heuristic. a segment placed in the additional memory bank
	// means the image expects the successor console
	dol.wii = addressIndicatesWii(dol.header.Entry)
	for i := 0; i < dolNumText; i++ {
		if dol.header.TextSize[i] > 0 && addressIndicatesWii(dol.header.TextAddress[i]) {
			dol.wii = true
		}
	}
	for i := 0; i < dolNumData; i++ {
		if dol.header.DataSize[i] > 0 && addressIndicatesWii(dol.header.DataAddress[i]) {
			dol.wii = true
		}
	}

	return dol, nil
}

// DOLExtent parses only the header of a DOL image and returns the total
// file extent implied by its segment table. Used when reading a DOL from
// a disc, where the header must be read before the rest of the file can
// be sized.
func DOLExtent(data []byte) (uint32, error) {
	if len(data) < dolHeaderSize {
		return 0, curated.Errorf("executable: dol: file is too small")
	}

	var hdr dolHeader
	err := struc.UnpackWithOrder(bytes.NewReader(data[:dolHeaderSize]), &hdr, binary.BigEndian)
	if err != nil {
		return 0, curated.Errorf("executable: dol: %v", err)
	}

	extent := uint32(dolHeaderSize)
	for i := 0; i < dolNumText; i++ {
		if hdr.TextSize[i] > 0 && hdr.TextOffset[i]+hdr.TextSize[i] > extent {
			extent = hdr.TextOffset[i] + hdr.TextSize[i]
		}
	}
	for i := 0; i < dolNumData; i++ {
		if hdr.DataSize[i] > 0 && hdr.DataOffset[i]+hdr.DataSize[i] > extent {
			extent = hdr.DataOffset[i] + hdr.DataSize[i]
		}
	}

	return extent, nil
}

func (dol *DOL) checkSegment(offset uint32, size uint32) error {
	if size == 0 {
		return nil
	}
	if uint64(offset)+uint64(size) > uint64(len(dol.data)) {
		return curated.Errorf("executable: dol: segment beyond end of file")
	}
	return nil
}

// IsValid implements the Executable interface.
func (dol *DOL) IsValid() bool {
	return dol.valid
}

// Platform implements the Executable interface.
func (dol *DOL) Platform() dvd.Platform {
	if dol.wii {
		return dvd.Wii
	}
	return dvd.GameCube
}

// EntryPoint implements the Executable interface.
func (dol *DOL) EntryPoint() uint32 {
	if !dol.valid {
		return 0
	}
	return dol.header.Entry
}

// LoadInto implements the Executable interface.
func (dol *DOL) LoadInto(mem Memory) error {
	if !dol.valid {
		return curated.Errorf("executable: dol: loading invalid executable")
	}

	for i := 0; i < dolNumText; i++ {
		if dol.header.TextSize[i] == 0 {
			continue
		}
		o := dol.header.TextOffset[i]
		err := mem.CopyToMain(dol.header.TextAddress[i], dol.data[o:o+dol.header.TextSize[i]])
		if err != nil {
			return curated.Errorf("executable: dol: %v", err)
		}
	}

	for i := 0; i < dolNumData; i++ {
		if dol.header.DataSize[i] == 0 {
			continue
		}
		o := dol.header.DataOffset[i]
		err := mem.CopyToMain(dol.header.DataAddress[i], dol.data[o:o+dol.header.DataSize[i]])
		if err != nil {
			return curated.Errorf("executable: dol: %v", err)
		}
	}

	if dol.header.BSSSize > 0 {
		if err := mem.Fill(dol.header.BSSAddress, 0, dol.header.BSSSize); err != nil {
			return curated.Errorf("executable: dol: %v", err)
		}
	}

	return nil
}
