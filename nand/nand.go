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

package nand

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/lunixbochs/struc"

	"github.com/gophercube/gophercube/curated"
)

// ContentLoader is the view the boot sequence has of an installed title.
type ContentLoader interface {
	// IsValid is false if the container was structurally unsound.
	IsValid() bool

	// TitleID of the contained title.
	TitleID() uint64

	// TitleVersion is the full 64bit system title version, used to select
	// the IOS the title requests.
	TitleVersion() uint64
}

// FormatTitleID renders a title id in the canonical form used to key
// symbol map and patch files: two groups of eight hex digits.
func FormatTitleID(id uint64) string {
	return fmt.Sprintf("%08X_%08X", uint32(id>>32), uint32(id))
}

// wadHeader is the fixed header of a WAD container. All fields are
// big-endian.
type wadHeader struct {
	HeaderSize    uint32
	Type          uint32
	CertChainSize uint32
	Reserved      uint32
	TicketSize    uint32
	TMDSize       uint32
	DataSize      uint32
	FooterSize    uint32
}

// sections within a WAD file are aligned to this boundary.
const wadAlignment = 0x40

// installed-content ("Is") and boot ("ib") WAD types.
const (
	wadTypeInstalled = 0x49730000
	wadTypeBoot      = 0x69620000
)

// offset of the title id and title version within the TMD.
const (
	tmdTitleIDOffset = 0x18c
	tmdIOSVersOffset = 0x184
)

// WADLoader reads title metadata from a WAD container file.
type WADLoader struct {
	valid        bool
	titleID      uint64
	titleVersion uint64
}

// NewWADLoader opens the named WAD file and reads the title metadata.
func NewWADLoader(filename string) (*WADLoader, error) {
	wad := &WADLoader{}

	data, err := os.ReadFile(filename)
	if err != nil {
		return wad, curated.Errorf("nand: %v", err)
	}

	var hdr wadHeader
	if len(data) < wadAlignment {
		return wad, curated.Errorf("nand: wad: file is too small")
	}

	err = struc.UnpackWithOrder(bytes.NewReader(data[:0x20]), &hdr, binary.BigEndian)
	if err != nil {
		return wad, curated.Errorf("nand: wad: %v", err)
	}

	if hdr.HeaderSize != 0x20 || (hdr.Type != wadTypeInstalled && hdr.Type != wadTypeBoot) {
		return wad, curated.Errorf("nand: wad: not a wad file")
	}

	// sections follow the header in order: certificate chain, ticket,
	// tmd. each section starts on an alignment boundary
	certOffset := align(hdr.HeaderSize)
	ticketOffset := align(certOffset + hdr.CertChainSize)
	tmdOffset := align(ticketOffset + hdr.TicketSize)

	if uint64(tmdOffset)+uint64(hdr.TMDSize) > uint64(len(data)) {
		return wad, curated.Errorf("nand: wad: tmd beyond end of file")
	}
	if hdr.TMDSize < tmdTitleIDOffset+8 {
		return wad, curated.Errorf("nand: wad: tmd is too small")
	}

	tmd := data[tmdOffset : tmdOffset+hdr.TMDSize]
	wad.titleID = binary.BigEndian.Uint64(tmd[tmdTitleIDOffset:])
	wad.titleVersion = binary.BigEndian.Uint64(tmd[tmdIOSVersOffset:])
	wad.valid = true

	return wad, nil
}

func align(v uint32) uint32 {
	return (v + wadAlignment - 1) &^ (wadAlignment - 1)
}

// IsValid implements the ContentLoader interface.
func (wad *WADLoader) IsValid() bool {
	return wad.valid
}

// TitleID implements the ContentLoader interface.
func (wad *WADLoader) TitleID() uint64 {
	return wad.titleID
}

// TitleVersion implements the ContentLoader interface.
func (wad *WADLoader) TitleVersion() uint64 {
	return wad.titleVersion
}
