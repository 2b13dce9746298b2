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

package ipl

import (
	"hash/crc32"
	"os"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/dvd"
	"github.com/gophercube/gophercube/logger"
)

// layout of the scrambled bootstrap within the ROM.
const (
	// offset of the scrambled region (BS1 followed by BS2)
	ScrambledOffset = 0x100

	// length of the scrambled region
	ScrambledLength = 0x1afe00
)

// CRC32 checksums of known boot ROM dumps.
const (
	USAv10 = 0x6d740ae7
	USAv11 = 0xd5e6feea
	USAv12 = 0x86573808

	// sold in Brazil. same code as USA v1.2 but localised
	BRAv10 = 0x667d0b64

	JAPv10 = 0x6dac1f2a
	JAPv11 = 0xd235e3f9

	PALv10 = 0x4f319f43
	PALv11 = 0xdd8cab7c
	PALv12 = 0xad1b7f16
)

// variant describes one known boot ROM dump.
type variant struct {
	name   string
	region dvd.Region
}

// the fixed table of known dumps. checksums and regions must not change:
// compatibility testing depends on these exact values.
var variants = map[uint32]variant{
	USAv10: {"USA v1.0", dvd.RegionNTSCU},
	USAv11: {"USA v1.1", dvd.RegionNTSCU},
	USAv12: {"USA v1.2", dvd.RegionNTSCU},
	BRAv10: {"BRA v1.0", dvd.RegionNTSCU},
	JAPv10: {"JAP v1.0", dvd.RegionNTSCJ},
	JAPv11: {"JAP v1.1", dvd.RegionNTSCJ},
	PALv10: {"PAL v1.0", dvd.RegionPAL},
	PALv11: {"PAL v1.1", dvd.RegionPAL},
	PALv12: {"PAL v1.2", dvd.RegionPAL},
}

// LookupChecksum returns the name and region of a known boot ROM dump.
// The boolean return value is false for unknown checksums.
func LookupChecksum(checksum uint32) (string, dvd.Region, bool) {
	v, ok := variants[checksum]
	if !ok {
		return "", dvd.RegionUnknown, false
	}
	return v.name, v.region, true
}

// Image is a boot ROM dump read from storage. The image is read once,
// identified and then consumed by the bootstrap; it is not retained once
// boot completes.
type Image struct {
	Data     []byte
	Checksum uint32

	// Name of the known dump, or the empty string
	Name string

	// Region implied by the checksum. RegionUnknown for unknown dumps
	Region dvd.Region
}

// Load reads a boot ROM dump from the named file and identifies it
// against the table of known dumps. An unknown checksum is advisory, not
// an error: a warning is logged and the returned image has an unknown
// region.
func Load(filename string) (*Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("ipl: %v", err)
	}

	if len(data) < ScrambledOffset+ScrambledLength {
		return nil, curated.Errorf("ipl: file is too small to be a boot ROM")
	}

	img := &Image{
		Data:     data,
		Checksum: crc32.ChecksumIEEE(data),
	}

	if v, ok := variants[img.Checksum]; ok {
		img.Name = v.name
		img.Region = v.region
		logger.Logf("ipl", "identified %s boot ROM (%s)", v.name, v.region)
	} else {
		img.Region = dvd.RegionUnknown
		logger.Logf("ipl", "boot ROM with unknown checksum (%08x)", img.Checksum)
	}

	return img, nil
}
