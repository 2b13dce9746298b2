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

package dvd

import (
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/logger"
)

// MemoryWriter is the narrow memory contract needed by the Read function.
// It is satisfied by the memory package's Memory type.
type MemoryWriter interface {
	CopyToMain(address uint32, data []byte) error
}

// Drive is the optical disc drive. It holds at most one inserted volume.
type Drive struct {
	volume Volume
}

// NewDrive is the preferred method of initialisation for the Drive type.
func NewDrive() *Drive {
	return &Drive{}
}

// Insert a volume into the drive, replacing any previous volume.
func (drv *Drive) Insert(vol Volume) {
	if vol != nil {
		logger.Logf("dvd", "disc inserted [%s] (%s)", vol.GameID(), vol.Platform())
	}
	drv.volume = vol
}

// Eject the inserted volume, if any.
func (drv *Drive) Eject() {
	drv.volume = nil
}

// IsInserted returns true if a volume is in the drive.
func (drv *Drive) IsInserted() bool {
	return drv.volume != nil
}

// Volume returns the inserted volume or nil.
func (drv *Drive) Volume() Volume {
	return drv.volume
}

// Read copies length bytes from the inserted disc, starting at the given
// disc offset, to the given main memory address.
func (drv *Drive) Read(mem MemoryWriter, offset uint32, address uint32, length uint32, decrypt bool) error {
	if drv.volume == nil {
		return curated.Errorf("dvd: no disc inserted")
	}

	b, err := drv.volume.ReadAt(offset, length, decrypt)
	if err != nil {
		return curated.Errorf("dvd: %v", err)
	}

	return mem.CopyToMain(address, b)
}
