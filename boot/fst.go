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

package boot

import (
	"github.com/gophercube/gophercube/dvd"
	"github.com/gophercube/gophercube/hardware/memory"
)

// disc header fields locating the file system table.
const (
	fstOffsetField  = 0x424
	fstSizeField    = 0x428
	fstMaxSizeField = 0x42c
)

// low memory words describing the file system table and the arena.
const (
	lowmemArenaHigh   = 0x34
	lowmemFSTLocation = 0x38
	lowmemFSTMaxSize  = 0x3c

	// game id mirror written alongside the disc header copy
	lowmemGameID = 0x3180
)

// top of the region the file system table is copied below.
const arenaCeiling = 0x817fffff

// loadFST copies the disc's file system table to the top of memory and
// publishes its location through low memory, mirroring what the boot ROM
// apploader does. The arena ceiling is lowered to sit just below the
// table.
//
// Discs for the successor console store the header fields shifted right
// by two.
func loadFST(mem *memory.Memory, drv *dvd.Drive) error {
	vol := drv.Volume()

	shift := uint32(0)
	if vol.Platform() == dvd.Wii {
		shift = 2
	}

	fstOffset, err := vol.ReadSwapped(fstOffsetField)
	if err != nil {
		return err
	}
	fstSize, err := vol.ReadSwapped(fstSizeField)
	if err != nil {
		return err
	}
	maxSize, err := vol.ReadSwapped(fstMaxSizeField)
	if err != nil {
		return err
	}

	fstOffset <<= shift
	fstSize <<= shift
	maxSize <<= shift

	// copy the disc header and mirror the game id
	header, err := vol.ReadAt(0, 0x20, false)
	if err != nil {
		return err
	}
	if err := mem.CopyToMain(0, header); err != nil {
		return err
	}
	if err := mem.CopyToMain(lowmemGameID, header[:4]); err != nil {
		return err
	}

	// the table sits at the top of memory and the arena ends below it
	arena := (arenaCeiling - maxSize) &^ 0x1f

	if err := mem.WriteU32(lowmemArenaHigh, arena); err != nil {
		return err
	}

	if err := drv.Read(mem, fstOffset, arena, fstSize, true); err != nil {
		return err
	}

	if err := mem.WriteU32(lowmemFSTLocation, arena); err != nil {
		return err
	}
	if err := mem.WriteU32(lowmemFSTMaxSize, maxSize); err != nil {
		return err
	}

	return nil
}
