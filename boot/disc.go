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
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/dvd"
	"github.com/gophercube/gophercube/executable"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/ipl"
	"github.com/gophercube/gophercube/logger"
)

// disc header field locating the main executable.
const dolOffsetField = 0x420

// bootDisc boots the inserted disc, either through the real boot ROM
// program or through the emulated bootstrap. The region is the boot
// region already decided for the console. Returns true if the emulated
// bootstrap ran.
func bootDisc(con *hardware.Console, req Request, region dvd.Region) (bool, error) {
	vol := con.DVD.Volume()
	if vol == nil {
		return false, curated.Errorf("boot: no disc inserted")
	}

	// the real boot ROM program, when we have it and are allowed to use it
	if req.BootROM != "" && !req.SkipBIOS {
		img, err := ipl.Load(req.BootROM)
		if err != nil {
			logger.Logf("boot", "boot ROM unavailable, using emulated bootstrap (%v)", err)
		} else {
			if img.Region != dvd.RegionUnknown && img.Region != region {
				logger.Logf("boot", "%s boot ROM but %s region disc", img.Region, region)
			}
			return false, runBootROM(con, img, ipl.Scrambler{})
		}
	}

	// emulated bootstrap: reproduce what the boot ROM and the disc's
	// apploader would have done
	emulatedBootstrap(con, con.Platform() == dvd.Wii)

	if err := setupConsoleMemory(con, defaultIOSTitle); err != nil {
		return true, err
	}

	if err := loadFST(con.Mem, con.DVD); err != nil {
		return true, err
	}

	shift := uint32(0)
	if vol.Platform() == dvd.Wii {
		shift = 2
	}

	dolOffset, err := vol.ReadSwapped(dolOffsetField)
	if err != nil {
		return true, err
	}
	dolOffset <<= shift

	entry, err := loadDiscExecutable(con, dolOffset)
	if err != nil {
		return true, err
	}
	con.CPU.PC = entry

	logger.Logf("boot", "booting %s from %#08x", vol.GameID(), entry)

	return true, nil
}

// largest main executable we are prepared to read from a disc.
const maxDiscExecutable = 0x01000000

// loadDiscExecutable reads and loads the main executable named by the
// disc header. Returns the entry point.
func loadDiscExecutable(con *hardware.Console, offset uint32) (uint32, error) {
	vol := con.DVD.Volume()

	// the executable's header gives its total extent
	header, err := vol.ReadAt(offset, 0x100, true)
	if err != nil {
		return 0, err
	}

	size, err := executable.DOLExtent(header)
	if err != nil {
		return 0, err
	}
	if size > maxDiscExecutable {
		return 0, curated.Errorf("boot: disc executable is too large (%#x bytes)", size)
	}

	data, err := vol.ReadAt(offset, size, true)
	if err != nil {
		return 0, err
	}

	exe, err := executable.NewDOL(data)
	if err != nil {
		return 0, err
	}

	if err := exe.LoadInto(con.Mem); err != nil {
		return 0, err
	}

	return exe.EntryPoint(), nil
}

// setupConsoleMemory writes the low memory layout appropriate to the
// console generation.
func setupConsoleMemory(con *hardware.Console, iosTitle uint64) error {
	if con.Platform() == dvd.Wii {
		return setupWiiMemory(con.Mem, iosTitle)
	}
	return setupGCMemory(con.Mem)
}
