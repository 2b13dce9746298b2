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
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/logger"
)

// payload filename looked for on an ISO9660 data image.
const isoPayloadName = "boot.dol"

// bootExecutable loads a standalone DOL or ELF executable the way a
// homebrew loader would: emulated bootstrap, optional backing volume,
// then the image itself.
func bootExecutable(con *hardware.Console, req Request, exe executable.Executable) error {
	if !exe.IsValid() {
		return curated.Errorf("boot: invalid executable")
	}

	// an executable is not authoritative about its platform. warn but
	// trust the request
	if exe.Platform() != con.Platform() {
		logger.Logf("boot", "executable looks like a %s program but booting as %s",
			exe.Platform(), con.Platform())
	}

	// an optional backing volume gives the executable something to read
	// from the disc interface
	if req.DefaultISO != "" {
		vol, err := dvd.NewFileVolume(req.DefaultISO)
		if err != nil {
			return err
		}
		con.DVD.Insert(vol)
	} else if req.DVDRoot != "" {
		vol, err := dvd.NewISOVolume(req.DVDRoot, isoPayloadName, con.Platform())
		if err != nil {
			return err
		}
		con.DVD.Insert(vol)
	}

	emulatedBootstrap(con, con.Platform() == dvd.Wii)

	// unlike the disc path, external interrupts are enabled: there is no
	// apploader to do it later
	con.CPU.MSR |= gekko.MSREE

	if err := setupConsoleMemory(con, defaultIOSTitle); err != nil {
		return err
	}

	if con.DVD.IsInserted() {
		if err := loadFST(con.Mem, con.DVD); err != nil {
			return err
		}
	}

	if err := exe.LoadInto(con.Mem); err != nil {
		return err
	}
	con.CPU.PC = exe.EntryPoint()

	logger.Logf("boot", "booting executable from %#08x", con.CPU.PC)

	return nil
}
