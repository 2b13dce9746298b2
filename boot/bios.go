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
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/ipl"
	"github.com/gophercube/gophercube/logger"
)

// layout of the bootstrap within the ROM and in physical memory. the
// first stage (BS1) runs from the top of the ROM copy; it in turn
// launches the second stage (BS2).
const (
	bs1Offset  = 0x100
	bs1Length  = 0x700
	bs1Address = 0x01200000

	bs2Offset  = 0x820
	bs2Length  = ipl.ScrambledLength
	bs2Address = 0x01300000
)

// where execution starts once the bootstrap is in place. a fixed offset
// into the BS1 copy rather than the true reset vector: the preceding
// ROM code only sets up state that is already established here.
const bs1Entry = 0x81200150

// runBootROM performs the bit-accurate bootstrap: the descrambled boot
// ROM program is copied into memory and executed from its entry point.
// The ROM's own code initialises the remaining hardware and loads any
// inserted disc.
func runBootROM(con *hardware.Console, img *ipl.Image, desc ipl.Descrambler) error {
	if len(img.Data) < bs2Offset+bs2Length {
		return curated.Errorf("boot: boot ROM is too small (%d bytes)", len(img.Data))
	}

	desc.Descramble(img.Data[ipl.ScrambledOffset : ipl.ScrambledOffset+ipl.ScrambledLength])

	if err := con.Mem.CopyToMain(bs1Address, img.Data[bs1Offset:bs1Offset+bs1Length]); err != nil {
		return err
	}
	if err := con.Mem.CopyToMain(bs2Address, img.Data[bs2Offset:bs2Offset+bs2Length]); err != nil {
		return err
	}

	cpu := con.CPU

	// register state at the point BS1 takes over
	cpu.GPR[3] = 0xfff0001f
	cpu.GPR[4] = 0x00002030
	cpu.GPR[5] = 0x0000009c

	cpu.MSR = 0x00002030
	cpu.SPR[gekko.SPRHID0] = 0x0011c464

	cpu.SPR[gekko.SPRIBAT0U] = 0x80001fff
	cpu.SPR[gekko.SPRIBAT0L] = 0x00000002
	cpu.SPR[gekko.SPRIBAT3U] = 0xfff0001f
	cpu.SPR[gekko.SPRIBAT3L] = 0xfff00001
	cpu.SPR[gekko.SPRDBAT0U] = 0x80001fff
	cpu.SPR[gekko.SPRDBAT0L] = 0x00000002
	cpu.SPR[gekko.SPRDBAT1U] = 0xc0001fff
	cpu.SPR[gekko.SPRDBAT1L] = 0x0000002a
	cpu.SPR[gekko.SPRDBAT3U] = 0xfff0001f
	cpu.SPR[gekko.SPRDBAT3L] = 0xfff00001
	cpu.IBATUpdated()
	cpu.DBATUpdated()

	cpu.PC = bs1Entry

	logger.Logf("boot", "running boot ROM from %#08x", cpu.PC)

	return nil
}
