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

package gekko_test

import (
	"testing"

	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/test"
)

func TestBATDecoding(t *testing.T) {
	cpu := gekko.NewCPU()

	// the standard 256MiB window over the start of memory
	cpu.SPR[gekko.SPRDBAT0U] = 0x80001fff
	cpu.SPR[gekko.SPRDBAT0L] = 0x00000002
	cpu.DBATUpdated()

	test.Equate(t, len(cpu.DBAT), 1)
	test.Equate(t, cpu.DBAT[0].Effective, 0x80000000)
	test.Equate(t, cpu.DBAT[0].Physical, 0x00000000)
	test.Equate(t, cpu.DBAT[0].Length, 0x10000000)

	p, ok := cpu.Translate(0x80003180)
	test.ExpectSuccess(t, ok)
	test.Equate(t, p, 0x00003180)

	_, ok = cpu.Translate(0x90000000)
	test.ExpectFailure(t, ok)
}

func TestSecondBATSet(t *testing.T) {
	cpu := gekko.NewCPU()

	cpu.SPR[gekko.SPRDBAT0U] = 0x80001fff
	cpu.SPR[gekko.SPRDBAT0L] = 0x00000002
	cpu.SPR[gekko.SPRDBAT4U] = 0x90001fff
	cpu.SPR[gekko.SPRDBAT4L] = 0x10000002
	cpu.DBATUpdated()

	// second set is ignored until HID4 SBE is set
	test.Equate(t, len(cpu.DBAT), 1)

	cpu.SPR[gekko.SPRHID4] |= gekko.HID4SBE
	cpu.DBATUpdated()
	test.Equate(t, len(cpu.DBAT), 2)

	p, ok := cpu.Translate(0x90000100)
	test.ExpectSuccess(t, ok)
	test.Equate(t, p, 0x10000100)
}

func TestInvalidBATIgnored(t *testing.T) {
	cpu := gekko.NewCPU()

	// valid bits clear. no window
	cpu.SPR[gekko.SPRIBAT0U] = 0x80001ffc
	cpu.SPR[gekko.SPRIBAT0L] = 0x00000002
	cpu.IBATUpdated()
	test.Equate(t, len(cpu.IBAT), 0)
}
