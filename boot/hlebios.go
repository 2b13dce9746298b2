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
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/logger"
)

// register values left by the boot ROM for the loaded program. the
// emulated bootstrap reproduces them without running any ROM code.
const (
	initialSP   = 0x816ffff0
	initialRTOC = 0x81465cc0
	initialSDA  = 0x81465320
)

// low memory words read by the guest operating system.
const (
	lowmemBootMagic   = 0x20
	lowmemMemSize     = 0x28
	lowmemConsoleType = 0x2c
	lowmemBusSpeed    = 0xf8
	lowmemCPUSpeed    = 0xfc

	bootMagic   = 0x0d15ea5e
	consoleType = 0x10000006
	busSpeed    = 0x09a7ec80
	cpuSpeed    = 0x1cf7c580
)

// IOS title id assumed when an executable is booted with no title
// metadata to say otherwise (IOS58, the version homebrew targets).
const defaultIOSTitle = 0x000000010000003a

// emulatedBootstrap reproduces the register state the boot ROM leaves
// behind, without running any ROM code. Both this and runBootROM() must
// establish the same address translation windows.
//
// The extendedBAT flag additionally maps the successor console's MEM2
// through the second BAT set.
func emulatedBootstrap(con *hardware.Console, extendedBAT bool) {
	cpu := con.CPU

	cpu.MSR = gekko.MSRFP | gekko.MSRIR | gekko.MSRDR

	cpu.GPR[1] = initialSP
	cpu.GPR[2] = initialRTOC
	cpu.GPR[13] = initialSDA

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

	if extendedBAT {
		cpu.SPR[gekko.SPRHID4] |= gekko.HID4SBE

		cpu.SPR[gekko.SPRIBAT4U] = 0x90001fff
		cpu.SPR[gekko.SPRIBAT4L] = 0x10000002
		cpu.SPR[gekko.SPRDBAT4U] = 0x90001fff
		cpu.SPR[gekko.SPRDBAT4L] = 0x10000002
		cpu.SPR[gekko.SPRDBAT5U] = 0xd0001fff
		cpu.SPR[gekko.SPRDBAT5L] = 0x1000002a
	}

	cpu.IBATUpdated()
	cpu.DBATUpdated()
}

// setupGCMemory writes the low memory words the guest operating system
// expects the boot ROM to have left behind.
func setupGCMemory(mem *memory.Memory) error {
	for _, w := range []struct {
		address uint32
		value   uint32
	}{
		{lowmemBootMagic, bootMagic},
		{lowmemMemSize, memory.Mem1Size},
		{lowmemConsoleType, consoleType},
		{lowmemBusSpeed, busSpeed},
		{lowmemCPUSpeed, cpuSpeed},
	} {
		if err := mem.WriteU32(w.address, w.value); err != nil {
			return err
		}
	}
	return nil
}

// layout words for the successor console's extra memory bank.
const (
	mem2UsableStart = 0x90000800
	mem2UsableEnd   = 0x93600000
	ipcBufferStart  = 0x93600000
	ipcBufferEnd    = 0x93620000

	hollywoodRevision = 0x00000011
)

// setupWiiMemory writes the successor console's fixed low memory layout.
// The IOS version comes from the booted title's metadata; iosTitle is
// the full 64bit title id of the requested IOS.
func setupWiiMemory(mem *memory.Memory, iosTitle uint64) error {
	if err := setupGCMemory(mem); err != nil {
		return err
	}

	// the IOS version word carries the version number in the high half
	// and the revision, 9.0 here, in the low half
	iosVersion := uint32(iosTitle)<<16 | 0x0900

	for _, w := range []struct {
		address uint32
		value   uint32
	}{
		{0x3100, memory.Mem1Size}, // physical MEM1 size
		{0x3104, memory.Mem1Size}, // simulated MEM1 size
		{0x3110, 0x80000000 + memory.Mem1Size}, // MEM1 arena end
		{0x3118, memory.Mem2Size}, // physical MEM2 size
		{0x311c, memory.Mem2Size}, // simulated MEM2 size
		{0x3120, mem2UsableEnd},
		{0x3124, mem2UsableStart},
		{0x3128, mem2UsableEnd},
		{0x3130, ipcBufferStart},
		{0x3134, ipcBufferEnd},
		{0x3138, hollywoodRevision},
		{0x3140, iosVersion},
	} {
		if err := mem.WriteU32(w.address, w.value); err != nil {
			return err
		}
	}

	logger.Logf("boot", "IOS version %08x", iosVersion)

	return nil
}
