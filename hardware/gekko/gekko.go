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

package gekko

// Special purpose register numbers used during boot.
const (
	SPRHID0 = 1008
	SPRHID4 = 1011

	SPRIBAT0U = 528
	SPRIBAT0L = 529
	SPRIBAT1U = 530
	SPRIBAT1L = 531
	SPRIBAT2U = 532
	SPRIBAT2L = 533
	SPRIBAT3U = 534
	SPRIBAT3L = 535

	SPRDBAT0U = 536
	SPRDBAT0L = 537
	SPRDBAT1U = 538
	SPRDBAT1L = 539
	SPRDBAT2U = 540
	SPRDBAT2L = 541
	SPRDBAT3U = 542
	SPRDBAT3L = 543

	// the second BAT set, present on the successor console's CPU and
	// enabled through the HID4 SBE bit
	SPRIBAT4U = 560
	SPRIBAT4L = 561
	SPRIBAT5U = 562
	SPRIBAT5L = 563
	SPRIBAT6U = 564
	SPRIBAT6L = 565
	SPRIBAT7U = 566
	SPRIBAT7L = 567

	SPRDBAT4U = 568
	SPRDBAT4L = 569
	SPRDBAT5U = 570
	SPRDBAT5L = 571
	SPRDBAT6U = 572
	SPRDBAT6L = 573
	SPRDBAT7U = 574
	SPRDBAT7L = 575
)

// Machine state register bits used during boot.
const (
	MSREE = 0x8000 // external interrupts enabled
	MSRFP = 0x2000 // floating point available
	MSRIR = 0x0020 // instruction address translation
	MSRDR = 0x0010 // data address translation
)

// HID4 bit enabling the second BAT set.
const HID4SBE = 0x02000000

// BATWindow is the memory mapping described by one BAT register pair.
type BATWindow struct {
	// effective (virtual) and physical base of the window
	Effective uint32
	Physical  uint32

	// extent of the window in bytes
	Length uint32
}

// CPU is the register file of the console's PowerPC CPU.
type CPU struct {
	GPR [32]uint32
	SPR [1024]uint32

	MSR uint32
	PC  uint32
	LR  uint32
	CTR uint32

	// mapping windows recomputed by IBATUpdated()/DBATUpdated()
	IBAT []BATWindow
	DBAT []BATWindow
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU() *CPU {
	return &CPU{}
}

// batPairs returns the SPR numbers of the upper register of every BAT pair
// in the given set, respecting the HID4 SBE bit for the second set.
func (cpu *CPU) batPairs(firstSet int, secondSet int) []int {
	pairs := []int{firstSet, firstSet + 2, firstSet + 4, firstSet + 6}
	if cpu.SPR[SPRHID4]&HID4SBE == HID4SBE {
		pairs = append(pairs, secondSet, secondSet+2, secondSet+4, secondSet+6)
	}
	return pairs
}

// batWindows decodes the valid BAT pairs into mapping windows.
func (cpu *CPU) batWindows(pairs []int) []BATWindow {
	win := make([]BATWindow, 0, len(pairs))

	for _, u := range pairs {
		upper := cpu.SPR[u]
		lower := cpu.SPR[u+1]

		// Vs/Vp bits. the boot sequence does not distinguish supervisor
		// and problem state so any valid bit maps the window
		if upper&0x3 == 0 {
			continue
		}

		// block length mask. each bit doubles the window from the base
		// 128KiB
		bl := (upper >> 2) & 0x7ff

		win = append(win, BATWindow{
			Effective: upper & 0xfffe0000,
			Physical:  lower & 0xfffe0000,
			Length:    (bl + 1) * 0x20000,
		})
	}

	return win
}

// IBATUpdated recomputes the instruction mapping windows. Must be called
// after any change to the IBAT registers.
func (cpu *CPU) IBATUpdated() {
	cpu.IBAT = cpu.batWindows(cpu.batPairs(SPRIBAT0U, SPRIBAT4U))
}

// DBATUpdated recomputes the data mapping windows. Must be called after
// any change to the DBAT registers.
func (cpu *CPU) DBATUpdated() {
	cpu.DBAT = cpu.batWindows(cpu.batPairs(SPRDBAT0U, SPRDBAT4U))
}

// Translate returns the physical address for an effective address using
// the data mapping windows. The boolean return value is false if no
// window covers the address.
func (cpu *CPU) Translate(effective uint32) (uint32, bool) {
	for _, w := range cpu.DBAT {
		if effective >= w.Effective && effective-w.Effective < w.Length {
			return w.Physical + (effective - w.Effective), true
		}
	}
	return 0, false
}
