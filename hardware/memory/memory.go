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

package memory

import (
	"encoding/binary"

	"github.com/gophercube/gophercube/curated"
)

// Size of the two memory banks.
const (
	Mem1Size = 0x01800000
	Mem2Size = 0x04000000
)

// physical base address of MEM2.
const mem2Base = 0x10000000

// Memory is the main memory of the console. MEM2 is allocated only when
// the memory is created for the Wii.
type Memory struct {
	Mem1 []byte
	Mem2 []byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(wii bool) *Memory {
	mem := &Memory{
		Mem1: make([]byte, Mem1Size),
	}
	if wii {
		mem.Mem2 = make([]byte, Mem2Size)
	}
	return mem
}

// EnableMem2 allocates the MEM2 bank if it is not already present. Called
// when the boot sequence corrects the console generation after a disc has
// declared itself to be for the Wii.
func (mem *Memory) EnableMem2() {
	if mem.Mem2 == nil {
		mem.Mem2 = make([]byte, Mem2Size)
	}
}

// bank returns the backing slice and offset for an access of the given
// length at the given address. the top two bits of the address select a
// virtual mirror and are not significant.
func (mem *Memory) bank(address uint32, length uint32) ([]byte, uint32, error) {
	phys := address & 0x3fffffff

	if uint64(phys)+uint64(length) <= Mem1Size {
		return mem.Mem1, phys, nil
	}

	if mem.Mem2 != nil && phys >= mem2Base {
		o := phys - mem2Base
		if uint64(o)+uint64(length) <= Mem2Size {
			return mem.Mem2, o, nil
		}
	}

	return nil, 0, curated.Errorf("memory: access to unmapped address (%#08x)", address)
}

// ReadU8 returns the byte at the given address.
func (mem *Memory) ReadU8(address uint32) (uint8, error) {
	b, o, err := mem.bank(address, 1)
	if err != nil {
		return 0, err
	}
	return b[o], nil
}

// WriteU8 writes a byte to the given address.
func (mem *Memory) WriteU8(address uint32, value uint8) error {
	b, o, err := mem.bank(address, 1)
	if err != nil {
		return err
	}
	b[o] = value
	return nil
}

// ReadU16 returns the big-endian 16bit value at the given address.
func (mem *Memory) ReadU16(address uint32) (uint16, error) {
	b, o, err := mem.bank(address, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[o:]), nil
}

// WriteU16 writes a big-endian 16bit value to the given address.
func (mem *Memory) WriteU16(address uint32, value uint16) error {
	b, o, err := mem.bank(address, 2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b[o:], value)
	return nil
}

// ReadU32 returns the big-endian 32bit value at the given address.
func (mem *Memory) ReadU32(address uint32) (uint32, error) {
	b, o, err := mem.bank(address, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[o:]), nil
}

// WriteU32 writes a big-endian 32bit value to the given address.
func (mem *Memory) WriteU32(address uint32, value uint32) error {
	b, o, err := mem.bank(address, 4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b[o:], value)
	return nil
}

// ReadU64 returns the big-endian 64bit value at the given address.
func (mem *Memory) ReadU64(address uint32) (uint64, error) {
	b, o, err := mem.bank(address, 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[o:]), nil
}

// WriteU64 writes a big-endian 64bit value to the given address.
func (mem *Memory) WriteU64(address uint32, value uint64) error {
	b, o, err := mem.bank(address, 8)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b[o:], value)
	return nil
}

// CopyToMain copies a block of data to the given address.
func (mem *Memory) CopyToMain(address uint32, data []byte) error {
	b, o, err := mem.bank(address, uint32(len(data)))
	if err != nil {
		return err
	}
	copy(b[o:], data)
	return nil
}

// Fill writes the given byte value over a block of memory. Used for BSS
// clearing by the executable loaders.
func (mem *Memory) Fill(address uint32, value uint8, length uint32) error {
	b, o, err := mem.bank(address, length)
	if err != nil {
		return err
	}
	for i := uint32(0); i < length; i++ {
		b[o+i] = value
	}
	return nil
}
