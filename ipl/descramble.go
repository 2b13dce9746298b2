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

// Descrambler reverses the obfuscation applied to the bootstrap portion
// of the boot ROM. It is a capability interface so tests of the boot
// sequence can substitute a stub.
type Descrambler interface {
	Descramble(data []byte)
}

// Scrambler is the standard descrambler. The scrambling is a stream
// cipher driven by three linear feedback shift registers; applying it a
// second time restores the original data.
type Scrambler struct{}

// Descramble implements the Descrambler interface. The data slice is
// modified in place.
func (Scrambler) Descramble(data []byte) {
	acc := uint8(0)
	nacc := 0

	t := uint16(0x2953)
	u := uint16(0xd9c2)
	v := uint16(0x3ff1)

	x := uint8(1)

	for i := 0; i < len(data); {
		t0 := t & 1
		t1 := (t >> 1) & 1
		u0 := u & 1
		u1 := (u >> 1) & 1
		v0 := v & 1

		x ^= uint8(t1 ^ v0)
		x ^= uint8(u0 | u1)
		x ^= uint8((t0 ^ u1 ^ v0) & (t0 ^ u0))

		if t0 == u0 {
			v >>= 1
			if v0 != 0 {
				v ^= 0xb3d0
			}
		}

		if t0 == 0 {
			u >>= 1
			if u0 != 0 {
				u ^= 0xfb10
			}
		}

		t >>= 1
		if t0 != 0 {
			t ^= 0xa740
		}

		nacc++
		acc = 2*acc + x
		if nacc == 8 {
			data[i] ^= acc
			i++
			nacc = 0
		}
	}
}
