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

package hardware

import (
	"github.com/gophercube/gophercube/dvd"
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/hardware/vi"
)

// Console is the root of the emulated hardware tree. During boot the
// console is exclusively owned by the boot sequence; afterwards it is
// handed to the running machine.
type Console struct {
	CPU *gekko.CPU
	Mem *memory.Memory
	DVD *dvd.Drive
	VI  *vi.VideoInterface

	platform dvd.Platform
}

// NewConsole is the preferred method of initialisation for the Console
// type.
func NewConsole(platform dvd.Platform) *Console {
	return &Console{
		CPU:      gekko.NewCPU(),
		Mem:      memory.NewMemory(platform == dvd.Wii),
		DVD:      dvd.NewDrive(),
		VI:       vi.NewVideoInterface(),
		platform: platform,
	}
}

// Platform returns the console generation currently being emulated.
func (con *Console) Platform() dvd.Platform {
	return con.platform
}

// SetPlatform changes the console generation. Additional memory is
// allocated when switching to the successor console; nothing is freed
// when switching the other way.
func (con *Console) SetPlatform(platform dvd.Platform) {
	con.platform = platform
	if platform == dvd.Wii {
		con.Mem.EnableMem2()
	}
}
