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

import "github.com/gophercube/gophercube/dvd"

// Request describes what to boot and how. A Request is a value type and
// is not modified by the boot sequence; corrections discovered during
// boot (for example, a disc declaring itself to be for the other
// console) are applied to a private copy.
type Request struct {
	// what to boot
	Source Source

	// path to a boot ROM dump. required for the BootROM source, optional
	// everywhere else
	BootROM string

	// prefer the emulated bootstrap even when a boot ROM dump is
	// available
	SkipBIOS bool

	// a debugging session wants to see the guest as it really is, so
	// automatic function analysis and patching is curtailed
	Debugging bool

	// run PAL games with 60Hz timing on the successor console
	PAL60 bool

	// region to assume when the source does not imply one
	Region dvd.Region

	// optional backing volume for executable sources. DefaultISO names a
	// raw disc dump, DVDRoot an ISO9660 data image
	DVDRoot    string
	DefaultISO string
}

// Source is the sealed set of boot source variants. One struct type per
// variant; the orchestrator dispatches on the concrete type.
type Source interface {
	sealedSource()
}

// Disc boots a disc image through the boot ROM or its emulation.
type Disc struct {
	Filename string
}

// Executable boots a standalone DOL or ELF executable directly.
type Executable struct {
	Filename string
}

// InstalledTitle boots a title installed to the console's flash storage.
type InstalledTitle struct {
	Filename string
}

// BootROM boots the bare boot ROM with no disc inserted.
type BootROM struct{}

// RecordedSession prepares nothing: playback of a recorded session owns
// all console state.
type RecordedSession struct {
	Filename string
}

func (Disc) sealedSource()            {}
func (Executable) sealedSource()      {}
func (InstalledTitle) sealedSource()  {}
func (BootROM) sealedSource()         {}
func (RecordedSession) sealedSource() {}
