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

package boot_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/boot"
	"github.com/gophercube/gophercube/dvd"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/hle"
	"github.com/gophercube/gophercube/ipl"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/symbols"
	"github.com/gophercube/gophercube/test"
)

// chdir to a temporary directory that acts as a portable resources
// directory. keeps the boot sequence's resource lookups away from the
// real user configuration.
func setupResources(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tmp := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmp, ".gophercube"), 0700); err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return tmp
}

// buildDOL returns a minimal valid DOL image: one text segment of the
// given content loaded at the given address.
func buildDOL(address uint32, entry uint32, text []byte) []byte {
	img := make([]byte, 0x100+len(text))

	binary.BigEndian.PutUint32(img[0x00:], 0x100)              // text 0 offset
	binary.BigEndian.PutUint32(img[0x48:], address)            // text 0 address
	binary.BigEndian.PutUint32(img[0x90:], uint32(len(text)))  // text 0 size
	binary.BigEndian.PutUint32(img[0xd8:], 0x80005000)         // bss address
	binary.BigEndian.PutUint32(img[0xdc:], 0x100)              // bss size
	binary.BigEndian.PutUint32(img[0xe0:], entry)              // entry

	copy(img[0x100:], text)

	return img
}

// buildDisc returns a minimal raw disc dump with the given game id,
// platform magic and main executable.
func buildDisc(gameID string, wii bool, dol []byte) []byte {
	const dolOffset = 0x2440
	const fstOffset = 0x8000
	const fstSize = 0x40

	img := make([]byte, fstOffset+fstSize)
	copy(img, gameID)

	if wii {
		binary.BigEndian.PutUint32(img[0x18:], 0x5d1c9ea3)
		binary.BigEndian.PutUint32(img[0x420:], dolOffset>>2)
		binary.BigEndian.PutUint32(img[0x424:], fstOffset>>2)
		binary.BigEndian.PutUint32(img[0x428:], fstSize>>2)
		binary.BigEndian.PutUint32(img[0x42c:], fstSize>>2)
	} else {
		binary.BigEndian.PutUint32(img[0x1c:], 0xc2339f3d)
		binary.BigEndian.PutUint32(img[0x420:], dolOffset)
		binary.BigEndian.PutUint32(img[0x424:], fstOffset)
		binary.BigEndian.PutUint32(img[0x428:], fstSize)
		binary.BigEndian.PutUint32(img[0x42c:], fstSize)
	}

	copy(img[dolOffset:], dol)

	return img
}

// buildKnownROM returns a ROM image whose checksum is the USA v1.0
// value. the final four bytes exist only to steer the checksum; the rest
// of the image is zero
func buildKnownROM() []byte {
	rom := make([]byte, 0x1b0620)
	copy(rom[len(rom)-4:], []byte{0x25, 0x7b, 0xfa, 0xff})
	return rom
}

func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, data, 0600); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestUnreadableBootROM(t *testing.T) {
	setupResources(t)

	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source:  boot.BootROM{},
		BootROM: filepath.Join(t.TempDir(), "nosuch.bin"),
	})
	test.ExpectFailure(t, err)

	// nothing was written to memory
	v, rdErr := con.Mem.ReadU32(0x01200000)
	test.ExpectSuccess(t, rdErr == nil)
	test.Equate(t, v, 0)
	test.Equate(t, con.CPU.PC, 0)
}

func TestBitAccurateBootstrap(t *testing.T) {
	tmp := setupResources(t)

	// a ROM of the right shape. the checksum is unknown, which is
	// advisory only
	rom := make([]byte, ipl.ScrambledOffset+ipl.ScrambledLength+0x720)
	for i := range rom {
		rom[i] = byte(i)
	}
	romFn := writeFile(t, tmp, "bootrom.bin", rom)

	dol := buildDOL(0x80004000, 0x80004000, make([]byte, 0x20))
	discFn := writeFile(t, tmp, "game.gcm", buildDisc("GTKE01", false, dol))

	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source:  boot.Disc{Filename: discFn},
		BootROM: romFn,
	})
	test.ExpectSuccess(t, err == nil)

	// execution starts inside the first stage bootstrap copy
	test.Equate(t, con.CPU.PC, 0x81200150)

	// register state for the first stage
	test.Equate(t, con.CPU.GPR[3], 0xfff0001f)
	test.Equate(t, con.CPU.GPR[4], 0x00002030)
	test.Equate(t, con.CPU.GPR[5], 0x0000009c)
	test.Equate(t, con.CPU.MSR, 0x00002030)
	test.Equate(t, con.CPU.SPR[gekko.SPRHID0], 0x0011c464)

	// the cached mapping windows have been recomputed
	test.Equate(t, len(con.CPU.IBAT), 2)
	test.Equate(t, len(con.CPU.DBAT), 3)

	// 60Hz timing for an NTSC-U disc
	test.ExpectSuccess(t, con.VI.Presetted())
	test.ExpectSuccess(t, con.VI.NTSC())
}

func TestEmulatedBootstrap(t *testing.T) {
	tmp := setupResources(t)

	text := make([]byte, 0x20)
	binary.BigEndian.PutUint32(text, 0x60000000)
	dol := buildDOL(0x80004000, 0x80004010, text)
	discFn := writeFile(t, tmp, "game.gcm", buildDisc("GTKE01", false, dol))

	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source: boot.Disc{Filename: discFn},
	})
	test.ExpectSuccess(t, err == nil)

	// execution starts at the disc executable's entry point
	test.Equate(t, con.CPU.PC, 0x80004010)

	// register state the boot ROM would have left behind
	test.Equate(t, con.CPU.GPR[1], 0x816ffff0)
	test.Equate(t, con.CPU.GPR[2], 0x81465cc0)
	test.Equate(t, con.CPU.GPR[13], 0x81465320)
	test.Equate(t, con.CPU.MSR, uint32(gekko.MSRFP|gekko.MSRIR|gekko.MSRDR))

	// low memory: boot magic, memory size, game id mirror
	v, err := con.Mem.ReadU32(0x20)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 0x0d15ea5e)

	v, err = con.Mem.ReadU32(0x28)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, 0x01800000)

	id, err := con.Mem.ReadU32(0x3180)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, id, 0x47544b45) // "GTKE"

	// the file system table sits below the arena ceiling
	arena, err := con.Mem.ReadU32(0x34)
	test.ExpectSuccess(t, err == nil)
	test.ExpectSuccess(t, arena <= 0x817fffff-0x40)
	test.Equate(t, arena&0x1f, 0)

	loc, err := con.Mem.ReadU32(0x38)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, loc, arena)
}

func TestWiiExecutable(t *testing.T) {
	tmp := setupResources(t)

	// a data segment in the additional memory bank marks the executable
	// as being for the successor console
	dol := buildDOL(0x90000800, 0x80004000, make([]byte, 0x20))
	binary.BigEndian.PutUint32(dol[0xe0:], 0x80004000)
	dolFn := writeFile(t, tmp, "homebrew.dol", dol)

	con := hardware.NewConsole(dvd.Wii)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source: boot.Executable{Filename: dolFn},
		Region: dvd.RegionNTSCU,
	})
	test.ExpectSuccess(t, err == nil)

	// entry point from the executable header
	test.Equate(t, con.CPU.PC, 0x80004000)

	// external interrupts enabled on the executable path
	test.Equate(t, con.CPU.MSR&gekko.MSREE, uint32(gekko.MSREE))

	// the second BAT set is active
	test.Equate(t, con.CPU.SPR[gekko.SPRHID4]&gekko.HID4SBE, uint32(gekko.HID4SBE))
	test.Equate(t, len(con.CPU.DBAT), 5)

	// with no title metadata the default IOS is requested
	v, err := con.Mem.ReadU32(0x3140)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v>>16, 0x3a)
}

func TestPlatformMismatch(t *testing.T) {
	tmp := setupResources(t)

	dol := buildDOL(0x80004000, 0x80004000, make([]byte, 0x20))

	// a disc for the successor console in a GameCube: the disc wins
	discFn := writeFile(t, tmp, "game.iso", buildDisc("RTKE01", true, dol))

	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source: boot.Disc{Filename: discFn},
	})
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, con.Platform().String(), dvd.Wii.String())

	// an executable only warns: the request wins
	dolFn := writeFile(t, tmp, "homebrew.dol", dol)

	con = hardware.NewConsole(dvd.Wii)
	tbl.Clear()

	err = boot.BootUp(con, &tbl, boot.Request{
		Source: boot.Executable{Filename: dolFn},
		Region: dvd.RegionNTSCU,
	})
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, con.Platform().String(), dvd.Wii.String())
}

func TestRegionMismatch(t *testing.T) {
	tmp := setupResources(t)

	dol := buildDOL(0x80004000, 0x80004000, make([]byte, 0x20))

	// a PAL disc but an NTSC-U region requested: the disc wins, with a
	// warning
	discFn := writeFile(t, tmp, "game.gcm", buildDisc("GTKP01", false, dol))

	logger.Clear()

	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source: boot.Disc{Filename: discFn},
		Region: dvd.RegionNTSCU,
	})
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, con.VI.NTSC(), false)

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("PAL disc but NTSC-U region requested"))

	// no warning when the requested region matches the disc
	logger.Clear()

	con = hardware.NewConsole(dvd.GameCube)
	tbl.Clear()

	err = boot.BootUp(con, &tbl, boot.Request{
		Source: boot.Disc{Filename: discFn},
		Region: dvd.RegionPAL,
	})
	test.ExpectSuccess(t, err == nil)

	w.Reset()
	logger.Write(w)
	test.ExpectFailure(t, w.Contains("region requested"))

	// the warning also fires when no region was requested at all: the
	// disc region is known and differs from the (unknown) request
	logger.Clear()

	con = hardware.NewConsole(dvd.GameCube)
	tbl.Clear()

	err = boot.BootUp(con, &tbl, boot.Request{
		Source: boot.Disc{Filename: discFn},
	})
	test.ExpectSuccess(t, err == nil)

	w.Reset()
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("PAL disc but unknown region requested"))
}

func TestFirmwareRegionMismatch(t *testing.T) {
	tmp := setupResources(t)

	dol := buildDOL(0x80004000, 0x80004000, make([]byte, 0x20))
	romFn := writeFile(t, tmp, "bootrom.bin", buildKnownROM())

	// an NTSC-U boot ROM booting a PAL disc warns but carries on
	discFn := writeFile(t, tmp, "game.gcm", buildDisc("GTKP01", false, dol))

	logger.Clear()

	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source:  boot.Disc{Filename: discFn},
		BootROM: romFn,
	})
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, con.CPU.PC, 0x81200150)

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("identified USA v1.0 boot ROM"))
	test.ExpectSuccess(t, w.Contains("NTSC-U boot ROM but PAL region disc"))

	// no warning when the ROM and disc regions agree
	logger.Clear()

	discFn = writeFile(t, tmp, "game2.gcm", buildDisc("GTKE01", false, dol))

	con = hardware.NewConsole(dvd.GameCube)
	tbl.Clear()

	err = boot.BootUp(con, &tbl, boot.Request{
		Source:  boot.Disc{Filename: discFn},
		BootROM: romFn,
	})
	test.ExpectSuccess(t, err == nil)

	w.Reset()
	logger.Write(w)
	test.ExpectFailure(t, w.Contains("boot ROM but"))
}

func TestBootROMSymbolPatching(t *testing.T) {
	tmp := setupResources(t)

	rom := make([]byte, 0x1b0620)
	for i := range rom {
		rom[i] = byte(i)
	}
	romFn := writeFile(t, tmp, "bootrom.bin", rom)

	// a symbol map keyed by the ROM filename names a hooked function
	mapsDir := filepath.Join(tmp, ".gophercube", "maps")
	if err := os.MkdirAll(mapsDir, 0700); err != nil {
		t.Fatal(err)
	}
	writeFile(t, mapsDir, "bootrom.map", []byte("80003100 20 OSReport\n"))

	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source:  boot.BootROM{},
		BootROM: romFn,
	})
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, con.CPU.PC, 0x81200150)

	// the map was loaded and the named function hooked
	sym, ok := tbl.LookupName("OSReport")
	test.ExpectSuccess(t, ok)

	v, rdErr := con.Mem.ReadU32(sym.Address)
	test.ExpectSuccess(t, rdErr == nil)

	idx, isTrap := hle.IsTrap(v)
	test.ExpectSuccess(t, isTrap)
	test.Equate(t, idx, 0)
}

func TestRecordedSession(t *testing.T) {
	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{
		Source: boot.RecordedSession{Filename: "session.rec"},
	})
	test.ExpectSuccess(t, err == nil)

	// nothing was prepared
	test.Equate(t, con.CPU.PC, 0)
	test.Equate(t, con.VI.Presetted(), false)
}

func TestUnsupportedSource(t *testing.T) {
	con := hardware.NewConsole(dvd.GameCube)
	var tbl symbols.Table

	err := boot.BootUp(con, &tbl, boot.Request{})
	test.ExpectFailure(t, err)
}
