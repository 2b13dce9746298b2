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
	"os"

	"github.com/gophercube/gophercube/analyst"
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/dvd"
	"github.com/gophercube/gophercube/executable"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/hle"
	"github.com/gophercube/gophercube/ipl"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/resources"
	"github.com/gophercube/gophercube/setup"
	"github.com/gophercube/gophercube/symbols"
)

// extent of main memory scanned for functions after an emulated boot.
const (
	scanLo = 0x80004000
	scanHi = 0x811fffff
)

// BootUp prepares the console for execution according to the boot
// request. On failure the console is in an undefined state and should be
// discarded.
func BootUp(con *hardware.Console, tbl *symbols.Table, req Request) error {
	// playback of a recorded session restores all console state itself
	if _, ok := req.Source.(RecordedSession); ok {
		logger.Log("boot", "recorded session: nothing to prepare")
		return nil
	}

	tbl.Clear()

	// resolve what we are booting before anything is written to memory.
	// the disc volume and the boot ROM image are opened here because they
	// are authoritative about region and platform
	var vol dvd.Volume
	var img *ipl.Image

	region := req.Region

	switch src := req.Source.(type) {
	case Disc:
		var err error
		vol, err = dvd.NewFileVolume(src.Filename)
		if err != nil {
			return err
		}

		// the volume is authoritative about the console generation
		if vol.Platform() != con.Platform() {
			logger.Logf("boot", "%s disc in a %s console: correcting console",
				vol.Platform(), con.Platform())
			con.SetPlatform(vol.Platform())
		}

		if vol.Region() != dvd.RegionUnknown && vol.Region() != region {
			logger.Logf("boot", "%s disc but %s region requested: using the disc region",
				vol.Region(), region)
		}
		region = vol.Region()

	case BootROM:
		var err error
		img, err = ipl.Load(req.BootROM)
		if err != nil {
			return err
		}
		if img.Region != dvd.RegionUnknown && img.Region != region {
			logger.Logf("boot", "%s boot ROM but %s region requested: using the ROM region",
				img.Region, region)
		}
		region = img.Region

	case InstalledTitle:
		// installed titles only exist on the successor console
		if con.Platform() != dvd.Wii {
			con.SetPlatform(dvd.Wii)
		}

	case Executable:
		// region comes from the request

	default:
		return curated.Errorf("boot: unsupported boot source (%T)", req.Source)
	}

	if region == dvd.RegionUnknown {
		logger.Log("boot", "no region implied by the boot source: assuming NTSC-U")
		region = dvd.RegionNTSCU
	}

	// video timing is presented to the loaded program as established
	// context so it is decided exactly once, before any loader runs
	con.VI.Preset(region.NTSC() || (con.Platform() == dvd.Wii && req.PAL60))

	hleRan := false

	switch src := req.Source.(type) {
	case Disc:
		con.DVD.Insert(vol)

		var err error
		hleRan, err = bootDisc(con, req, region)
		if err != nil {
			return err
		}

	case Executable:
		exe, err := executable.Open(src.Filename)
		if err != nil {
			return err
		}
		if err := bootExecutable(con, req, exe); err != nil {
			return err
		}
		hleRan = true

	case InstalledTitle:
		ldr, err := nandLoader(src.Filename)
		if err != nil {
			return err
		}
		if err := bootInstalledTitle(con, ldr); err != nil {
			return err
		}
		hleRan = true

	case BootROM:
		if err := runBootROM(con, img, ipl.Scrambler{}); err != nil {
			return err
		}
	}

	return postLoadPatching(con, tbl, req, hleRan)
}

// postLoadPatching applies everything that modifies the loaded program:
// setup database entries, function analysis, symbol maps and native
// function hooks.
func postLoadPatching(con *hardware.Console, tbl *symbols.Table, req Request, hleRan bool) error {
	key := titleKey(con, req)

	if key != "" {
		if err := setup.Apply(con.Mem, key); err != nil {
			return err
		}
	}

	// automatic function discovery interferes with debugging sessions
	// and is pointless when the real boot ROM is about to overwrite
	// everything anyway
	if hleRan && !req.Debugging {
		n := analyst.FindFunctions(con.Mem, scanLo, scanHi, tbl)
		if n > 0 {
			logger.Logf("boot", "%d functions discovered", n)
			applySignatures(con, tbl)
		}
	}

	loadMapFile(tbl, key)

	hle.PatchFunctions(con.Mem, tbl)
	hle.PatchFixedFunctions(con.Mem)

	return nil
}

// name of the signature database in the signatures resources directory.
const signaturesFile = "default.sig"

// applySignatures names discovered functions using the signature
// database. Absence of the database is not an error.
func applySignatures(con *hardware.Console, tbl *symbols.Table) {
	p, err := resources.JoinPath(resources.SignaturesDir, signaturesFile)
	if err != nil {
		return
	}

	if _, err := os.Stat(p); err != nil {
		return
	}

	var db analyst.SignatureDB
	if err := db.Load(p); err != nil {
		logger.Logf("boot", "signature database unusable (%v)", err)
		return
	}

	db.Apply(con.Mem, tbl)
}
