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
	"path/filepath"
	"strings"

	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/nand"
	"github.com/gophercube/gophercube/resources"
	"github.com/gophercube/gophercube/symbols"
)

// titleKey derives the string used to key per-title resource files: the
// symbol map in the maps directory and entries in the setup database.
//
// Installed titles use the canonical title id form, executables and boot
// ROM dumps their filename without extension, and everything else the
// disc game id.
func titleKey(con *hardware.Console, req Request) string {
	switch src := req.Source.(type) {
	case InstalledTitle:
		if ldr, err := nand.NewWADLoader(src.Filename); err == nil && ldr.IsValid() {
			return nand.FormatTitleID(ldr.TitleID())
		}
		return ""

	case Executable:
		base := filepath.Base(src.Filename)
		return strings.TrimSuffix(base, filepath.Ext(base))

	case BootROM:
		if req.BootROM == "" {
			return ""
		}
		base := filepath.Base(req.BootROM)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}

	if vol := con.DVD.Volume(); vol != nil {
		return vol.GameID()
	}

	return ""
}

// loadMapFile merges the title's symbol map, if one exists in the maps
// resources directory, into the symbol table. Absence of a map file is
// not an error.
func loadMapFile(tbl *symbols.Table, key string) {
	if key == "" {
		return
	}

	p, err := resources.JoinPath(resources.MapsDir, key+".map")
	if err != nil {
		return
	}

	if _, err := os.Stat(p); err != nil {
		return
	}

	if err := tbl.LoadMap(p); err != nil {
		logger.Logf("boot", "map file unusable (%v)", err)
		return
	}

	logger.Logf("boot", "loaded symbol map for %s (%d symbols)", key, tbl.Len())
}
