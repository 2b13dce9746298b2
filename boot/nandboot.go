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
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/nand"
)

// nandLoader opens the container format of an installed title. Only WAD
// containers are understood at the moment.
func nandLoader(filename string) (nand.ContentLoader, error) {
	return nand.NewWADLoader(filename)
}

// bootInstalledTitle prepares the console for a title installed to flash
// storage. The title's code is loaded by the system software emulation;
// boot is responsible for memory layout and for requesting the IOS the
// title's metadata names.
func bootInstalledTitle(con *hardware.Console, ldr nand.ContentLoader) error {
	if !ldr.IsValid() {
		return curated.Errorf("boot: invalid title container")
	}

	emulatedBootstrap(con, true)

	if err := setupWiiMemory(con.Mem, ldr.TitleVersion()); err != nil {
		return err
	}

	logger.Logf("boot", "booting installed title %s", nand.FormatTitleID(ldr.TitleID()))

	return nil
}
