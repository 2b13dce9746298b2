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

package resources

import (
	"os"
	"path/filepath"

	"github.com/shibukawa/configdir"
)

// names of the well known resource subdirectories.
const (
	BIOSDir       = "bios"
	MapsDir       = "maps"
	PatchesDir    = "patches"
	SignaturesDir = "signatures"
)

// the presence of this directory in the current working directory overrides
// the user configuration directory. useful for development and for running
// from removable media.
const portablePath = ".gophercube"

// JoinPath prepends the supplied path with an OS specific base path and
// creates all folders necessary to reach the end of the sub-path. It does
// not otherwise touch or create the file named by the final element.
func JoinPath(path ...string) (string, error) {
	b, err := baseDir()
	if err != nil {
		return "", err
	}

	p := filepath.Join(b, filepath.Join(path...))

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

func baseDir() (string, error) {
	if fi, err := os.Stat(portablePath); err == nil && fi.IsDir() {
		return portablePath, nil
	}

	dirs := configdir.New("", "gophercube")
	fldr := dirs.QueryFolders(configdir.Global)
	if len(fldr) == 0 {
		// configdir guarantees at least one global folder on all supported
		// platforms so this is unreachable in practice
		return portablePath, nil
	}

	return fldr[0].Path, nil
}
