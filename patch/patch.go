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

package patch

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/resources"
)

// Memory is the narrow memory contract needed to apply a patch.
type Memory interface {
	WriteU8(address uint32, value uint8) error
	WriteU32(address uint32, value uint32) error
}

// the error pattern returned when a patch file cannot be found.
const NotFound = "patch: %s: not found"

// Apply the named patch file to memory. The file is looked for in the
// patches sub-directory of the resources path. The number of pokes
// applied is returned.
func Apply(mem Memory, name string) (int, error) {
	p, err := resources.JoinPath(resources.PatchesDir, name)
	if err != nil {
		return 0, curated.Errorf("patch: %v", err)
	}

	f, err := os.Open(p)
	if err != nil {
		return 0, curated.Errorf(NotFound, name)
	}
	defer f.Close()

	n := 0
	lineCt := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineCt++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return n, curated.Errorf("patch: %s: malformed line %d", name, lineCt)
		}

		address, err := strconv.ParseUint(fields[1], 16, 32)
		if err != nil {
			return n, curated.Errorf("patch: %s: malformed address on line %d", name, lineCt)
		}

		switch fields[0] {
		case "poke8":
			value, err := strconv.ParseUint(fields[2], 16, 8)
			if err != nil {
				return n, curated.Errorf("patch: %s: malformed value on line %d", name, lineCt)
			}
			if err := mem.WriteU8(uint32(address), uint8(value)); err != nil {
				return n, curated.Errorf("patch: %s: %v", name, err)
			}

		case "poke32":
			value, err := strconv.ParseUint(fields[2], 16, 32)
			if err != nil {
				return n, curated.Errorf("patch: %s: malformed value on line %d", name, lineCt)
			}
			if err := mem.WriteU32(uint32(address), uint32(value)); err != nil {
				return n, curated.Errorf("patch: %s: %v", name, err)
			}

		default:
			return n, curated.Errorf("patch: %s: unrecognised poke on line %d", name, lineCt)
		}

		n++
	}

	if err := scanner.Err(); err != nil {
		return n, curated.Errorf("patch: %s: %v", name, err)
	}

	logger.Logf("patch", "%s: %d pokes applied", name, n)

	return n, nil
}
