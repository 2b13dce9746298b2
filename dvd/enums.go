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

package dvd

// Region is the broadcast/market region a disc or boot ROM is intended for.
type Region int

// List of valid Region values.
const (
	RegionUnknown Region = iota
	RegionNTSCU
	RegionNTSCJ
	RegionPAL
)

func (r Region) String() string {
	switch r {
	case RegionNTSCU:
		return "NTSC-U"
	case RegionNTSCJ:
		return "NTSC-J"
	case RegionPAL:
		return "PAL"
	}
	return "unknown"
}

// NTSC returns true if the region uses NTSC timing (60Hz, 525 lines).
func (r Region) NTSC() bool {
	return r == RegionNTSCU || r == RegionNTSCJ
}

// ParseRegion converts a region name, as used on the command line and in
// the configuration file, to a Region value.
func ParseRegion(s string) Region {
	switch s {
	case "NTSC-U", "ntsc-u", "usa":
		return RegionNTSCU
	case "NTSC-J", "ntsc-j", "jap":
		return RegionNTSCJ
	case "PAL", "pal", "eur":
		return RegionPAL
	}
	return RegionUnknown
}

// Platform distinguishes the two console generations the emulation
// supports.
type Platform int

// List of valid Platform values.
const (
	GameCube Platform = iota
	Wii
)

func (p Platform) String() string {
	if p == Wii {
		return "Wii"
	}
	return "GameCube"
}

// regionFromGameID maps the fourth character of a game id to a Region.
func regionFromGameID(id string) Region {
	if len(id) < 4 {
		return RegionUnknown
	}

	switch id[3] {
	case 'E':
		return RegionNTSCU
	case 'J':
		return RegionNTSCJ
	case 'P', 'D', 'F', 'S', 'I', 'X', 'Y', 'U':
		return RegionPAL
	}

	return RegionUnknown
}
