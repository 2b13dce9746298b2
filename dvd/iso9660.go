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

import (
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/kdomanski/iso9660"

	"github.com/gophercube/gophercube/curated"
)

// game id used for ISO9660 backed volumes. homebrew data discs carry no
// console header so a generic id is synthesised.
const isoGameID = "GISO01"

// ISOVolume is a Volume backed by a standard ISO9660 image. It is intended
// for homebrew data discs: a console disc header is synthesised (game id,
// platform magic word, empty file-system table fields) and the payload of
// a nominated file within the ISO filesystem is exposed at a fixed offset.
//
// The synthesised header declares the requested platform, which makes the
// type useful in tests and for homebrew launchers that bring their own
// loader and only need asset access.
type ISOVolume struct {
	header   [0x0440]byte
	payload  []byte
	platform Platform
}

// NewISOVolume opens the named ISO9660 image and exposes the payload file
// (located by name anywhere in the directory tree) through the Volume
// interface. An empty payload name is valid; the volume then consists of
// the synthesised header only.
func NewISOVolume(filename string, payloadName string, platform Platform) (*ISOVolume, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("dvd: iso9660: %v", err)
	}
	defer f.Close()

	img, err := iso9660.OpenImage(f)
	if err != nil {
		return nil, curated.Errorf("dvd: iso9660: %v", err)
	}

	vol := &ISOVolume{platform: platform}

	copy(vol.header[:], isoGameID)
	switch platform {
	case Wii:
		binary.BigEndian.PutUint32(vol.header[wiiMagicOffset:], wiiMagic)
	case GameCube:
		binary.BigEndian.PutUint32(vol.header[gamecubeMagicOffset:], gamecubeMagic)
	}

	if payloadName != "" {
		root, err := img.RootDir()
		if err != nil {
			return nil, curated.Errorf("dvd: iso9660: %v", err)
		}

		pf := isoFind(root, payloadName)
		if pf == nil {
			return nil, curated.Errorf("dvd: iso9660: no such file (%s)", payloadName)
		}

		vol.payload, err = io.ReadAll(pf.Reader())
		if err != nil {
			return nil, curated.Errorf("dvd: iso9660: %v", err)
		}
	}

	return vol, nil
}

// isoFind searches the ISO directory tree for a file with the given name.
func isoFind(entry *iso9660.File, name string) *iso9660.File {
	if entry == nil {
		return nil
	}

	if !entry.IsDir() {
		if strings.EqualFold(entry.Name(), name) {
			return entry
		}
		return nil
	}

	children, err := entry.GetChildren()
	if err != nil {
		return nil
	}

	for _, c := range children {
		if f := isoFind(c, name); f != nil {
			return f
		}
	}

	return nil
}

// payload data begins immediately after the synthesised header.
const isoPayloadOffset = 0x0440

// ReadAt implements the Volume interface.
func (vol *ISOVolume) ReadAt(offset uint32, length uint32, _ bool) ([]byte, error) {
	b := make([]byte, length)

	for i := uint32(0); i < length; i++ {
		o := uint64(offset) + uint64(i)
		switch {
		case o < isoPayloadOffset:
			b[i] = vol.header[o]
		case o-isoPayloadOffset < uint64(len(vol.payload)):
			b[i] = vol.payload[o-isoPayloadOffset]
		default:
			return nil, curated.Errorf("dvd: read beyond end of disc (%#08x)", offset)
		}
	}

	return b, nil
}

// ReadSwapped implements the Volume interface.
func (vol *ISOVolume) ReadSwapped(offset uint32) (uint32, error) {
	b, err := vol.ReadAt(offset, 4, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Platform implements the Volume interface.
func (vol *ISOVolume) Platform() Platform {
	return vol.platform
}

// GameID implements the Volume interface.
func (vol *ISOVolume) GameID() string {
	return isoGameID
}

// Region implements the Volume interface.
func (vol *ISOVolume) Region() Region {
	return RegionUnknown
}
