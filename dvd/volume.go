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
	"os"

	"github.com/gophercube/gophercube/curated"
)

// magic words in the disc header identifying the disc's platform.
const (
	gamecubeMagic       = 0xc2339f3d
	gamecubeMagicOffset = 0x1c
	wiiMagic            = 0x5d1c9ea3
	wiiMagicOffset      = 0x18
)

// Volume is the view of an inserted disc that the boot sequence relies on.
// Implementations own the details of the image container format and, for
// the Wii, partition decryption.
type Volume interface {
	// ReadAt returns length bytes starting at the given disc offset. the
	// decrypt flag selects reads from the decrypted data partition where
	// the implementation supports it.
	ReadAt(offset uint32, length uint32, decrypt bool) ([]byte, error)

	// ReadSwapped returns the big-endian 32bit header field at the given
	// disc offset.
	ReadSwapped(offset uint32) (uint32, error)

	// Platform declared by the disc header. the volume is authoritative
	// about its own platform.
	Platform() Platform

	// GameID is the six character identifier at the start of the disc.
	GameID() string

	// Region encoded in the game id.
	Region() Region
}

// FileVolume is a Volume backed by a raw disc dump (.gcm or .iso file).
// Encrypted Wii partitions are not decrypted; the decrypt flag to ReadAt
// is honoured only in the sense that reads are from the plain image.
type FileVolume struct {
	data     []byte
	platform Platform
	gameID   string
}

// NewFileVolume loads a raw disc dump from the named file.
func NewFileVolume(filename string) (*FileVolume, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("dvd: %v", err)
	}

	if len(data) < 0x0440 {
		return nil, curated.Errorf("dvd: disc image is too small")
	}

	vol := &FileVolume{data: data}
	vol.gameID = string(data[:6])

	switch {
	case binary.BigEndian.Uint32(data[wiiMagicOffset:]) == wiiMagic:
		vol.platform = Wii
	case binary.BigEndian.Uint32(data[gamecubeMagicOffset:]) == gamecubeMagic:
		vol.platform = GameCube
	default:
		return nil, curated.Errorf("dvd: no disc magic word found")
	}

	return vol, nil
}

// ReadAt implements the Volume interface.
func (vol *FileVolume) ReadAt(offset uint32, length uint32, _ bool) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(vol.data)) {
		return nil, curated.Errorf("dvd: read beyond end of disc (%#08x)", offset)
	}

	b := make([]byte, length)
	copy(b, vol.data[offset:end])
	return b, nil
}

// ReadSwapped implements the Volume interface.
func (vol *FileVolume) ReadSwapped(offset uint32) (uint32, error) {
	b, err := vol.ReadAt(offset, 4, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Platform implements the Volume interface.
func (vol *FileVolume) Platform() Platform {
	return vol.platform
}

// GameID implements the Volume interface.
func (vol *FileVolume) GameID() string {
	return vol.gameID
}

// Region implements the Volume interface.
func (vol *FileVolume) Region() Region {
	return regionFromGameID(vol.gameID)
}
