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

package setup

import (
	"fmt"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/database"
	"github.com/gophercube/gophercube/patch"
)

const patchEntryType = "patch"

const (
	patchFieldGameID int = iota
	patchFieldPatchFile
	patchFieldNotes
	numPatchFields
)

// Patch applies a named patch file to main memory after the game has been
// booted.
type Patch struct {
	gameID    string
	patchFile string
	notes     string
}

func deserialisePatchEntry(fields database.SerialisedEntry) (database.Entry, error) {
	set := &Patch{}

	// basic sanity check
	if len(fields) > numPatchFields {
		return nil, curated.Errorf("patch: too many fields in patch entry")
	}
	if len(fields) < numPatchFields {
		return nil, curated.Errorf("patch: too few fields in patch entry")
	}

	set.gameID = fields[patchFieldGameID]
	set.patchFile = fields[patchFieldPatchFile]
	set.notes = fields[patchFieldNotes]

	return set, nil
}

// EntryType implements the database.Entry interface.
func (set Patch) EntryType() string {
	return patchEntryType
}

// String implements the database.Entry interface.
func (set Patch) String() string {
	return fmt.Sprintf("%s %s %s", set.gameID, set.patchFile, set.notes)
}

// Serialise implements the database.Entry interface.
func (set *Patch) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		set.gameID,
		set.patchFile,
		set.notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (set Patch) CleanUp() error {
	// no cleanup necessary
	return nil
}

// matchGameID implements the setupEntry interface.
func (set Patch) matchGameID(id string) bool {
	return set.gameID == id
}

// apply implements the setupEntry interface.
func (set Patch) apply(mem patch.Memory) (string, error) {
	if _, err := patch.Apply(mem, set.patchFile); err != nil {
		return "", err
	}
	return fmt.Sprintf("patching %s: %s", set.gameID, set.notes), nil
}
