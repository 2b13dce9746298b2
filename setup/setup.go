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
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/database"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/patch"
	"github.com/gophercube/gophercube/resources"
)

// the name of the setup database file, relative to the resources path.
const setupDBFile = "setupDB"

// setupEntry is the generic entry in the setup database.
type setupEntry interface {
	database.Entry

	// matchGameID returns true if the entry applies to the game with the
	// given ID.
	matchGameID(id string) bool

	// apply the setup action. returns a string describing what was done.
	apply(mem patch.Memory) (string, error)
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(patchEntryType, deserialisePatchEntry)
}

// Apply any setup database entries that match the given game ID. The
// absence of the setup database is not an error.
func Apply(mem patch.Memory, gameID string) error {
	dbPth, err := resources.JoinPath(setupDBFile)
	if err != nil {
		return curated.Errorf("setup: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityReading, initDBSession)
	if err != nil {
		if curated.Is(err, database.NotAvailable) {
			// silently ignore absence of setup database
			return nil
		}
		return curated.Errorf("setup: %v", err)
	}
	defer db.EndSession(false)

	onSelect := func(ent database.Entry) error {
		set, ok := ent.(setupEntry)
		if !ok {
			return curated.Errorf("setup: unexpected entry type (%s)", ent.EntryType())
		}

		if !set.matchGameID(gameID) {
			return nil
		}

		msg, err := set.apply(mem)
		if err != nil {
			return err
		}
		logger.Log("setup", msg)

		return nil
	}

	if _, err := db.SelectAll(onSelect); err != nil {
		return curated.Errorf("setup: %v", err)
	}

	return nil
}
