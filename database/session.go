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

package database

import (
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gophercube/gophercube/curated"
)

// Activity describes the general purpose of the database session.
type Activity int

// List of valid activities.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// the error pattern returned when the database file cannot be opened.
const NotAvailable = "database: not available (%s)"

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries map[int]Entry

	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new database session. The init function
// is called once the file has been successfully opened but before any
// entries have been read.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	var err error
	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		return nil, curated.Errorf(NotAvailable, path)
	}

	// closing of db.dbfile requires a call to EndSession()

	if err := init(db); err != nil {
		return nil, err
	}

	if err := db.readDBFile(); err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Changes made during the session are
// written to the database file if commitChanges is true (and the session
// activity allows it).
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return curated.Errorf("database: session already ended")
	}

	if commitChanges {
		if db.activity == ActivityReading {
			return curated.Errorf("database: cannot commit to a read-only session")
		}

		if err := db.dbfile.Truncate(0); err != nil {
			return curated.Errorf("database: %v", err)
		}
		if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
			return curated.Errorf("database: %v", err)
		}

		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf("database: %v", err)
			}

			s := strings.Builder{}
			s.WriteString(recordHeader(key, ent.EntryType()))
			for i := 0; i < len(ser); i++ {
				s.WriteString(fieldSep)
				s.WriteString(ser[i])
			}
			s.WriteString(entrySep)

			if _, err := db.dbfile.WriteString(s.String()); err != nil {
				return curated.Errorf("database: %v", err)
			}
		}
	}

	err := db.dbfile.Close()
	db.dbfile = nil
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) readDBFile() error {
	// clobbers the contents of db.entries
	db.entries = make(map[int]Entry, len(db.entries))

	// make sure we're at the beginning of the file
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	lines := strings.Split(string(buffer), entrySep)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) == 0 {
			continue
		}

		fields := strings.SplitN(line, fieldSep, numLeaderFields+1)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: malformed entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%d) at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s)", fields[leaderFieldID])
		}

		var ser SerialisedEntry
		if len(fields) > numLeaderFields {
			ser = strings.Split(fields[numLeaderFields], fieldSep)
		}

		ent, err := des(ser)
		if err != nil {
			return err
		}

		db.entries[key] = ent
	}

	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}
