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

package analyst

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/symbols"
)

// signature identifies a known library function by checksum and length.
type signature struct {
	checksum uint32
	length   uint32
	name     string
}

// SignatureDB maps function checksums to the names of known library
// functions.
type SignatureDB struct {
	signatures []signature
}

// Load a signature database from the named file. Each line is
// "checksum length name" with checksum and length in hexadecimal. Blank
// lines and lines starting with '#' are skipped.
func (db *SignatureDB) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("analyst: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return curated.Errorf("analyst: malformed signature line (%s)", line)
		}

		checksum, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil {
			return curated.Errorf("analyst: malformed checksum (%s)", fields[0])
		}

		length, err := strconv.ParseUint(fields[1], 16, 32)
		if err != nil {
			return curated.Errorf("analyst: malformed length (%s)", fields[1])
		}

		db.signatures = append(db.signatures, signature{
			checksum: uint32(checksum),
			length:   uint32(length),
			name:     strings.Join(fields[2:], " "),
		})
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("analyst: %v", err)
	}

	return nil
}

// Len returns the number of signatures in the database.
func (db *SignatureDB) Len() int {
	return len(db.signatures)
}

// Clear removes all signatures from the database.
func (db *SignatureDB) Clear() {
	db.signatures = nil
}

// Apply the database to a symbol table: any symbol whose checksum
// matches a signature takes that signature's name. The number of symbols
// renamed is returned.
func (db *SignatureDB) Apply(mem MemoryReader, tbl *symbols.Table) int {
	n := 0

	// collect first. renaming mutates the table
	var matched []symbols.Symbol

	tbl.ForEach(func(sym symbols.Symbol) {
		for _, sig := range db.signatures {
			if sig.length != sym.Size {
				continue
			}
			checksum, err := Checksum(mem, sym.Address, sig.length)
			if err != nil {
				continue
			}
			if checksum == sig.checksum {
				matched = append(matched, symbols.Symbol{
					Address: sym.Address,
					Size:    sym.Size,
					Name:    sig.name,
				})
				break
			}
		}
	})

	for _, sym := range matched {
		tbl.Add(sym)
		n++
	}

	if n > 0 {
		logger.Logf("analyst", "%d functions identified by signature", n)
	}

	return n
}
