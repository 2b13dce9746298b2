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

package symbols

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/logger"
)

// Symbol is a named address range in guest memory.
type Symbol struct {
	Address uint32
	Size    uint32
	Name    string
}

// Table is the collection of known symbols. The zero value is an empty,
// usable table.
type Table struct {
	byAddress map[uint32]int
	byName    map[string]int
	symbols   []Symbol
}

// Clear removes all symbols from the table.
func (tbl *Table) Clear() {
	tbl.byAddress = nil
	tbl.byName = nil
	tbl.symbols = nil
}

// Len returns the number of symbols in the table.
func (tbl *Table) Len() int {
	return len(tbl.symbols)
}

// Add a symbol to the table. A symbol at an address already in the table
// replaces the previous symbol at that address.
func (tbl *Table) Add(sym Symbol) {
	if tbl.byAddress == nil {
		tbl.byAddress = make(map[uint32]int)
		tbl.byName = make(map[string]int)
	}

	if i, ok := tbl.byAddress[sym.Address]; ok {
		delete(tbl.byName, tbl.symbols[i].Name)
		tbl.symbols[i] = sym
		tbl.byName[sym.Name] = i
		return
	}

	tbl.symbols = append(tbl.symbols, sym)
	tbl.byAddress[sym.Address] = len(tbl.symbols) - 1
	tbl.byName[sym.Name] = len(tbl.symbols) - 1
}

// LookupName returns the symbol with the given name.
func (tbl *Table) LookupName(name string) (Symbol, bool) {
	i, ok := tbl.byName[name]
	if !ok {
		return Symbol{}, false
	}
	return tbl.symbols[i], true
}

// LookupAddress returns the symbol containing the given address.
func (tbl *Table) LookupAddress(address uint32) (Symbol, bool) {
	for _, sym := range tbl.symbols {
		if address >= sym.Address && address-sym.Address < sym.Size {
			return sym, true
		}
	}
	return Symbol{}, false
}

// ForEach calls the supplied function for every symbol in the table, in
// address order.
func (tbl *Table) ForEach(f func(Symbol)) {
	sorted := append([]Symbol(nil), tbl.symbols...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Address < sorted[j].Address })
	for _, sym := range sorted {
		f(sym)
	}
}

// LoadMap reads symbols from a map file. Each line is "address size name"
// with address and size in hexadecimal. Blank lines and lines starting
// with '#' are skipped.
func (tbl *Table) LoadMap(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("symbols: %v", err)
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return curated.Errorf("symbols: malformed map line (%s)", line)
		}

		address, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil {
			return curated.Errorf("symbols: malformed address (%s)", fields[0])
		}

		size, err := strconv.ParseUint(fields[1], 16, 32)
		if err != nil {
			return curated.Errorf("symbols: malformed size (%s)", fields[1])
		}

		tbl.Add(Symbol{
			Address: uint32(address),
			Size:    uint32(size),
			Name:    strings.Join(fields[2:], " "),
		})
		n++
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("symbols: %v", err)
	}

	logger.Logf("symbols", "%d symbols loaded from %s", n, filename)

	return nil
}

// WriteMap writes the table in the map file format.
func (tbl *Table) WriteMap(output io.Writer) error {
	var err error
	tbl.ForEach(func(sym Symbol) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(output, "%08x %08x %s\n", sym.Address, sym.Size, sym.Name)
	})
	return err
}
