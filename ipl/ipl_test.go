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

package ipl_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/dvd"
	"github.com/gophercube/gophercube/ipl"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/test"
)

func TestChecksumTable(t *testing.T) {
	// every known dump maps to its documented region
	table := map[uint32]dvd.Region{
		ipl.USAv10: dvd.RegionNTSCU,
		ipl.USAv11: dvd.RegionNTSCU,
		ipl.USAv12: dvd.RegionNTSCU,
		ipl.BRAv10: dvd.RegionNTSCU,
		ipl.JAPv10: dvd.RegionNTSCJ,
		ipl.JAPv11: dvd.RegionNTSCJ,
		ipl.PALv10: dvd.RegionPAL,
		ipl.PALv11: dvd.RegionPAL,
		ipl.PALv12: dvd.RegionPAL,
	}

	for checksum, region := range table {
		name, r, ok := ipl.LookupChecksum(checksum)
		test.ExpectSuccess(t, ok)
		test.ExpectSuccess(t, name != "")
		test.Equate(t, r.String(), region.String())
	}

	// any other checksum is unknown
	_, r, ok := ipl.LookupChecksum(0xdeadbeef)
	test.ExpectFailure(t, ok)
	test.Equate(t, r.String(), "unknown")
}

func TestLoadUnknownDump(t *testing.T) {
	logger.Clear()

	// a zero filled file of the right size has a checksum that is not in
	// the table
	fn := filepath.Join(t.TempDir(), "ipl.bin")
	if err := os.WriteFile(fn, make([]byte, ipl.ScrambledOffset+ipl.ScrambledLength), 0600); err != nil {
		t.Fatal(err)
	}

	img, err := ipl.Load(fn)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, img.Region.String(), "unknown")
	test.Equate(t, img.Name, "")

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("unknown checksum"))
}

func TestLoadFailures(t *testing.T) {
	// missing file
	_, err := ipl.Load(filepath.Join(t.TempDir(), "no-such-file"))
	test.ExpectFailure(t, err)

	// too small to contain the scrambled bootstrap
	fn := filepath.Join(t.TempDir(), "ipl.bin")
	if err := os.WriteFile(fn, make([]byte, 0x1000), 0600); err != nil {
		t.Fatal(err)
	}
	_, err = ipl.Load(fn)
	test.ExpectFailure(t, err)
}

func TestDescramblerInvolution(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	data := make([]byte, 0x800)
	rnd.Read(data)

	reference := append([]byte(nil), data...)

	var s ipl.Scrambler
	s.Descramble(data)

	// scrambling changes the data
	test.ExpectFailure(t, string(data) == string(reference))

	// applying the transform twice restores the original
	s.Descramble(data)
	test.Equate(t, string(data), string(reference))
}
