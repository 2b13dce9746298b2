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

package curated_test

import (
	"testing"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/test"
)

const testPattern = "test: %v"

func TestIsAndHas(t *testing.T) {
	inner := curated.Errorf("dvd: no disc inserted")
	outer := curated.Errorf(testPattern, inner)

	test.ExpectSuccess(t, curated.IsAny(outer))
	test.ExpectSuccess(t, curated.Is(outer, testPattern))
	test.ExpectFailure(t, curated.Is(outer, "dvd: no disc inserted"))

	// Has() walks the wrapped chain
	test.ExpectSuccess(t, curated.Has(outer, "dvd: no disc inserted"))
	test.ExpectFailure(t, curated.Has(outer, "not in the chain"))

	// nil errors are never curated
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("boot: %v", "file not found")
	outer := curated.Errorf("boot: %v", inner)
	test.Equate(t, outer.Error(), "boot: file not found")
}
