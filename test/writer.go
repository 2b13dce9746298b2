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

package test

import (
	"strings"
)

// Writer is an implementation of io.Writer that accumulates everything
// written to it. Useful for capturing log output during tests.
type Writer struct {
	buffer strings.Builder
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.buffer.Write(p)
}

func (w *Writer) String() string {
	return w.buffer.String()
}

// Reset empties the writer's buffer.
func (w *Writer) Reset() {
	w.buffer.Reset()
}

// Contains returns true if the accumulated output contains the substring s.
func (w *Writer) Contains(s string) bool {
	return strings.Contains(w.buffer.String(), s)
}
