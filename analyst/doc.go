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

// Package analyst recognises functions in loaded guest code.
//
// FindFunctions() walks a code range looking for the standard PowerPC
// function prologue and records anonymous symbols for what it finds. A
// SignatureDB maps function checksums to names; applying one to a symbol
// table turns anonymous symbols into named library functions, which the
// hle package can then patch.
package analyst
