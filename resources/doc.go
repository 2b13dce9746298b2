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

// Package resources contains functions to prepare paths for gophercube
// resources. Resources are stored in the user's configuration directory
// for the application (or in the "portable" directory if one exists in
// the current working directory).
//
// Well known subdirectories are named by the constants in this package:
// boot ROM images, symbol map files, patch files and signature databases.
package resources
