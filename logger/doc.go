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

// Package logger is the central log for the application. There is no need
// for more than one log so the package level functions work with a single
// central logger.
//
// Log entries are tagged with the subsystem that created them. Repeated
// entries are coalesced rather than appended. Advisory conditions during the
// boot sequence (unknown boot ROM checksum, region mismatch, wrong console
// mode) are reported through this package rather than returned as errors.
package logger
