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

// Package vi is the video interface of the emulated console. Only the
// timing preset matters to the boot sequence: downstream video components
// read it as already-configured context, so the boot orchestrator selects
// it exactly once before any loader runs.
package vi

import (
	"github.com/gophercube/gophercube/logger"
)

// VideoInterface holds the video timing configuration.
type VideoInterface struct {
	ntsc      bool
	presetted bool
}

// NewVideoInterface is the preferred method of initialisation for the
// VideoInterface type.
func NewVideoInterface() *VideoInterface {
	return &VideoInterface{}
}

// Preset the video timing. True selects the 60Hz/525-line NTSC timing,
// false the 50Hz/625-line PAL timing.
func (v *VideoInterface) Preset(ntsc bool) {
	if ntsc {
		logger.Log("vi", "60Hz timing preset")
	} else {
		logger.Log("vi", "50Hz timing preset")
	}
	v.ntsc = ntsc
	v.presetted = true
}

// NTSC returns true if the 60Hz timing preset has been selected.
func (v *VideoInterface) NTSC() bool {
	return v.ntsc
}

// Presetted returns true once Preset() has been called.
func (v *VideoInterface) Presetted() bool {
	return v.presetted
}
