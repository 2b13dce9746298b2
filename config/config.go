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

package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/resources"
)

// the name of the configuration file, relative to the resources path.
const configFile = "gophercube.yaml"

// BootROMs names the boot ROM dump to use for each region. Paths are
// relative to the bios resources directory unless absolute.
type BootROMs struct {
	NTSCU string `yaml:"ntsc-u,omitempty"`
	NTSCJ string `yaml:"ntsc-j,omitempty"`
	PAL   string `yaml:"pal,omitempty"`
}

// Config is the persistent boot configuration.
type Config struct {
	BootROMs BootROMs `yaml:"bootroms,omitempty"`

	// prefer the emulated bootstrap even when a boot ROM dump is present
	SkipBIOS bool `yaml:"skip-bios,omitempty"`

	// run PAL discs with 60Hz timing on the successor console
	PAL60 bool `yaml:"pal60,omitempty"`

	// extracted disc directory and backing volume for executable sources
	DVDRoot    string `yaml:"dvd-root,omitempty"`
	DefaultISO string `yaml:"default-iso,omitempty"`
}

// Load the configuration file from the resources directory. An absent file
// is not an error and yields the default configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	p, err := resources.JoinPath(configFile)
	if err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	buffer, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, curated.Errorf("config: %v", err)
	}

	if err := yaml.Unmarshal(buffer, cfg); err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	return cfg, nil
}

// Save the configuration to the resources directory.
func (cfg *Config) Save() error {
	p, err := resources.JoinPath(configFile)
	if err != nil {
		return curated.Errorf("config: %v", err)
	}

	buffer, err := yaml.Marshal(cfg)
	if err != nil {
		return curated.Errorf("config: %v", err)
	}

	if err := os.WriteFile(p, buffer, 0600); err != nil {
		return curated.Errorf("config: %v", err)
	}

	return nil
}
