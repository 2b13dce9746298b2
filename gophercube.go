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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/spf13/cobra"

	"github.com/gophercube/gophercube/boot"
	"github.com/gophercube/gophercube/config"
	"github.com/gophercube/gophercube/dvd"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/ipl"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/resources"
	"github.com/gophercube/gophercube/statsview"
	"github.com/gophercube/gophercube/symbols"
	"github.com/gophercube/gophercube/version"
)

func main() {
	root := &cobra.Command{
		Use:           "gophercube",
		Short:         "GopherCube is a GameCube and Wii boot core",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	var verbose bool
	root.PersistentFlags().BoolVar(&verbose, "log", false, "echo log entries as they happen")
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetEcho(os.Stderr)
		}
	}

	root.AddCommand(
		newBootCommand(),
		newDescrambleCommand(),
		newVersionCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(1)
	}
}

// bootSource decides the boot source variant from the file extension.
func bootSource(filename string) boot.Source {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".dol", ".elf":
		return boot.Executable{Filename: filename}
	case ".wad":
		return boot.InstalledTitle{Filename: filename}
	}
	return boot.Disc{Filename: filename}
}

// bootROMPath resolves the configured boot ROM for a region. Relative
// paths are looked for in the bios resources directory.
func bootROMPath(cfg *config.Config, region dvd.Region) string {
	var p string
	switch region {
	case dvd.RegionNTSCU:
		p = cfg.BootROMs.NTSCU
	case dvd.RegionNTSCJ:
		p = cfg.BootROMs.NTSCJ
	case dvd.RegionPAL:
		p = cfg.BootROMs.PAL
	}

	if p == "" || filepath.IsAbs(p) {
		return p
	}

	r, err := resources.JoinPath(resources.BIOSDir, p)
	if err != nil {
		return ""
	}
	return r
}

func newBootCommand() *cobra.Command {
	var (
		regionName string
		bootROM    string
		skipBIOS   bool
		debugging  bool
		pal60      bool
		wii        bool
		dumpFile   string
		stats      bool
	)

	cmd := &cobra.Command{
		Use:   "boot <file>",
		Args:  cobra.MaximumNArgs(1),
		Short: "Boot a disc image, executable or installed title",
		Long: `Boot a disc image, executable or installed title. With no file
argument the configured boot ROM is booted on its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if stats {
				statsview.Launch(cmd.OutOrStdout())
			}

			req := boot.Request{
				SkipBIOS:   skipBIOS || cfg.SkipBIOS,
				Debugging:  debugging,
				PAL60:      pal60 || cfg.PAL60,
				Region:     dvd.ParseRegion(regionName),
				DVDRoot:    cfg.DVDRoot,
				DefaultISO: cfg.DefaultISO,
			}

			if len(args) == 0 {
				req.Source = boot.BootROM{}
			} else {
				req.Source = bootSource(args[0])
			}

			req.BootROM = bootROM
			if req.BootROM == "" {
				req.BootROM = bootROMPath(cfg, req.Region)
			}

			platform := dvd.GameCube
			if wii {
				platform = dvd.Wii
			}
			con := hardware.NewConsole(platform)

			var tbl symbols.Table
			if err := boot.BootUp(con, &tbl, req); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "booted: PC %#08x (%s)\n", con.CPU.PC, con.Platform())

			if dumpFile != "" {
				f, err := os.Create(dumpFile)
				if err != nil {
					return err
				}
				defer f.Close()
				memviz.Map(f, con.CPU)
				fmt.Fprintf(cmd.OutOrStdout(), "state graph written to %s\n", dumpFile)
			}

			logger.Tail(cmd.OutOrStdout(), 10)

			return nil
		},
	}

	cmd.Flags().StringVar(&regionName, "region", "", "region to assume when the boot source does not imply one (ntsc-u, ntsc-j, pal)")
	cmd.Flags().StringVar(&bootROM, "bios", "", "path to a boot ROM dump, overriding the configuration file")
	cmd.Flags().BoolVar(&skipBIOS, "skip-bios", false, "use the emulated bootstrap even when a boot ROM dump is available")
	cmd.Flags().BoolVar(&debugging, "debug", false, "curtail automatic function analysis and patching")
	cmd.Flags().BoolVar(&pal60, "pal60", false, "run PAL games with 60Hz timing on the Wii")
	cmd.Flags().BoolVar(&wii, "wii", false, "boot as a Wii rather than a GameCube")
	cmd.Flags().StringVar(&dumpFile, "dump", "", "write a graphviz dump of the post-boot CPU state to the named file")
	cmd.Flags().BoolVar(&stats, "stats", false, "run the statistics server (requires the statsview build tag)")

	return cmd
}

func newDescrambleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "descramble <in> <out>",
		Args:  cobra.ExactArgs(2),
		Short: "Descramble the bootstrap portion of a boot ROM dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := ipl.Load(args[0])
			if err != nil {
				return err
			}

			ipl.Scrambler{}.Descramble(img.Data[ipl.ScrambledOffset : ipl.ScrambledOffset+ipl.ScrambledLength])

			if err := os.WriteFile(args[1], img.Data, 0600); err != nil {
				return err
			}

			if img.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "descrambled %s boot ROM\n", img.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "descrambled boot ROM with unknown checksum (%08x)\n", img.Checksum)
			}

			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			v := version.Version
			if v == "" {
				v = "(development build)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
		},
	}
}
