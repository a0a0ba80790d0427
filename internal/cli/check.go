package cli

// Copyright (C) 2025 Rizome Labs, Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"fmt"

	"github.com/rizome-dev/cs2ir/pkg/translate"
	"github.com/spf13/cobra"
)

// CheckCmd creates the check command
func CheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run translator mode and engine-code checks",
		Long: `Run the checks a translator performs before raising a translation error.
A failing check prints nothing on stdout and exits non-zero with the diagnostic.`,
	}

	cmd.AddCommand(checkModeCmd(a), checkCodeCmd(a))
	return cmd
}

func checkModeCmd(a *app) *cobra.Command {
	var (
		extra  bool
		change bool
	)

	cmd := &cobra.Command{
		Use:   "mode <arch> <mode>",
		Short: "Check that an architecture accepts a mode",
		Long: `Check a mode against the engine's capability table.

By default the mode is checked as a basic mode. --extra checks it as an extra
(modifier) mode; --change checks that the translator may switch to it at runtime.`,
		Example: "  cs2ir check mode x86 64-bit\n  cs2ir check mode arm big --extra\n  cs2ir check mode arm64 0 --change",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arch, mode, err := resolveArchMode(a.engine, args[0], args[1])
			if err != nil {
				return err
			}

			var checkErr error
			switch {
			case extra:
				checkErr = translate.CheckExtraMode(a.engine, arch, mode)
			case change:
				checkErr = translate.CheckBasicModeChange(a.engine, arch, mode)
			default:
				checkErr = translate.CheckBasicMode(a.engine, arch, mode)
			}
			if checkErr != nil {
				a.log.Debug("mode check failed", "arch", uint32(arch), "mode", uint32(mode), "error", checkErr)
				return checkErr
			}

			out := cmd.OutOrStdout()
			p := newPainter(out)
			fmt.Fprintf(out, "%s %s (%d) accepts %s (%d)\n", p.paint(okStyle, "ok"),
				a.engine.ArchString(arch), uint32(arch), a.engine.ModeString(mode), uint32(mode))
			return nil
		},
	}

	cmd.Flags().BoolVar(&extra, "extra", false, "check as an extra mode")
	cmd.Flags().BoolVar(&change, "change", false, "check a runtime basic mode change")
	cmd.MarkFlagsMutuallyExclusive("extra", "change")
	return cmd
}

func checkCodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "code <code>",
		Short:   "Check an engine return code",
		Example: "  cs2ir check code 0",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseErrCode(args[0])
			if err != nil {
				return err
			}
			if err := translate.CheckEngine(a.engine, code); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", newPainter(out).paint(okStyle, "ok"), a.engine.ErrorString(code))
			return nil
		},
	}
}
