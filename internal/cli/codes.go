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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rizome-dev/cs2ir/pkg/engine"
	"github.com/rizome-dev/cs2ir/pkg/translate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errNotTerminal = errors.New("interactive mode requires a terminal")

// codeEntry is one row of the codes listing.
type codeEntry struct {
	Code       engine.ErrCode `yaml:"code"`
	Name       string         `yaml:"name"`
	Diagnostic string         `yaml:"description"`
}

// CodesCmd creates the codes command
func CodesCmd(a *app) *cobra.Command {
	var (
		format      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List engine error codes",
		Long:  `List every error code the disassembly engine reports, with the diagnostic an engine error renders for it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := codeEntries(a.engine)

			if interactive {
				if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
					return errNotTerminal
				}
				return browseCodes(cmd, a, entries)
			}

			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			switch format {
			case "yaml":
				return writeCodesYAML(cmd.OutOrStdout(), entries)
			case "text":
				writeCodesText(cmd.OutOrStdout(), entries)
				return nil
			default:
				return fmt.Errorf("unsupported format %q (use text or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse codes interactively")
	return cmd
}

// codeEntries renders each known code through an EngineError so the listing
// shows exactly what a handler would print.
func codeEntries(t *engine.Table) []codeEntry {
	infos := t.Errors()
	entries := make([]codeEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, codeEntry{
			Code:       info.Code,
			Name:       info.Name,
			Diagnostic: translate.NewEngineError(t, info.Code).Render(),
		})
	}
	return entries
}

func writeCodesText(w io.Writer, entries []codeEntry) {
	p := newPainter(w)
	fmt.Fprintln(w, p.paint(titleStyle, "Engine Error Codes"))
	fmt.Fprintln(w, strings.Repeat("-", 50))

	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%3d  %-*s  %s\n", e.Code, width, e.Name, p.paint(dimStyle, e.Diagnostic))
	}
}

func writeCodesYAML(w io.Writer, entries []codeEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode codes: %w", err)
	}
	return enc.Close()
}
