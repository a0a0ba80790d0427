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
	"strconv"
	"strings"

	"github.com/rizome-dev/cs2ir/pkg/engine"
	"github.com/rizome-dev/cs2ir/pkg/translate"
	"github.com/spf13/cobra"
)

// ExplainCmd creates the explain command
func ExplainCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Render a translation error",
		Long: `Construct one of the translation error variants and print its diagnostic.

  engine   an error code returned by the disassembly engine
  mode     an architecture/mode combination the translator rejected
  generic  an internal translator inconsistency`,
	}

	cmd.AddCommand(
		explainEngineCmd(a),
		explainModeCmd(a),
		explainGenericCmd(a),
	)
	return cmd
}

func explainEngineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "engine <code>",
		Short:   "Render an engine error code",
		Example: "  cs2ir explain engine 5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseErrCode(args[0])
			if err != nil {
				return err
			}
			printDiagnostic(cmd, a, translate.NewEngineError(a.engine, code))
			return nil
		},
	}
}

func explainModeCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "mode <arch> <mode>",
		Short: "Render a mode error",
		Long: `Render the diagnostic for a rejected architecture/mode combination.

Architectures and modes are given by name (x86, arm64, 16-bit, thumb, big) or by
their numeric engine value. Numbers are read as engine values first, so
"16" is the Thumb bit and "16-bit" is the 16-bit mode.`,
		Example: "  cs2ir explain mode x86 16-bit --kind basic\n  cs2ir explain mode arm64 0 --kind change",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := translate.ParseModeErrorKind(kind)
			if err != nil {
				return err
			}
			arch, mode, err := resolveArchMode(a.engine, args[0], args[1])
			if err != nil {
				return err
			}
			printDiagnostic(cmd, a, translate.NewModeError(a.engine, arch, mode, k))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "basic", "rejection kind: basic, extra or change")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"basic", "extra", "change"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func explainGenericCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "generic <message...>",
		Short:   "Render an internal translator error",
		Example: "  cs2ir explain generic unexpected operand count",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printDiagnostic(cmd, a, translate.NewGenericError(strings.Join(args, " ")))
			return nil
		},
	}
}

// printDiagnostic writes "[variant] message", or "[mode/kind] message" for mode errors.
func printDiagnostic(cmd *cobra.Command, a *app, err translate.Error) {
	variant := translate.Variant(err)
	tag := variant
	attrs := []any{"variant", variant}
	if me, ok := err.(translate.ModeError); ok {
		tag += "/" + me.Kind().String()
		attrs = append(attrs, "kind", me.Kind().String())
	}
	a.log.Debug("rendered diagnostic", attrs...)

	out := cmd.OutOrStdout()
	p := newPainter(out)
	fmt.Fprintf(out, "%s %s\n", p.paint(variantStyle, "["+tag+"]"), p.paint(errorStyle, err.Render()))
}

func parseErrCode(s string) (engine.ErrCode, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid engine error code %q: %w", s, err)
	}
	return engine.ErrCode(n), nil
}

func resolveArchMode(t *engine.Table, archArg, modeArg string) (engine.Arch, engine.Mode, error) {
	arch, err := t.ResolveArch(archArg)
	if err != nil {
		return 0, 0, err
	}
	mode, err := t.ResolveMode(modeArg)
	if err != nil {
		return 0, 0, err
	}
	return arch, mode, nil
}
