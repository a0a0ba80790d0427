package e2e

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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/rizome-dev/cs2ir/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLICommands(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Chdir(tempDir)

	run := func(t *testing.T, args ...string) (string, error) {
		t.Helper()
		cmd := cli.RootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetIn(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := fang.Execute(context.Background(), cmd)
		return out.String(), err
	}

	t.Run("Root Command", func(t *testing.T) {
		cmd := cli.RootCmd()
		assert.NotNil(t, cmd)
		assert.Equal(t, "cs2ir", cmd.Use)
	})

	t.Run("Explain Mode Scenario", func(t *testing.T) {
		out, err := run(t, "explain", "mode", "x86", "16-bit", "--kind", "basic")
		require.NoError(t, err)
		assert.Contains(t, out, "Basic mode: 16-bit (2) cannot be used with architecture: X86 (3)")
	})

	t.Run("Failing Check", func(t *testing.T) {
		_, err := run(t, "check", "mode", "arm64", "16", "--change")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Translator cannot change basic mode to: Thumb / microMIPS / SPARC V9 / QPX (16) for architecture: ARM64 (1)")
	})

	t.Run("Config File In Working Directory", func(t *testing.T) {
		overlay := filepath.Join(tempDir, "overlay.yaml")
		require.NoError(t, os.WriteFile(overlay, []byte("architectures:\n  - id: 3\n    name: IA-32/AMD64\n    aliases: [x86]\n    basic_modes: [2, 4, 8]\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "cs2ir.yaml"), []byte("engine:\n  table: "+overlay+"\noutput:\n  format: yaml\n"), 0644))
		defer os.Remove(filepath.Join(tempDir, "cs2ir.yaml"))

		out, err := run(t, "explain", "mode", "x86", "thumb")
		require.NoError(t, err)
		assert.Contains(t, out, "architecture: IA-32/AMD64 (3)")

		out, err = run(t, "codes")
		require.NoError(t, err)
		assert.Contains(t, out, "name: CS_ERR_MEM")
	})
}
