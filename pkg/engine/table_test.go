package engine

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
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	archARM   Arch = 0
	archARM64 Arch = 1
	archX86   Arch = 3
	archPPC   Arch = 4
	archSPARC Arch = 5

	modeLE    Mode = 0
	mode16    Mode = 1 << 1
	mode32    Mode = 1 << 2
	mode64    Mode = 1 << 3
	modeThumb Mode = 1 << 4
	modeV8    Mode = 1 << 6
	modeBE    Mode = 1 << 31
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	require.NotNil(t, tbl)

	t.Run("Error Strings", func(t *testing.T) {
		assert.Equal(t, "OK (CS_ERR_OK)", tbl.ErrorString(ErrOK))
		assert.Equal(t, "Invalid mode (CS_ERR_MODE)", tbl.ErrorString(5))
		assert.Equal(t, "MASM syntax is unavailable (CS_ERR_X86_MASM)", tbl.ErrorString(14))
		assert.Equal(t, UnknownErrorString, tbl.ErrorString(999))
		assert.Equal(t, UnknownErrorString, tbl.ErrorString(-1))
	})

	t.Run("Arch Strings", func(t *testing.T) {
		assert.Equal(t, "X86", tbl.ArchString(archX86))
		assert.Equal(t, "ARM64", tbl.ArchString(archARM64))
		assert.Equal(t, "ALL", tbl.ArchString(0xFFFF))
		assert.Equal(t, UnknownArchString, tbl.ArchString(42))
	})

	t.Run("Mode Strings", func(t *testing.T) {
		assert.Equal(t, "16-bit", tbl.ModeString(mode16))
		assert.Equal(t, "little-endian / ARM", tbl.ModeString(modeLE))
		assert.Equal(t, "big-endian", tbl.ModeString(modeBE))
		assert.Equal(t, "32-bit + big-endian", tbl.ModeString(mode32|modeBE))
		assert.Equal(t, UnknownModeString, tbl.ModeString(1<<20))
		assert.Equal(t, UnknownModeString, tbl.ModeString(mode32|1<<20))
	})

	t.Run("Same Instance", func(t *testing.T) {
		assert.Same(t, tbl, Default())
	})

	t.Run("Errors Sorted", func(t *testing.T) {
		errs := tbl.Errors()
		require.Len(t, errs, 15)
		for i, e := range errs {
			assert.Equal(t, ErrCode(i), e.Code)
			assert.NotEmpty(t, e.Name)
		}
	})
}

func TestTableCapabilities(t *testing.T) {
	tbl := Default()

	t.Run("Basic Modes", func(t *testing.T) {
		assert.True(t, tbl.SupportsBasicMode(archX86, mode16))
		assert.True(t, tbl.SupportsBasicMode(archX86, mode64))
		assert.False(t, tbl.SupportsBasicMode(archX86, modeThumb))
		assert.True(t, tbl.SupportsBasicMode(archARM, modeThumb))
		assert.False(t, tbl.SupportsBasicMode(archSPARC, mode32))
		assert.False(t, tbl.SupportsBasicMode(42, mode32))
	})

	t.Run("Extra Modes", func(t *testing.T) {
		assert.True(t, tbl.SupportsExtraMode(archX86, modeLE))
		assert.False(t, tbl.SupportsExtraMode(archX86, modeBE))
		assert.True(t, tbl.SupportsExtraMode(archARM, modeV8|modeBE))
		assert.False(t, tbl.SupportsExtraMode(archARM64, modeV8))
		assert.True(t, tbl.SupportsExtraMode(archPPC, modeBE))
		assert.False(t, tbl.SupportsExtraMode(42, modeLE))
	})

	t.Run("Mode Change", func(t *testing.T) {
		assert.True(t, tbl.CanChangeBasicMode(archX86))
		assert.False(t, tbl.CanChangeBasicMode(archARM64))
		assert.False(t, tbl.CanChangeBasicMode(42))
	})
}

func TestTableResolve(t *testing.T) {
	tbl := Default()

	tests := []struct {
		in   string
		want Arch
	}{
		{"x86", archX86},
		{"X86", archX86},
		{"CS_ARCH_ARM64", archARM64},
		{"aarch64", archARM64},
		{"3", archX86},
		{"0x4", archPPC},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := tbl.ResolveArch(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Unknown Arch", func(t *testing.T) {
		_, err := tbl.ResolveArch("z80")
		assert.ErrorIs(t, err, ErrUnknownArch)
	})

	t.Run("Modes", func(t *testing.T) {
		m, err := tbl.ResolveMode("16")
		require.NoError(t, err)
		assert.Equal(t, modeThumb, m, "numbers are engine values")

		m, err = tbl.ResolveMode("0x10")
		require.NoError(t, err)
		assert.Equal(t, modeThumb, m)

		m, err = tbl.ResolveMode("x64")
		require.NoError(t, err)
		assert.Equal(t, mode64, m)

		m, err = tbl.ResolveMode("thumb")
		require.NoError(t, err)
		assert.Equal(t, modeThumb, m)

		m, err = tbl.ResolveMode("16-bit")
		require.NoError(t, err)
		assert.Equal(t, mode16, m)

		_, err = tbl.ResolveMode("bogus")
		assert.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Rendered Values Round Trip", func(t *testing.T) {
		for _, a := range tbl.Arches() {
			got, err := tbl.ResolveArch(strconv.FormatUint(uint64(a.ID), 10))
			require.NoError(t, err)
			assert.Equal(t, a.ID, got)
			for _, m := range append(append([]Mode{}, a.BasicModes...), a.ExtraModes...) {
				got, err := tbl.ResolveMode(strconv.FormatUint(uint64(m), 10))
				require.NoError(t, err)
				assert.Equal(t, m, got, "mode %d on %s", m, a.Name)
			}
		}
	})
}

func TestParseTable(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tbl, err := ParseTable([]byte(`
errors:
  - code: 1
    name: E_ONE
    description: first
architectures:
  - id: 9
    name: Toy
    basic_modes: [4]
modes:
  - id: 4
    name: wide
`))
		require.NoError(t, err)
		assert.Equal(t, "first", tbl.ErrorString(1))
		assert.Equal(t, "Toy", tbl.ArchString(9))
		assert.Equal(t, "wide", tbl.ModeString(4))
		assert.True(t, tbl.SupportsBasicMode(9, 4))
	})

	t.Run("Duplicate Code", func(t *testing.T) {
		_, err := ParseTable([]byte(`
errors:
  - {code: 1, description: a}
  - {code: 1, description: b}
`))
		assert.ErrorIs(t, err, ErrInvalidTable)
	})

	t.Run("Missing Name", func(t *testing.T) {
		_, err := ParseTable([]byte(`
architectures:
  - id: 1
`))
		assert.ErrorIs(t, err, ErrInvalidTable)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := ParseTable([]byte("errors: ["))
		assert.ErrorIs(t, err, ErrInvalidTable)
	})
}

func TestLoadAndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
errors:
  - code: 5
    name: CS_ERR_MODE
    description: mode rejected by engine
architectures:
  - id: 3
    name: Intel x86
    basic_modes: [4]
`), 0644))

	overlay, err := LoadTable(path)
	require.NoError(t, err)

	merged := Default().Merge(overlay)
	assert.Equal(t, "mode rejected by engine", merged.ErrorString(5))
	assert.Equal(t, "Out of memory (CS_ERR_MEM)", merged.ErrorString(1))
	assert.Equal(t, "Intel x86", merged.ArchString(archX86))
	assert.False(t, merged.SupportsBasicMode(archX86, mode16))

	// inputs untouched
	assert.Equal(t, "Invalid mode (CS_ERR_MODE)", Default().ErrorString(5))
	assert.Equal(t, "X86", Default().ArchString(archX86))

	_, err = LoadTable(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestTableConcurrentReads(t *testing.T) {
	tbl := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tbl.ErrorString(ErrCode(j % 15))
				_ = tbl.ModeString(Mode(1) << (j % 8))
				_ = tbl.ArchString(Arch(i % 8))
			}
		}(i)
	}
	wg.Wait()
}
