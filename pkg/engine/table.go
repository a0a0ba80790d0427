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
	_ "embed"
	"fmt"
	"math/bits"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Fallback strings for identifiers the table does not know.
const (
	UnknownErrorString = "Unknown error code"
	UnknownArchString  = "unknown architecture"
	UnknownModeString  = "unknown mode"
)

//go:embed capstone.yaml
var capstoneYAML []byte

// ErrorInfo describes one engine error code.
type ErrorInfo struct {
	Code        ErrCode `yaml:"code"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
}

// ArchInfo describes one architecture and the modes a translator accepts for it.
type ArchInfo struct {
	ID         Arch     `yaml:"id"`
	Name       string   `yaml:"name"`
	Aliases    []string `yaml:"aliases,omitempty"`
	BasicModes []Mode   `yaml:"basic_modes,omitempty"`
	ExtraModes []Mode   `yaml:"extra_modes,omitempty"`
	ModeChange bool     `yaml:"mode_change,omitempty"`
}

// ModeInfo describes one mode value.
type ModeInfo struct {
	ID      Mode     `yaml:"id"`
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases,omitempty"`
}

type tableFile struct {
	Errors        []ErrorInfo `yaml:"errors"`
	Architectures []ArchInfo  `yaml:"architectures"`
	Modes         []ModeInfo  `yaml:"modes"`
}

// Table is an Engine backed by static lookup tables. A Table is never
// modified after construction, so it is safe for concurrent use.
type Table struct {
	errors map[ErrCode]ErrorInfo
	arches map[Arch]ArchInfo
	modes  map[Mode]ModeInfo
}

var _ Engine = (*Table)(nil)

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in Capstone-compatible table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := ParseTable(capstoneYAML)
		if err != nil {
			panic(fmt.Sprintf("engine: embedded table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// LoadTable reads a YAML table from path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine table: %w", err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTable builds a table from its YAML form.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	t := newTable()
	for _, e := range f.Errors {
		if _, dup := t.errors[e.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate error code %d", ErrInvalidTable, e.Code)
		}
		if e.Description == "" {
			return nil, fmt.Errorf("%w: error code %d has no description", ErrInvalidTable, e.Code)
		}
		t.errors[e.Code] = e
	}
	for _, a := range f.Architectures {
		if _, dup := t.arches[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate architecture %d", ErrInvalidTable, a.ID)
		}
		if a.Name == "" {
			return nil, fmt.Errorf("%w: architecture %d has no name", ErrInvalidTable, a.ID)
		}
		t.arches[a.ID] = a
	}
	for _, m := range f.Modes {
		if _, dup := t.modes[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate mode %d", ErrInvalidTable, m.ID)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("%w: mode %d has no name", ErrInvalidTable, m.ID)
		}
		t.modes[m.ID] = m
	}
	return t, nil
}

func newTable() *Table {
	return &Table{
		errors: make(map[ErrCode]ErrorInfo),
		arches: make(map[Arch]ArchInfo),
		modes:  make(map[Mode]ModeInfo),
	}
}

// Merge returns a new table holding t's entries overlaid with other's.
// Neither input is modified.
func (t *Table) Merge(other *Table) *Table {
	out := newTable()
	for _, src := range []*Table{t, other} {
		if src == nil {
			continue
		}
		for k, v := range src.errors {
			out.errors[k] = v
		}
		for k, v := range src.arches {
			out.arches[k] = v
		}
		for k, v := range src.modes {
			out.modes[k] = v
		}
	}
	return out
}

// ErrorString returns the engine description of code.
func (t *Table) ErrorString(code ErrCode) string {
	if e, ok := t.errors[code]; ok {
		return e.Description
	}
	return UnknownErrorString
}

// ArchString returns the display name of arch.
func (t *Table) ArchString(arch Arch) string {
	if a, ok := t.arches[arch]; ok {
		return a.Name
	}
	return UnknownArchString
}

// ModeString returns the display name of mode. A combination of known bits
// is rendered as its parts joined with " + ".
func (t *Table) ModeString(mode Mode) string {
	if m, ok := t.modes[mode]; ok {
		return m.Name
	}

	var parts []string
	for rest := uint32(mode); rest != 0; {
		bit := Mode(1) << bits.TrailingZeros32(rest)
		m, ok := t.modes[bit]
		if !ok {
			return UnknownModeString
		}
		parts = append(parts, m.Name)
		rest &^= uint32(bit)
	}
	if len(parts) == 0 {
		return UnknownModeString
	}
	return strings.Join(parts, " + ")
}

// SupportsBasicMode reports whether mode is one of arch's basic modes.
func (t *Table) SupportsBasicMode(arch Arch, mode Mode) bool {
	a, ok := t.arches[arch]
	if !ok {
		return false
	}
	for _, m := range a.BasicModes {
		if m == mode {
			return true
		}
	}
	return false
}

// SupportsExtraMode reports whether every bit set in mode is an extra mode of
// arch. The zero mode (little-endian) is accepted for every known arch.
func (t *Table) SupportsExtraMode(arch Arch, mode Mode) bool {
	a, ok := t.arches[arch]
	if !ok {
		return false
	}
	var allowed Mode
	for _, m := range a.ExtraModes {
		allowed |= m
	}
	return mode&^allowed == 0
}

// CanChangeBasicMode reports whether a translator may switch arch's basic mode at runtime.
func (t *Table) CanChangeBasicMode(arch Arch) bool {
	a, ok := t.arches[arch]
	return ok && a.ModeChange
}

// Errors returns all known error codes ordered by code.
func (t *Table) Errors() []ErrorInfo {
	out := make([]ErrorInfo, 0, len(t.errors))
	for _, e := range t.errors {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Arches returns all known architectures ordered by id.
func (t *Table) Arches() []ArchInfo {
	out := make([]ArchInfo, 0, len(t.arches))
	for _, a := range t.arches {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ResolveArch accepts a numeric id, a display name or an alias. Numbers are
// tried first so the value printed in a diagnostic resolves back to itself.
func (t *Table) ResolveArch(s string) (Arch, error) {
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Arch(n), nil
	}
	for _, a := range t.Arches() {
		if matches(s, a.Name, a.Aliases) {
			return a.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArch, s)
}

// ResolveMode accepts a numeric value, a display name or an alias. Numbers
// are tried first, so "16" is bit 4 (Thumb) and "16-bit" is the 16-bit mode.
func (t *Table) ResolveMode(s string) (Mode, error) {
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Mode(n), nil
	}
	ids := make([]Mode, 0, len(t.modes))
	for id := range t.modes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		m := t.modes[id]
		if matches(s, m.Name, m.Aliases) {
			return m.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func matches(s, name string, aliases []string) bool {
	if strings.EqualFold(s, name) {
		return true
	}
	for _, alias := range aliases {
		if strings.EqualFold(s, alias) {
			return true
		}
	}
	return false
}
