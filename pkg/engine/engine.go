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

import "errors"

// Arch identifies a target instruction set. Values are defined by the
// disassembly engine and passed through unchanged.
type Arch uint32

// Mode identifies an engine operating mode. Modes are bit flags whose meaning
// depends on the architecture.
type Mode uint32

// ErrCode is a native engine error code.
type ErrCode int

// ErrOK is the engine's success code.
const ErrOK ErrCode = 0

var (
	ErrUnknownArch  = errors.New("unknown architecture")
	ErrUnknownMode  = errors.New("unknown mode")
	ErrInvalidTable = errors.New("invalid engine table")
)

// Describer renders engine identifiers as display strings.
// Implementations must be safe for concurrent read-only use and must not fail.
type Describer interface {
	ErrorString(code ErrCode) string
	ArchString(arch Arch) string
	ModeString(mode Mode) string
}

// Capabilities answers which modes an architecture accepts.
type Capabilities interface {
	SupportsBasicMode(arch Arch, mode Mode) bool
	SupportsExtraMode(arch Arch, mode Mode) bool
	CanChangeBasicMode(arch Arch) bool
}

// Engine is the full view of the disassembly engine the translator consumes.
type Engine interface {
	Describer
	Capabilities
}
