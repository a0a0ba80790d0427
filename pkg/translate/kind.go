package translate

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
	"strings"
)

// ModeErrorKind says why a mode was rejected.
type ModeErrorKind uint8

const (
	// ModeErrorUndefined is the zero value. Translator code never raises it.
	ModeErrorUndefined ModeErrorKind = iota
	// BasicModeUnsupported: the basic mode cannot be used with the architecture.
	BasicModeUnsupported
	// ExtraModeUnsupported: the extra mode cannot be used with the architecture.
	ExtraModeUnsupported
	// BasicModeChangeRejected: the translator cannot change the basic mode for the architecture.
	BasicModeChangeRejected
)

// ErrUnknownKind is returned by ParseModeErrorKind for unrecognised input.
var ErrUnknownKind = errors.New("unknown mode error kind")

var kindNames = map[ModeErrorKind]string{
	ModeErrorUndefined:      "undefined",
	BasicModeUnsupported:    "basic",
	ExtraModeUnsupported:    "extra",
	BasicModeChangeRejected: "change",
}

func (k ModeErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ModeErrorKind(%d)", uint8(k))
}

// ParseModeErrorKind accepts "basic", "extra" or "change". "undefined" is
// rejected so it can never be raised from user input.
func ParseModeErrorKind(s string) (ModeErrorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return BasicModeUnsupported, nil
	case "extra":
		return ExtraModeUnsupported, nil
	case "change":
		return BasicModeChangeRejected, nil
	}
	return ModeErrorUndefined, fmt.Errorf("%w: %q (use basic, extra or change)", ErrUnknownKind, s)
}
