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

import "github.com/rizome-dev/cs2ir/pkg/engine"

// CheckEngine converts an engine return code into an error. engine.ErrOK
// yields nil.
func CheckEngine(d engine.Describer, code engine.ErrCode) error {
	if code == engine.ErrOK {
		return nil
	}
	return NewEngineError(d, code)
}

// CheckBasicMode fails with BasicModeUnsupported when arch does not accept mode
// as its basic mode.
func CheckBasicMode(e engine.Engine, arch engine.Arch, mode engine.Mode) error {
	if e.SupportsBasicMode(arch, mode) {
		return nil
	}
	return NewModeError(e, arch, mode, BasicModeUnsupported)
}

// CheckExtraMode fails with ExtraModeUnsupported when mode holds a bit arch
// does not accept as an extra mode.
func CheckExtraMode(e engine.Engine, arch engine.Arch, mode engine.Mode) error {
	if e.SupportsExtraMode(arch, mode) {
		return nil
	}
	return NewModeError(e, arch, mode, ExtraModeUnsupported)
}

// CheckBasicModeChange validates switching arch to mode at runtime.
func CheckBasicModeChange(e engine.Engine, arch engine.Arch, mode engine.Mode) error {
	if !e.CanChangeBasicMode(arch) {
		return NewModeError(e, arch, mode, BasicModeChangeRejected)
	}
	return CheckBasicMode(e, arch, mode)
}
