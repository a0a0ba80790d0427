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

import "fmt"

// Violation reports an invariant the translator relies on as broken. Builds
// tagged cs2irdebug panic with the GenericError; other builds return it.
func Violation(format string, args ...any) error {
	return violation(NewGenericError(fmt.Sprintf(format, args...)))
}

// Invariant returns nil when cond holds and Violation(format, args...) otherwise.
func Invariant(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return Violation(format, args...)
}
