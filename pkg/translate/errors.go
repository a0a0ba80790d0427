// Package translate defines the errors a disassembly-to-IR translator reports.
//
// Every failure is one of three variants: EngineError (the disassembly engine
// failed), ModeError (an architecture/mode combination was rejected) or
// GenericError (the translator found an internal inconsistency). All of them
// satisfy Error, so handlers can render any of them without a type switch, or
// switch on the concrete type when they need the cause.
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
	"strconv"

	"github.com/rizome-dev/cs2ir/pkg/engine"
)

// UndefinedModeMessage is rendered by a ModeError whose kind was never set.
const UndefinedModeMessage = "Undefined type -- should not happen."

// Error is implemented by every translation error and by nothing else.
// Render and Error return the same diagnostic.
type Error interface {
	error
	Render() string
	translationError()
}

var (
	_ Error = EngineError{}
	_ Error = ModeError{}
	_ Error = GenericError{}
)

// EngineError wraps a native disassembly engine error code.
type EngineError struct {
	code engine.ErrCode
	d    engine.Describer
}

// NewEngineError wraps code. The code is not validated; d describes it at
// render time. A nil d uses engine.Default().
func NewEngineError(d engine.Describer, code engine.ErrCode) EngineError {
	return EngineError{code: code, d: d}
}

// Render returns the engine's own description of the code.
func (e EngineError) Render() string {
	return describer(e.d).ErrorString(e.code)
}

func (e EngineError) Error() string { return e.Render() }

func (EngineError) translationError() {}

// ModeError reports an architecture/mode combination the translator rejected.
type ModeError struct {
	arch engine.Arch
	mode engine.Mode
	kind ModeErrorKind
	d    engine.Describer
}

// NewModeError stores its arguments verbatim. It does not consult the engine's
// capability table; callers check before raising.
func NewModeError(d engine.Describer, arch engine.Arch, mode engine.Mode, kind ModeErrorKind) ModeError {
	return ModeError{arch: arch, mode: mode, kind: kind, d: d}
}

// Kind returns the rejection reason.
func (e ModeError) Kind() ModeErrorKind { return e.kind }

// Render formats the message for the error's kind.
func (e ModeError) Render() string {
	d := describer(e.d)
	ms := d.ModeString(e.mode) + " (" + strconv.FormatUint(uint64(e.mode), 10) + ")"
	as := d.ArchString(e.arch) + " (" + strconv.FormatUint(uint64(e.arch), 10) + ")"

	switch e.kind {
	case BasicModeUnsupported:
		return "Basic mode: " + ms + " cannot be used with architecture: " + as
	case ExtraModeUnsupported:
		return "Extra mode: " + ms + " cannot be used with architecture: " + as
	case BasicModeChangeRejected:
		return "Translator cannot change basic mode to: " + ms + " for architecture: " + as
	default:
		return UndefinedModeMessage
	}
}

func (e ModeError) Error() string { return e.Render() }

func (ModeError) translationError() {}

// GenericError reports an internal translator inconsistency.
type GenericError struct {
	msg string
}

// NewGenericError never panics. Use Violation for "cannot happen" paths.
func NewGenericError(msg string) GenericError {
	return GenericError{msg: msg}
}

// Render returns the message verbatim.
func (e GenericError) Render() string { return e.msg }

func (e GenericError) Error() string { return e.msg }

func (GenericError) translationError() {}

func describer(d engine.Describer) engine.Describer {
	if d == nil {
		return engine.Default()
	}
	return d
}

// As finds the first translation error in err's chain.
func As(err error) (Error, bool) {
	var te Error
	if err == nil || !errors.As(err, &te) {
		return nil, false
	}
	return te, true
}

// Render returns the diagnostic of the first translation error in err's
// chain, falling back to err.Error(). A nil err renders as "".
func Render(err error) string {
	if err == nil {
		return ""
	}
	if te, ok := As(err); ok {
		return te.Render()
	}
	return err.Error()
}

// Variant names the concrete type of err: "engine", "mode" or "generic".
func Variant(err Error) string {
	switch err.(type) {
	case EngineError:
		return "engine"
	case ModeError:
		return "mode"
	case GenericError:
		return "generic"
	default:
		return "unknown"
	}
}
