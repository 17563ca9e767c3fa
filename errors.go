/*
 * errors.go, part of gostrain
 *
 * Copyright 2026 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package strain

import "fmt"

//Error is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve info from the error, without
//changing its type or wrapping it around something else. The decorate slice
//should contain a list of functions in the calling stack, plus, for each
//function, any relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

//ErrorKind separates the failure modes of a strain computation.
type ErrorKind int

const (
	//InputFrameInvalid means a position/identifier view could not be built
	//from the given frame.
	InputFrameInvalid ErrorKind = iota + 1
	//FrameSizeMismatch means the current and reference frames have
	//different numbers of atoms.
	FrameSizeMismatch
	//ExportUnsupported means the report could not be persisted. It is
	//never fatal: Compute still returns the in-memory report.
	ExportUnsupported
)

//CompError is the concrete error type of the strain package.
//It fulfills the Error interface.
type CompError struct {
	kind     ErrorKind
	message  string
	deco     []string
	critical bool
}

func newError(kind ErrorKind, format string, a ...interface{}) *CompError {
	return &CompError{kind: kind, message: fmt.Sprintf(format, a...), critical: kind != ExportUnsupported}
}

//Error returns a string with an error message.
func (err *CompError) Error() string {
	return err.message
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice. If passed an empty string it just returns
//the current value.
func (err *CompError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Kind returns the failure mode of the error.
func (err *CompError) Kind() ErrorKind { return err.kind }

//Critical returns whether the error aborts a computation (true) or is
//only a warning-grade condition, like a failed export (false).
func (err *CompError) Critical() bool { return err.critical }

//errDecorate asserts that the error implements Error and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
