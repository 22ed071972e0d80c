// ledgerprint/pdf - generate printable PDF invoices
// Copyright (C) 2026  The ledgerprint authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"errors"
	"strconv"
)

// Errors reported (wrapped in a [*SerializationError]) when the object graph
// passed to a [Writer] is inconsistent.
var (
	ErrUnresolvedReference = errors.New("unresolved reference")
	ErrDuplicateObject     = errors.New("object already written")
	ErrLengthMismatch      = errors.New("stream length does not match data")
	ErrOpenStream          = errors.New("stream not closed")
	ErrClosed              = errors.New("writer already closed")
	errMissingCatalog      = errors.New("missing /Catalog")
	errMissingPages        = errors.New("missing /Pages in catalog")
)

// SerializationError indicates that a PDF file could not be written because
// the objects passed to the [Writer] violate an integrity rule.  This always
// points to a defect in the code producing the objects.
type SerializationError struct {
	// Ref is the object the error refers to, or 0 if the error is not
	// specific to a single object.
	Ref Reference

	Err error
}

func (err *SerializationError) Error() string {
	msg := "pdf: cannot serialize"
	if err.Ref != 0 {
		msg += " object " + strconv.FormatUint(uint64(err.Ref), 10)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *SerializationError) Unwrap() error {
	return err.Err
}
