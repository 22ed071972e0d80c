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

package truetype

import (
	"errors"
	"fmt"
)

var (
	errNoOutlines = errors.New("no glyf or CFF outlines")
	errUnitsPerEm = errors.New("invalid unitsPerEm value 0")
	errNoCMap     = errors.New("no usable Unicode cmap subtable")
)

// LoadError is returned when a font program cannot be used.
type LoadError struct {
	// Path is the file name, if the font was loaded from a file.
	Path string
	Err  error
}

func (err *LoadError) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("font: cannot load font: %v", err.Err)
	}
	return fmt.Sprintf("font: cannot load %q: %v", err.Path, err.Err)
}

func (err *LoadError) Unwrap() error {
	return err.Err
}
