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

package graphics

import "fmt"

// This file implements the path construction and path painting operators
// used on invoice pages.  The operators are defined in tables 58 and 59 of
// ISO 32000-2:2020.

// Rectangle appends a rectangle to the current path as a closed subpath.
// The point (x, y) is the lower-left corner, in PDF user space.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if !w.isValid("Rectangle", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), w.coord(width), w.coord(height), "re")
}

// Fill fills the current path using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if !w.isValid("Fill", objPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "f")
}
