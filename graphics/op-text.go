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

import (
	"errors"
	"fmt"

	"github.com/ledgerprint/pdf"
)

// This file implements the text-related PDF operators used on invoice
// pages.  The operators are defined in tables 103, 105 and 107 of ISO
// 32000-2:2020.

var (
	errNoFont    = errors.New("no font set")
	errNoEncoder = errors.New("no font encoder")
)

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.
// The name must refer to a font in the page resource dictionary.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name pdf.Name, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}
	w.fontSet = true

	_, w.Err = fmt.Fprintln(w.Content, pdf.Format(name), w.coord(size), "Tf")
}

// TextFirstLine moves to the start of the next line of text.
// Inside a new text object, this sets the start of the first line.
// The coordinates are PDF user space coordinates.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(x, y float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "Td")
}

// TextShow shows a string of text, encoded using w.Font.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s string) {
	if w.Err == nil && w.Font == nil {
		w.Err = errNoEncoder
	}
	if w.Err != nil {
		return
	}
	w.TextShowRaw(w.Font.Encode(s))
}

// TextShowRaw shows an already encoded string.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowRaw(s pdf.String) {
	if !w.isValid("TextShowRaw", objText) {
		return
	}
	if !w.fontSet {
		w.Err = errNoFont
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, pdf.Format(s), "Tj")
}
