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
	"fmt"
	"strings"

	"github.com/ledgerprint/pdf/graphics/color"
	"github.com/ledgerprint/pdf/internal/float"
)

// SetFillColor sets the color used for filling paths and showing text.
//
// This implements the PDF graphics operators "g" and "rg".
func (w *Writer) SetFillColor(c color.Color) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}
	if c == nil {
		c = color.Black
	}

	var args []string
	for _, v := range c.Values() {
		args = append(args, float.Format(v, 3))
	}
	args = append(args, c.FillOperator())

	_, w.Err = fmt.Fprintln(w.Content, strings.Join(args, " "))
}
