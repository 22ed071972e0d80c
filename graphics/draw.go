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

	"github.com/ledgerprint/pdf/layout"
)

// Draw appends the operators for the given layout commands to the content
// stream, in order.  Each command sets its own fill color.
// The return value is w.Err.
func (w *Writer) Draw(cmds []layout.Command) error {
	for _, cmd := range cmds {
		if w.Err != nil {
			break
		}
		switch cmd := cmd.(type) {
		case *layout.Text:
			w.drawText(cmd)
		case *layout.FilledRect:
			w.drawRect(cmd)
		default:
			w.Err = fmt.Errorf("unsupported layout command %T", cmd)
		}
	}
	return w.Err
}

func (w *Writer) drawText(t *layout.Text) {
	x, y := w.toPDF.Apply(t.X, t.Y)

	w.SetFillColor(t.Color)
	w.TextStart()
	w.TextSetFont(w.FontName, t.FontSize)
	w.TextFirstLine(x, y)
	w.TextShow(t.Content)
	w.TextEnd()
}

func (w *Writer) drawRect(r *layout.FilledRect) {
	// The bottom edge in layout coordinates becomes the lower-left corner.
	x, y := w.toPDF.Apply(r.X, r.Y+r.Height)

	w.SetFillColor(r.Color)
	w.Rectangle(x, y, r.Width, r.Height)
	w.Fill()
}
