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
	"io"

	"seehuhn.de/go/geom/matrix"

	"github.com/ledgerprint/pdf"
	"github.com/ledgerprint/pdf/internal/float"
)

// DefaultFontName is the resource name used for the page font.
const DefaultFontName pdf.Name = "F1"

// Encoder converts text into the character codes of a font.
// This is implemented by [*github.com/ledgerprint/pdf/font/truetype.Font].
type Encoder interface {
	Encode(s string) pdf.String
}

// Writer writes a PDF content stream.
type Writer struct {
	Content io.Writer
	Err     error

	// Font is used to encode the text shown by [Writer.TextShow].
	Font Encoder

	// FontName is the name of the font in the page resource dictionary.
	FontName pdf.Name

	currentObject objectType
	fontSet       bool

	// toPDF maps layout coordinates to PDF user space.
	toPDF matrix.Matrix
}

// NewWriter allocates a new Writer object, writing to out.
// The page height is used by [Writer.Draw] to convert from the top-left
// origin of the layout engine to the PDF coordinate system.
func NewWriter(out io.Writer, pageHeight float64) *Writer {
	return &Writer{
		Content:       out,
		FontName:      DefaultFontName,
		currentObject: objPage,
		toPDF:         matrix.Matrix{1, 0, 0, -1, 0, pageHeight},
	}
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return float.Format(x, 2)
}

type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}
