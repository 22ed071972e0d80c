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
	"github.com/ledgerprint/pdf"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of PDF 32000-1:2008.
type Descriptor struct {
	FontName   string // required
	FontFamily string // optional

	IsFixedPitch bool // flag
	IsSerif      bool // flag
	IsSymbolic   bool // flag
	IsScript     bool // flag
	IsItalic     bool // flag

	FontBBox    *pdf.Rectangle // required
	ItalicAngle float64        // required
	Ascent      float64        // required
	Descent     float64        // required
	Leading     float64        // optional (default: 0)
	CapHeight   float64        // required, if the font contains latin chars
	StemV       float64        // required (0 = unknown)
}

// AsDict converts the descriptor into a PDF dictionary.
func (d *Descriptor) AsDict() pdf.Dict {
	var flags pdf.Integer
	if d.IsFixedPitch {
		flags |= flagFixedPitch
	}
	if d.IsSerif {
		flags |= flagSerif
	}
	if d.IsSymbolic {
		flags |= flagSymbolic
	} else {
		flags |= flagNonsymbolic
	}
	if d.IsScript {
		flags |= flagScript
	}
	if d.IsItalic {
		flags |= flagItalic
	}

	dict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(d.FontName),
		"Flags":       flags,
		"ItalicAngle": pdf.Number(d.ItalicAngle),
		"Ascent":      pdf.Number(d.Ascent),
		"Descent":     pdf.Number(d.Descent),
		"StemV":       pdf.Number(d.StemV),
	}
	if d.FontFamily != "" {
		dict["FontFamily"] = pdf.String(d.FontFamily)
	}
	if d.FontBBox != nil {
		dict["FontBBox"] = d.FontBBox
	}
	if d.Leading != 0 {
		dict["Leading"] = pdf.Number(d.Leading)
	}
	if d.CapHeight != 0 {
		dict["CapHeight"] = pdf.Number(d.CapHeight)
	}
	return dict
}

// Possible values for PDF Font Descriptor Flags.
const (
	flagFixedPitch  pdf.Integer = 1 << 0 // All glyphs have the same width.
	flagSerif       pdf.Integer = 1 << 1 // Glyphs have serifs.
	flagSymbolic    pdf.Integer = 1 << 2 // Font contains glyphs outside the Adobe standard Latin character set.
	flagScript      pdf.Integer = 1 << 3 // Glyphs resemble cursive handwriting.
	flagNonsymbolic pdf.Integer = 1 << 5 // Font uses the Adobe standard Latin character set or a subset of it.
	flagItalic      pdf.Integer = 1 << 6 // Glyphs have dominant vertical strokes that are slanted.
)
