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
	"bytes"
	"fmt"

	"github.com/ledgerprint/pdf"
)

// Embed writes the font to a PDF file, as a simple font with
// WinAnsiEncoding.  The font program is embedded in full.  Fonts with glyf
// outlines are written as TrueType fonts, fonts with CFF outlines as Type 1
// fonts with an OpenType font file.
// The return value is a reference to the font dictionary.
//
// See sections 9.6.2 and 9.6.3 of ISO 32000-2:2020 for details.
func (F *Font) Embed(w *pdf.Writer) (pdf.Reference, error) {
	fontName := F.PostScriptName()

	fontDictRef := w.Alloc()
	fontDescriptorRef := w.Alloc()
	fontFileRef := w.Alloc()

	widths := make(pdf.Array, 0, lastChar-firstChar+1)
	for code := firstChar; code <= lastChar; code++ {
		widths = append(widths, pdf.Number(F.width[code]))
	}

	ttf := F.info

	subtype := pdf.Name("TrueType")
	if !ttf.IsGlyf() {
		subtype = "Type1"
	}

	fontDict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        subtype,
		"BaseFont":       pdf.Name(fontName),
		"Encoding":       pdf.Name("WinAnsiEncoding"),
		"FirstChar":      pdf.Integer(firstChar),
		"LastChar":       pdf.Integer(lastChar),
		"Widths":         widths,
		"FontDescriptor": fontDescriptorRef,
	}

	q := 1000 / float64(ttf.UnitsPerEm)
	bbox := ttf.FontBBox()
	fd := &Descriptor{
		FontName:     fontName,
		FontFamily:   ttf.FamilyName,
		IsFixedPitch: ttf.IsFixedPitch(),
		IsSerif:      ttf.IsSerif,
		IsScript:     ttf.IsScript,
		IsItalic:     ttf.IsItalic,
		FontBBox: &pdf.Rectangle{
			LLx: funitToPDF(bbox.LLx, q),
			LLy: funitToPDF(bbox.LLy, q),
			URx: funitToPDF(bbox.URx, q),
			URy: funitToPDF(bbox.URy, q),
		},
		ItalicAngle: ttf.ItalicAngle,
		Ascent:      F.ascent,
		Descent:     F.descent,
		Leading:     F.lineGap,
		CapHeight:   F.capHeight,
	}
	fontDescriptor := fd.AsDict()

	if _, err := w.Write(fontDict, fontDictRef); err != nil {
		return 0, err
	}

	if ttf.IsGlyf() {
		fontDescriptor["FontFile2"] = fontFileRef
		if _, err := w.Write(fontDescriptor, fontDescriptorRef); err != nil {
			return 0, err
		}
		err := F.writeTrueType(w, fontFileRef, fontName)
		if err != nil {
			return 0, err
		}
	} else {
		fontDescriptor["FontFile3"] = fontFileRef
		if _, err := w.Write(fontDescriptor, fontDescriptorRef); err != nil {
			return 0, err
		}
		err := F.writeOpenType(w, fontFileRef, fontName)
		if err != nil {
			return 0, err
		}
	}

	return fontDictRef, nil
}

// writeTrueType embeds a font with glyf outlines.
// See section 9.9 of PDF 32000-1:2008 for details.
func (F *Font) writeTrueType(w *pdf.Writer, ref pdf.Reference, fontName string) error {
	// The /Length1 value must be known before the stream dictionary is
	// written, so the font program is serialised into memory first.
	buf := &bytes.Buffer{}
	n, err := F.info.WriteTrueTypePDF(buf)
	if err != nil {
		return fmt.Errorf("TrueType font %q: %w", fontName, err)
	}

	fontFileDict := pdf.Dict{
		"Length1": pdf.Integer(n),
	}
	stm, err := w.OpenStream(ref, fontFileDict, pdf.FilterFlate{})
	if err != nil {
		return err
	}
	if _, err := stm.Write(buf.Bytes()); err != nil {
		return err
	}
	return stm.Close()
}

// writeOpenType embeds a font with CFF outlines.
func (F *Font) writeOpenType(w *pdf.Writer, ref pdf.Reference, fontName string) error {
	fontFileDict := pdf.Dict{
		"Subtype": pdf.Name("OpenType"),
	}
	stm, err := w.OpenStream(ref, fontFileDict, pdf.FilterFlate{})
	if err != nil {
		return err
	}
	err = F.info.WriteOpenTypeCFFPDF(stm)
	if err != nil {
		return fmt.Errorf("OpenType font %q: %w", fontName, err)
	}
	return stm.Close()
}
