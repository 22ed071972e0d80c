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

// Package truetype loads TrueType and OpenType font programs and embeds them
// into PDF files as simple fonts with WinAnsiEncoding.
//
// A [Font] is immutable once loaded.  It can be shared between goroutines
// and used by any number of documents at the same time.
package truetype

import (
	"bytes"
	"errors"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"

	"github.com/ledgerprint/pdf"
)

// FallbackRune is shown in place of characters which cannot be represented
// by the font.
const FallbackRune = '?'

// firstChar and lastChar give the range of character codes listed in the
// /Widths array.  Codes below 32 are control characters and never used.
const (
	firstChar = 32
	lastChar  = 255
)

// Font is a loaded font program, together with the metrics needed for
// layout and embedding.
type Font struct {
	info *sfnt.Font
	raw  []byte

	// width holds the advance width for each WinAnsi character code,
	// in PDF glyph space units (1/1000 of the font size), rounded to
	// integers as written to the /Widths array.
	width [256]float64

	// present marks the character codes which map to a glyph in the font.
	present [256]bool

	fallback byte

	// metrics in PDF glyph space units
	ascent, descent, lineGap, capHeight float64
}

// Load reads a TrueType or OpenType font from a file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	F, err := Read(data)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return F, nil
}

// GoRegular returns the Go Regular font, which is compiled into the binary.
// This is used when no font file is configured.
func GoRegular() (*Font, error) {
	F, err := Read(goregular.TTF)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = "<Go Regular>"
		}
		return nil, err
	}
	return F, nil
}

// Read parses a TrueType or OpenType font program.
// The data must not be modified after the call.
func Read(data []byte) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	if !info.IsGlyf() && !info.IsCFF() {
		return nil, &LoadError{Err: errNoOutlines}
	}
	if info.UnitsPerEm == 0 {
		return nil, &LoadError{Err: errUnitsPerEm}
	}
	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, &LoadError{Err: errNoCMap}
	}

	F := &Font{
		info: info,
		raw:  data,
	}

	q := 1000 / float64(info.UnitsPerEm)
	F.ascent = funitToPDF(info.Ascent, q)
	F.descent = funitToPDF(info.Descent, q)
	F.lineGap = funitToPDF(info.LineGap, q)
	F.capHeight = funitToPDF(info.CapHeight, q)
	if F.capHeight == 0 {
		F.capHeight = F.ascent
	}

	for code := firstChar; code <= lastChar; code++ {
		r := charmap.Windows1252.DecodeByte(byte(code))
		gid := cmap.Lookup(r)
		F.present[code] = gid != 0
		F.width[code] = math.Round(info.GlyphWidthPDF(gid))
	}
	F.fallback = FallbackRune
	if !F.present[F.fallback] {
		// Without a question mark, fall back to the space character.
		// If this is missing too, code 32 shows the .notdef glyph.
		F.fallback = ' '
	}

	return F, nil
}

func funitToPDF(x funit.Int16, q float64) float64 {
	return math.Round(x.AsFloat(q))
}

// PostScriptName returns the PostScript name of the font.
func (F *Font) PostScriptName() string {
	name := F.info.PostScriptName()
	if name == "" {
		name = "Font"
	}
	return name
}

// EmbedBytes returns the raw font program, as read from the file.
// The returned slice must not be modified.
func (F *Font) EmbedBytes() []byte {
	return F.raw
}

// code returns the WinAnsi character code used to show r.
func (F *Font) code(r rune) byte {
	switch r {
	case '\t', '\n', '\r':
		r = ' '
	}
	c, ok := charmap.Windows1252.EncodeRune(r)
	if !ok || c < firstChar || !F.present[c] {
		return F.fallback
	}
	return c
}

// GlyphWidth returns the advance width of the glyph used to show r, in PDF
// glyph space units (1/1000 of the font size).  Characters which the font
// cannot show are replaced by a fallback glyph, and the width of this glyph
// is returned.
func (F *Font) GlyphWidth(r rune) float64 {
	return F.width[F.code(r)]
}

// TextWidth returns the width of s, set at the given font size, in PDF user
// space units.
func (F *Font) TextWidth(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		w += F.GlyphWidth(r)
	}
	return w * size / 1000
}

// Encode converts s into the character codes used in a PDF content stream.
// Characters which the font cannot show are replaced by a fallback glyph.
func (F *Font) Encode(s string) pdf.String {
	res := make(pdf.String, 0, len(s))
	for _, r := range s {
		res = append(res, F.code(r))
	}
	return res
}

// Ascent returns the ascent of the font, at the given font size, in PDF
// user space units.
func (F *Font) Ascent(size float64) float64 {
	return F.ascent * size / 1000
}

// Descent returns the descent of the font, at the given font size, in PDF
// user space units.  The value is normally negative.
func (F *Font) Descent(size float64) float64 {
	return F.descent * size / 1000
}

// LineHeight returns the distance between the baselines of two consecutive
// lines of text, at the given font size.
func (F *Font) LineHeight(size float64) float64 {
	return (F.ascent - F.descent + F.lineGap) * size / 1000
}
