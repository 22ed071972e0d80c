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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"github.com/ledgerprint/pdf"
)

func TestGoRegular(t *testing.T) {
	F, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range "AZaz09 $.#" {
		if w := F.GlyphWidth(r); w <= 0 {
			t.Errorf("GlyphWidth(%q) = %g", r, w)
		}
	}
	if F.GlyphWidth('W') <= F.GlyphWidth('i') {
		t.Errorf("W is not wider than i")
	}

	if a := F.Ascent(12); a <= 0 || a > 12 {
		t.Errorf("Ascent(12) = %g", a)
	}
	if d := F.Descent(12); d >= 0 {
		t.Errorf("Descent(12) = %g", d)
	}
	if lh := F.LineHeight(12); lh < F.Ascent(12)-F.Descent(12) {
		t.Errorf("LineHeight(12) = %g", lh)
	}
	if !bytes.Equal(F.EmbedBytes(), goregular.TTF) {
		t.Errorf("EmbedBytes does not return the font program")
	}
}

func TestTextWidth(t *testing.T) {
	F, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}

	if w := F.TextWidth("", 12); w != 0 {
		t.Errorf("TextWidth(\"\") = %g", w)
	}

	s := "Total: $300.00"
	var sum float64
	for _, r := range s {
		sum += F.GlyphWidth(r)
	}
	got := F.TextWidth(s, 14)
	want := sum * 14 / 1000
	if got != want {
		t.Errorf("TextWidth(%q, 14) = %g, want %g", s, got, want)
	}
	if F.TextWidth(s, 28) != 2*got {
		t.Errorf("TextWidth does not scale with the font size")
	}
}

func TestFallback(t *testing.T) {
	F, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}

	q := F.GlyphWidth(FallbackRune)
	for _, r := range []rune{'漢', '\u0007', '\U0001F600'} {
		if w := F.GlyphWidth(r); w != q {
			t.Errorf("GlyphWidth(%q) = %g, want %g", r, w, q)
		}
	}

	got := F.Encode("a漢\tb\n")
	want := pdf.String("a? b ")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Encode: %s", d)
	}

	// characters outside ASCII which WinAnsiEncoding can represent
	got = F.Encode("é")
	if d := cmp.Diff(pdf.String{0xE9}, got); d != "" {
		t.Errorf("Encode: %s", d)
	}

	// the width of encoded text matches the measured width
	s := "Café 漢字"
	var sum float64
	for _, c := range F.Encode(s) {
		sum += F.width[c]
	}
	if w := F.TextWidth(s, 1000); w != sum {
		t.Errorf("TextWidth(%q) = %g, encoded width %g", s, w, sum)
	}
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "go.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	F, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	G, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "Invoice" {
		if F.GlyphWidth(r) != G.GlyphWidth(r) {
			t.Errorf("GlyphWidth(%q) differs", r)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing.ttf")
	_, err := Load(fname)

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Path != fname {
		t.Errorf("wrong path %q", loadErr.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error does not wrap fs.ErrNotExist: %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.ttf")
	err := os.WriteFile(fname, []byte("this is not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Load(fname)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Path != fname {
		t.Errorf("wrong path %q", loadErr.Path)
	}

	_, err = Read(nil)
	if !errors.As(err, &loadErr) {
		t.Errorf("expected *LoadError, got %v", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	F, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}
	want := F.TextWidth("Widget A", 10)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := F.TextWidth("Widget A", 10); got != want {
					t.Errorf("TextWidth = %g, want %g", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEmbed(t *testing.T) {
	F, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	fontRef, err := F.Embed(w)
	if err != nil {
		t.Fatal(err)
	}
	pagesRef, err := w.Write(pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{},
		"Count": pdf.Integer(0),
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(&pdf.Catalog{Pages: pagesRef})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		fmt.Sprintf("%d 0 obj\n<<\n/BaseFont ", fontRef.Number()),
		"/Subtype /TrueType",
		"/Encoding /WinAnsiEncoding",
		"/FirstChar 32",
		"/LastChar 255",
		"/FontFile2 ",
		"/Length1 ",
		"/Filter /FlateDecode",
		"/Type /FontDescriptor",
		"/FontBBox [",
	} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if bytes.Contains(buf.Bytes(), []byte("/FontFile3")) {
		t.Errorf("glyf font embedded as FontFile3")
	}
}

// makeCFFFont returns a small OpenType font with CFF outlines.
func makeCFFFont(t *testing.T) []byte {
	t.Helper()

	notdef := cff.NewGlyph(".notdef", 500)
	notdef.MoveTo(0, 0)
	notdef.LineTo(450, 0)
	notdef.LineTo(450, 700)
	notdef.LineTo(0, 700)
	space := cff.NewGlyph("space", 250)
	question := cff.NewGlyph("question", 500)
	question.MoveTo(200, 0)
	question.LineTo(300, 0)
	question.LineTo(300, 100)
	question.LineTo(200, 100)
	a := cff.NewGlyph("A", 600)
	a.MoveTo(0, 0)
	a.LineTo(600, 0)
	a.LineTo(300, 700)
	gg := []*cff.Glyph{notdef, space, question, a}

	info := &sfnt.Font{
		FamilyName: "LedgerTest",
		Weight:     os2.WeightNormal,
		Width:      os2.WidthNormal,
		UnitsPerEm: 1000,
		Ascent:     700,
		Descent:    -300,
		LineGap:    200,
		CapHeight:  700,
		Outlines: &cff.Outlines{
			Glyphs: gg,
			Private: []*type1.PrivateDict{
				{BlueValues: []funit.Int16{-10, 0, 700, 710}},
			},
			FDSelect: func(glyph.ID) int { return 0 },
			Encoding: cff.StandardEncoding(gg),
		},
	}
	sub := cmap.Format4{}
	sub[' '] = 1
	sub['?'] = 2
	sub['A'] = 3
	info.InstallCMap(sub)

	buf := &bytes.Buffer{}
	if _, err := info.Write(buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestEmbedCFF(t *testing.T) {
	F, err := Read(makeCFFFont(t))
	if err != nil {
		t.Fatal(err)
	}
	if F.info.IsGlyf() {
		t.Fatal("test font has glyf outlines")
	}
	if w := F.GlyphWidth('A'); w != 600 {
		t.Errorf("GlyphWidth('A') = %g, want 600", w)
	}
	if w := F.GlyphWidth('Z'); w != 500 {
		t.Errorf("GlyphWidth('Z') = %g, want 500", w)
	}

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := F.Embed(w); err != nil {
		t.Fatal(err)
	}
	pagesRef, err := w.Write(pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{},
		"Count": pdf.Integer(0),
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(&pdf.Catalog{Pages: pagesRef}); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	for _, want := range []string{
		"/Subtype /Type1",
		"/Subtype /OpenType",
		"/FontFile3 ",
		"/Encoding /WinAnsiEncoding",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
	for _, bad := range []string{"/Subtype /TrueType", "/FontFile2", "/Length1"} {
		if bytes.Contains(out, []byte(bad)) {
			t.Errorf("CFF font output contains %q", bad)
		}
	}
}

func TestDescriptorFlags(t *testing.T) {
	type testCase struct {
		fd   *Descriptor
		want pdf.Integer
	}
	cases := []testCase{
		{&Descriptor{}, flagNonsymbolic},
		{&Descriptor{IsSymbolic: true}, flagSymbolic},
		{&Descriptor{IsFixedPitch: true, IsSerif: true}, flagFixedPitch | flagSerif | flagNonsymbolic},
		{&Descriptor{IsItalic: true, IsScript: true}, flagItalic | flagScript | flagNonsymbolic},
	}
	for i, c := range cases {
		dict := c.fd.AsDict()
		if got := dict["Flags"]; got != c.want {
			t.Errorf("%d: Flags = %v, want %d", i, got, c.want)
		}
	}
}
