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

package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ledgerprint/pdf/font/truetype"
	"github.com/ledgerprint/pdf/graphics/color"
	"github.com/ledgerprint/pdf/invoice"
)

// fixedMetrics is a monospaced font with simple metrics.
type fixedMetrics struct{}

func (fixedMetrics) TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size / 2
}

func (fixedMetrics) Ascent(size float64) float64 {
	return size * 0.75
}

func (fixedMetrics) LineHeight(size float64) float64 {
	return size * 1.25
}

var fm fixedMetrics

func texts(cmds []Command) []*Text {
	var res []*Text
	for _, cmd := range cmds {
		if t, ok := cmd.(*Text); ok {
			res = append(res, t)
		}
	}
	return res
}

func findText(t *testing.T, cmds []Command, content string) *Text {
	t.Helper()
	for _, text := range texts(cmds) {
		if text.Content == content {
			return text
		}
	}
	t.Fatalf("text %q not found", content)
	return nil
}

func consultingRecord() *invoice.Record {
	return &invoice.Record{
		Number:  "INV-001",
		DueDate: "2024-12-31",
		Items: []invoice.LineItem{
			{Description: "Consulting", Quantity: 2, Price: 150},
		},
		Company: invoice.DefaultCompany(),
		Client:  invoice.Client{Name: "Acme Corp"},
	}
}

func TestConsulting(t *testing.T) {
	e := New(fixedMetrics{}, nil)
	cmds := e.Layout(consultingRecord())

	total := findText(t, cmds, "Total: $300.00")
	if total.FontSize != sizeTotal || total.Color != DefaultPrimary {
		t.Errorf("wrong style for total: %v", total)
	}
	right := A4.Width - 50
	if end := total.X + fm.TextWidth(total.Content, total.FontSize); math.Abs(end-right) > 1e-9 {
		t.Errorf("total ends at %g, want %g", end, right)
	}

	var header []string
	for _, text := range texts(cmds)[:4] {
		header = append(header, text.Content)
	}
	want := []string{
		"Your Company Name",
		"123 Business Street",
		"contact@yourcompany.com",
		"+1 (555) 123-4567",
	}
	if d := cmp.Diff(want, header); d != "" {
		t.Errorf("unexpected header (-want +got):\n%s", d)
	}

	row := findText(t, cmds, "$150.00")
	if row.X != colPrice {
		t.Errorf("price at x=%g", row.X)
	}
	findText(t, cmds, "$300.00")
	findText(t, cmds, "2")
	findText(t, cmds, "Due Date: 2024-12-31")
	findText(t, cmds, "#INV-001")
}

func TestOrder(t *testing.T) {
	e := New(fixedMetrics{}, nil)
	cmds := e.Layout(consultingRecord())

	var got []string
	for _, text := range texts(cmds) {
		got = append(got, text.Content)
	}
	want := []string{
		"Your Company Name",
		"123 Business Street",
		"contact@yourcompany.com",
		"+1 (555) 123-4567",
		"INVOICE",
		"#INV-001",
		"Bill To:",
		"Acme Corp",
		"Due Date: 2024-12-31",
		"Item", "Qty", "Price", "Total",
		"Consulting", "2", "$150.00", "$300.00",
		"Total: $300.00",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected text order (-want +got):\n%s", d)
	}
}

func TestZeroItems(t *testing.T) {
	rec := consultingRecord()
	rec.Items = nil

	e := New(fixedMetrics{}, nil)
	cmds := e.Layout(rec)

	for _, label := range []string{"Item", "Qty", "Price", "Total"} {
		text := findText(t, cmds, label)
		if text.Y != tableTop+fm.Ascent(sizeTableText) {
			t.Errorf("%s: y=%g", label, text.Y)
		}
	}
	findText(t, cmds, "Total: $0.00")
	for _, cmd := range cmds {
		if _, ok := cmd.(*FilledRect); ok {
			t.Errorf("unexpected shading")
		}
	}
}

func TestShading(t *testing.T) {
	rec := consultingRecord()
	rec.Items = []invoice.LineItem{
		{Description: "first", Quantity: 1, Price: 1},
		{Description: "second", Quantity: 1, Price: 2},
		{Description: "third", Quantity: 1, Price: 3},
	}

	e := New(fixedMetrics{}, nil)
	cmds := e.Layout(rec)

	var rects []float64
	for i, cmd := range cmds {
		rect, ok := cmd.(*FilledRect)
		if !ok {
			continue
		}
		rects = append(rects, rect.Y)

		// the shading is drawn before the row text
		next, ok := cmds[i+1].(*Text)
		if !ok || (next.Content != "first" && next.Content != "third") {
			t.Errorf("shading at y=%g not followed by the row text", rect.Y)
		}
		if rect.X != 50 || rect.Width != 500 || rect.Height != 25 {
			t.Errorf("wrong rectangle %v", rect)
		}
		if rect.Color != DefaultLightGray {
			t.Errorf("wrong shade %v", rect.Color)
		}
	}
	if d := cmp.Diff([]float64{320, 380}, rects); d != "" {
		t.Errorf("unexpected shaded rows (-want +got):\n%s", d)
	}

	findText(t, cmds, "Total: $6.00")
}

func TestMissingFields(t *testing.T) {
	full := consultingRecord()
	full.Client = invoice.Client{
		Name:    "Acme Corp",
		Address: "1 Main St",
		Email:   "billing@acme.test",
		Phone:   "555-0199",
	}
	partial := consultingRecord()
	partial.Client = invoice.Client{
		Name:    "Acme Corp",
		Address: "1 Main St",
		Phone:   "555-0199",
	}
	partial.Company.Phone = ""

	e := New(fixedMetrics{}, nil)
	nFull := len(texts(e.Layout(full)))
	cmds := e.Layout(partial)
	nPartial := len(texts(cmds))
	if nPartial != nFull-2 {
		t.Errorf("got %d text lines, want %d", nPartial, nFull-2)
	}

	for _, text := range texts(cmds) {
		if text.Content == "" {
			t.Errorf("empty line at y=%g", text.Y)
		}
	}

	// the remaining lines move up
	asc := fm.Ascent(sizeBody)
	phone := findText(t, cmds, "555-0199")
	if phone.Y != 210+asc {
		t.Errorf("phone at y=%g, want %g", phone.Y, 210+asc)
	}
	due := findText(t, cmds, "Due Date: 2024-12-31")
	if due.Y != 230+asc {
		t.Errorf("due date at y=%g, want %g", due.Y, 230+asc)
	}
}

func TestHeaderColumn(t *testing.T) {
	rec := consultingRecord()
	rec.Company = invoice.Company{
		Name: "A Company With An Exceedingly Long Registered Name",
	}

	e := New(fixedMetrics{}, nil)
	cmds := e.Layout(rec)

	name := findText(t, cmds, rec.Company.Name)
	if name.X != titleColumnEnd {
		t.Errorf("long company name starts at x=%g", name.X)
	}
	title := findText(t, cmds, "INVOICE")
	if title.X != 50 {
		t.Errorf("title at x=%g", title.X)
	}
}

func TestTotalSum(t *testing.T) {
	rec := consultingRecord()
	rec.Items = nil
	var sum float64
	for i := range 17 {
		item := invoice.LineItem{
			Description: "item",
			Quantity:    float64(i%4) + 0.5,
			Price:       float64(i) * 1.37,
		}
		sum += item.Quantity * item.Price
		rec.Items = append(rec.Items, item)
	}

	e := New(fixedMetrics{}, nil)
	cmds := e.Layout(rec)
	findText(t, cmds, "Total: "+FormatMoney("$", sum))

	n := 0
	for _, cmd := range cmds {
		if _, ok := cmd.(*FilledRect); ok {
			n++
		}
	}
	if n != 9 {
		t.Errorf("got %d shaded rows, want 9", n)
	}
}

func TestOptions(t *testing.T) {
	red := color.DeviceRGB{1, 0, 0}
	e := New(fixedMetrics{}, &Options{
		Primary:  red,
		Currency: "€",
		PageSize: Letter,
	})
	cmds := e.Layout(consultingRecord())

	total := findText(t, cmds, "Total: €300.00")
	if total.Color != red {
		t.Errorf("wrong color %v", total.Color)
	}
	end := total.X + fm.TextWidth(total.Content, total.FontSize)
	if math.Abs(end-(Letter.Width-50)) > 1e-9 {
		t.Errorf("total ends at %g", end)
	}
	if e.PageSize() != Letter {
		t.Errorf("wrong page size %v", e.PageSize())
	}
}

func TestGoRegular(t *testing.T) {
	F, err := truetype.GoRegular()
	if err != nil {
		t.Fatal(err)
	}
	e := New(F, nil)
	cmds := e.Layout(consultingRecord())

	name := findText(t, cmds, "Your Company Name")
	end := name.X + F.TextWidth(name.Content, name.FontSize)
	if math.Abs(end-(A4.Width-50)) > 1e-6 {
		t.Errorf("company name ends at %g", end)
	}
	if name.X < titleColumnEnd {
		t.Errorf("company name overlaps the title column")
	}
}

func TestFormatMoney(t *testing.T) {
	type testCase struct {
		in   float64
		want string
	}
	cases := []testCase{
		{0, "$0.00"},
		{300, "$300.00"},
		{2.5, "$2.50"},
		{0.125, "$0.13"},
		{1234567.891, "$1234567.89"},
		{-5, "$-5.00"},
		{-0.001, "$0.00"},
	}
	for _, c := range cases {
		if got := FormatMoney("$", c.in); got != c.want {
			t.Errorf("FormatMoney(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	type testCase struct {
		in   float64
		want string
	}
	cases := []testCase{
		{0, "0"},
		{2, "2"},
		{1.5, "1.5"},
		{0.25, "0.25"},
		{100, "100"},
	}
	for _, c := range cases {
		if got := FormatQuantity(c.in); got != c.want {
			t.Errorf("FormatQuantity(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}
