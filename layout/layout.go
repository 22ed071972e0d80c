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

// Package layout positions the elements of an invoice on a page.
//
// The [Engine] converts an [invoice.Record] into a list of drawing
// commands for a single A4 page.  Coordinates use a top-left origin; the
// conversion to the PDF coordinate system is done when the commands are
// written to a content stream.
//
// There is no pagination.  Line items which do not fit on the page are
// placed below the bottom edge of the page and are not visible.
package layout

import (
	"math"

	"github.com/ledgerprint/pdf/graphics/color"
	"github.com/ledgerprint/pdf/invoice"
)

// Metrics gives the font measurements needed for layout.
// This is implemented by [*github.com/ledgerprint/pdf/font/truetype.Font].
type Metrics interface {
	// TextWidth returns the width of s at the given font size.
	TextWidth(s string, size float64) float64

	// Ascent returns the distance from the top of a line of text to the
	// baseline, at the given font size.
	Ascent(size float64) float64

	// LineHeight returns the distance between consecutive baselines.
	LineHeight(size float64) float64
}

// Default colors.
var (
	DefaultPrimary   = color.Hex("#2563eb")
	DefaultText      = color.Hex("#1f2937")
	DefaultLightGray = color.Hex("#f3f4f6")
)

// Options can be used to change the appearance of an invoice.
// The zero value, or a nil pointer, selects the defaults.
type Options struct {
	// PageSize is the size of the page.  The default is A4.
	PageSize Size

	// Primary is used for the company name, the title, the table header and
	// the total.
	Primary color.Color

	// Text is used for all other text.
	Text color.Color

	// Shade is used for the background of every other table row.
	Shade color.Color

	// Currency is the symbol printed before amounts.  The default is "$".
	Currency string
}

// Font sizes
const (
	sizeCompany   = 24
	sizeDetail    = 10
	sizeTitle     = 32
	sizeBody      = 12
	sizeClient    = 14
	sizeTableText = 10
	sizeTotal     = 14
)

// Fixed positions, measured from the top-left corner of the page.
const (
	margin         = 50
	titleColumnEnd = 300 // the company header never extends left of this

	billToTop    = 150
	clientTop    = 170
	billToStep   = 20
	tableTop     = 300
	rowStep      = 30
	totalSpacing = 20

	colItem     = 50
	colQuantity = 350
	colPrice    = 400
	colTotal    = 480

	shadeOffset = 10
	shadeWidth  = 500
	shadeHeight = 25
)

// Engine lays out invoices.
// An Engine can be used concurrently, if the Metrics implementation allows
// this.
type Engine struct {
	font     Metrics
	page     Size
	primary  color.Color
	text     color.Color
	shade    color.Color
	currency string
}

// New creates a new layout engine which measures text using f.
func New(f Metrics, opt *Options) *Engine {
	if opt == nil {
		opt = &Options{}
	}
	e := &Engine{
		font:     f,
		page:     opt.PageSize,
		primary:  opt.Primary,
		text:     opt.Text,
		shade:    opt.Shade,
		currency: opt.Currency,
	}
	if e.page.Width <= 0 || e.page.Height <= 0 {
		e.page = A4
	}
	if e.primary == nil {
		e.primary = DefaultPrimary
	}
	if e.text == nil {
		e.text = DefaultText
	}
	if e.shade == nil {
		e.shade = DefaultLightGray
	}
	if e.currency == "" {
		e.currency = "$"
	}
	return e
}

// PageSize returns the size of the pages produced by the engine.
func (e *Engine) PageSize() Size {
	return e.page
}

// Layout computes the drawing commands for an invoice.
// The commands are returned in drawing order.
func (e *Engine) Layout(rec *invoice.Record) []Command {
	l := &pageLayout{Engine: e}

	l.companyHeader(&rec.Company)
	l.title(rec.Number)
	l.billTo(&rec.Client, rec.DueDate)
	l.table(rec.Items)

	return l.cmds
}

// pageLayout holds the state while a single invoice is laid out.
type pageLayout struct {
	*Engine
	cmds []Command
}

// textAt places a line of text with its top edge at the given y position.
func (l *pageLayout) textAt(s string, x, top, size float64, col color.Color) {
	l.cmds = append(l.cmds, &Text{
		Content:  s,
		X:        x,
		Y:        top + l.font.Ascent(size),
		FontSize: size,
		Color:    col,
	})
}

// rightAligned returns the x position for s, so that the text ends at the
// right margin.
func (l *pageLayout) rightAligned(s string, size, minX float64) float64 {
	right := l.page.Width - margin
	return math.Max(right-l.font.TextWidth(s, size), minX)
}

func (l *pageLayout) companyHeader(c *invoice.Company) {
	y := float64(margin)
	if c.Name != "" {
		x := l.rightAligned(c.Name, sizeCompany, titleColumnEnd)
		l.textAt(c.Name, x, y, sizeCompany, l.primary)
		y += l.font.LineHeight(sizeCompany)
	}
	for _, line := range []string{c.Address, c.Email, c.Phone} {
		if line == "" {
			continue
		}
		x := l.rightAligned(line, sizeDetail, titleColumnEnd)
		l.textAt(line, x, y, sizeDetail, l.text)
		y += l.font.LineHeight(sizeDetail)
	}
}

func (l *pageLayout) title(number string) {
	y := float64(margin)
	l.textAt("INVOICE", margin, y, sizeTitle, l.primary)
	y += l.font.LineHeight(sizeTitle)
	l.textAt("#"+number, margin, y, sizeBody, l.text)
}

func (l *pageLayout) billTo(c *invoice.Client, dueDate string) {
	l.textAt("Bill To:", margin, billToTop, sizeBody, l.text)
	l.textAt(c.Name, margin, clientTop, sizeClient, l.text)

	y := float64(clientTop + billToStep)
	for _, line := range []string{c.Address, c.Email, c.Phone} {
		if line == "" {
			continue
		}
		l.textAt(line, margin, y, sizeBody, l.text)
		y += billToStep
	}
	l.textAt("Due Date: "+dueDate, margin, y, sizeBody, l.text)
}

func (l *pageLayout) table(items []invoice.LineItem) {
	for _, col := range []struct {
		label string
		x     float64
	}{
		{"Item", colItem},
		{"Qty", colQuantity},
		{"Price", colPrice},
		{"Total", colTotal},
	} {
		l.textAt(col.label, col.x, tableTop, sizeTableText, l.primary)
	}

	var total float64
	y := float64(tableTop + rowStep)
	for i, item := range items {
		lineTotal := item.Total()
		total += lineTotal

		if i%2 == 0 {
			l.cmds = append(l.cmds, &FilledRect{
				X:      colItem,
				Y:      y - shadeOffset,
				Width:  shadeWidth,
				Height: shadeHeight,
				Color:  l.shade,
			})
		}
		l.textAt(item.Description, colItem, y, sizeTableText, l.text)
		l.textAt(FormatQuantity(item.Quantity), colQuantity, y, sizeTableText, l.text)
		l.textAt(FormatMoney(l.currency, item.Price), colPrice, y, sizeTableText, l.text)
		l.textAt(FormatMoney(l.currency, lineTotal), colTotal, y, sizeTableText, l.text)

		y += rowStep
	}

	s := "Total: " + FormatMoney(l.currency, total)
	x := l.rightAligned(s, sizeTotal, margin)
	l.textAt(s, x, y+totalSpacing, sizeTotal, l.primary)
}
