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

package document

import (
	"context"

	"github.com/ledgerprint/pdf"
	"github.com/ledgerprint/pdf/graphics"
	"github.com/ledgerprint/pdf/internal/assembler"
	"github.com/ledgerprint/pdf/invoice"
	"github.com/ledgerprint/pdf/layout"
)

// build holds the state of a single document while it is written.
type build struct {
	*Generator

	rec  *invoice.Record
	cmds []layout.Command
	out  *assembler.Assembler
}

// run writes the complete PDF file to b.out.  On success, b.out is closed
// by the PDF writer.
//
// The object graph is Catalog -> Pages -> Page -> {Font, Contents}.
func (b *build) run(ctx context.Context) error {
	w, err := pdf.NewWriter(b.out, nil)
	if err != nil {
		return err
	}

	pagesRef := w.Alloc()
	pageRef := w.Alloc()
	contentRef := w.Alloc()

	err = b.writeContent(w, contentRef)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fontRef, err := b.font.Embed(w)
	if err != nil {
		return err
	}

	pageSize := b.engine.PageSize()
	pageDict := pdf.Dict{
		"Type":   pdf.Name("Page"),
		"Parent": pagesRef,
		"MediaBox": &pdf.Rectangle{
			URx: pageSize.Width,
			URy: pageSize.Height,
		},
		"Resources": pdf.Dict{
			"Font": pdf.Dict{
				graphics.DefaultFontName: fontRef,
			},
		},
		"Contents": contentRef,
	}
	_, err = w.Write(pageDict, pageRef)
	if err != nil {
		return err
	}

	pagesDict := pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{pageRef},
		"Count": pdf.Integer(1),
	}
	_, err = w.Write(pagesDict, pagesRef)
	if err != nil {
		return err
	}

	catalog := &pdf.Catalog{
		Pages: pagesRef,
		Lang:  "en",
	}
	if b.metadata {
		catalog.Metadata, err = writeMetadata(w, b.rec)
		if err != nil {
			return err
		}
	}
	w.SetInfo(b.Info(b.rec))

	if err := ctx.Err(); err != nil {
		return err
	}
	return w.Close(catalog)
}

// writeContent writes the page content stream.
func (b *build) writeContent(w *pdf.Writer, ref pdf.Reference) error {
	var filters []pdf.Filter
	if b.compress {
		filters = append(filters, pdf.FilterFlate{})
	}
	stm, err := w.OpenStream(ref, nil, filters...)
	if err != nil {
		return err
	}

	page := graphics.NewWriter(stm, b.engine.PageSize().Height)
	page.Font = b.font
	err = page.Draw(b.cmds)
	if err != nil {
		return err
	}
	return stm.Close()
}
