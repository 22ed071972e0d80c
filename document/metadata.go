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
	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"github.com/ledgerprint/pdf"
	"github.com/ledgerprint/pdf/invoice"
)

// metadataPacket returns the XMP metadata for an invoice.
// The packet contains no dates or document IDs, so that the output stays
// reproducible.
func metadataPacket(rec *invoice.Record) (*xmp.Packet, error) {
	packet := xmp.NewPacket()
	dc := &xmp.DublinCore{}
	dc.Title.Set(language.Und, "Invoice #"+rec.Number)
	if rec.Company.Name != "" {
		dc.Creator.Append(xmp.NewProperName(rec.Company.Name))
	}
	err := packet.Set(dc)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// writeMetadata adds an XMP metadata stream to the PDF file.
//
// See section 14.3.2 of ISO 32000-2:2020.
func writeMetadata(w *pdf.Writer, rec *invoice.Record) (pdf.Reference, error) {
	packet, err := metadataPacket(rec)
	if err != nil {
		return 0, err
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	ref := w.Alloc()
	body, err := w.OpenStream(ref, dict, pdf.FilterFlate{})
	if err != nil {
		return 0, err
	}

	err = packet.Write(body, nil)
	if err != nil {
		return 0, err
	}

	err = body.Close()
	if err != nil {
		return 0, err
	}

	return ref, nil
}
