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

package pdf

// Catalog represents a PDF Document Catalog.  Only the fields used for
// single-font documents are supported.
//
// The Document Catalog is documented in section 7.7.2 of ISO 32000-2:2020.
type Catalog struct {
	// Pages is the root of the document's page tree.
	Pages Reference

	// Metadata (optional, PDF 1.4) is an XMP metadata stream for the
	// document.
	Metadata Reference

	// Lang (optional) is the natural language of the document's text,
	// for example "en-US".
	Lang string
}

// AsDict returns the catalog as a PDF dictionary.
func (c *Catalog) AsDict() Dict {
	dict := Dict{
		"Type":  Name("Catalog"),
		"Pages": c.Pages,
	}
	if c.Metadata != 0 {
		dict["Metadata"] = c.Metadata
	}
	if c.Lang != "" {
		dict["Lang"] = TextString(c.Lang)
	}
	return dict
}
