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

// Info represents a PDF Document Information Dictionary.
//
// All fields in this structure are optional.  Empty fields are omitted.
// There are no date fields, so that identical input gives identical files.
//
// The Document Information Dictionary is documented in section
// 14.3.3 of ISO 32000-2:2020.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that converted the document,
	// if the document was converted to PDF from another format.
	Producer string
}

// AsDict returns the information dictionary as a PDF dictionary.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	set := func(key Name, val string) {
		if val != "" {
			dict[key] = TextString(val)
		}
	}
	set("Title", info.Title)
	set("Author", info.Author)
	set("Subject", info.Subject)
	set("Keywords", info.Keywords)
	set("Creator", info.Creator)
	set("Producer", info.Producer)
	return dict
}
