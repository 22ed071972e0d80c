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

// Package pdf implements the object model and the serializer used to write
// PDF files.
//
// A PDF file is a sequence of numbered objects (typically dictionaries and
// streams), followed by a cross-reference table which gives the byte offset
// of every object, and a trailer which names the document catalog.  Objects
// are written sequentially and refer to each other by object number only:
//
//	w, err := pdf.NewWriter(out, nil)
//	if err != nil {
//	    return err
//	}
//	pagesRef := w.Alloc()
//	... write page, font and content stream objects using w.Write() and
//	    w.OpenStream() ...
//	err = w.Close(&pdf.Catalog{Pages: pagesRef})
//
// The following types implement the native PDF object types used here.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Real
//	Rectangle
//	Reference
//	String
//
// The Writer checks the structural integrity of the file: every reference
// must resolve to an object which is written exactly once, and the /Length
// of every stream must equal the number of bytes written.  Violations are
// reported as [*SerializationError].
package pdf
