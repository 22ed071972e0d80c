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

import (
	"fmt"
	"slices"
)

// checkReferences verifies that every object number which has been allocated
// or referenced was written exactly once.
func (pdf *Writer) checkReferences() error {
	var missing []Reference
	for target := range pdf.used {
		if _, ok := pdf.xref[target]; !ok {
			missing = append(missing, target)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		target := missing[0]
		return &SerializationError{
			Ref: pdf.used[target],
			Err: fmt.Errorf("%w to object %d", ErrUnresolvedReference, target),
		}
	}

	for ref := Reference(1); ref < pdf.nextRef; ref++ {
		if _, ok := pdf.xref[ref]; !ok {
			return &SerializationError{
				Ref: ref,
				Err: fmt.Errorf("%w: object allocated but never written", ErrUnresolvedReference),
			}
		}
	}
	return nil
}

// writeXRefTable writes a cross-reference table with a single subsection,
// followed by the trailer dictionary.
//
// See section 7.5.4 of ISO 32000-2:2020.
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	// Entries are exactly 20 bytes long, including the two-byte EOL.
	_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for ref := Reference(1); ref < pdf.nextRef; ref++ {
		_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pdf.xref[ref])
		if err != nil {
			return err
		}
	}

	trailer["Size"] = Integer(pdf.nextRef)
	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}
