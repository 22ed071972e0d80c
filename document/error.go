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

import "fmt"

// GenerationError is returned when an invoice cannot be generated.
// The underlying cause can be inspected using [errors.As] and [errors.Is];
// it is normally a [*github.com/ledgerprint/pdf/font/truetype.LoadError]
// or a [*github.com/ledgerprint/pdf.SerializationError].
type GenerationError struct {
	// Invoice is the invoice number, if known.
	Invoice string
	Err     error
}

func (err *GenerationError) Error() string {
	if err.Invoice == "" {
		return fmt.Sprintf("document: generation failed: %v", err.Err)
	}
	return fmt.Sprintf("document: invoice %q: generation failed: %v", err.Invoice, err.Err)
}

func (err *GenerationError) Unwrap() error {
	return err.Err
}
