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

package invoice

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// InputError is returned when an invoice record is unusable.
type InputError struct {
	// Field is the JSON name of the offending field, if known.
	Field  string
	Reason string
	Err    error
}

func (err *InputError) Error() string {
	msg := "invoice: "
	if err.Field != "" {
		msg += err.Field + ": "
	}
	msg += err.Reason
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *InputError) Unwrap() error {
	return err.Err
}

// Decode reads a JSON encoded record from r.
// If the record contains no company information, [DefaultCompany] is used.
// The decoded record is validated before it is returned.
func Decode(r io.Reader) (*Record, error) {
	rec := &Record{}
	dec := json.NewDecoder(r)
	err := dec.Decode(rec)
	if err != nil {
		return nil, &InputError{Reason: "malformed JSON", Err: err}
	}
	if dec.More() {
		return nil, &InputError{Reason: "malformed JSON", Err: errTrailingData}
	}

	if rec.Company.IsZero() {
		rec.Company = DefaultCompany()
	}

	err = rec.Validate()
	if err != nil {
		return nil, err
	}
	return rec, nil
}

var errTrailingData = errors.New("unexpected data after record")

// Validate checks that the fields required for printing are present.
// Only the client name is required.  Numeric fields must be finite.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Client.Name) == "" {
		return &InputError{Field: "client.name", Reason: "client name is required"}
	}
	for i, item := range r.Items {
		if !isFinite(item.Quantity) {
			return &InputError{
				Field:  fmt.Sprintf("lineItems[%d].quantity", i),
				Reason: "not a finite number",
			}
		}
		if !isFinite(item.Price) {
			return &InputError{
				Field:  fmt.Sprintf("lineItems[%d].price", i),
				Reason: "not a finite number",
			}
		}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
