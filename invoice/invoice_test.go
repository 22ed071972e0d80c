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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLineItemTotal(t *testing.T) {
	item := LineItem{Description: "Consulting", Quantity: 2, Price: 150}
	if got := item.Total(); got != 300 {
		t.Errorf("Total() = %g, want 300", got)
	}

	// the total follows edits of the item
	item.Quantity = 3
	if got := item.Total(); got != 450 {
		t.Errorf("Total() = %g, want 450", got)
	}
}

func TestRecordTotal(t *testing.T) {
	rec := &Record{}
	if got := rec.Total(); got != 0 {
		t.Errorf("empty record: Total() = %g", got)
	}

	rec.Items = []LineItem{
		{Description: "a", Quantity: 1, Price: 10.5},
		{Description: "b", Quantity: 2, Price: 0.25},
		{Description: "c", Quantity: 1.5, Price: 4},
	}
	if got := rec.Total(); got != 17 {
		t.Errorf("Total() = %g, want 17", got)
	}
}

func TestDecode(t *testing.T) {
	in := `{
		"invoiceNumber": "INV-001",
		"dueDate": "2024-12-31",
		"client": {"name": "Acme Corp", "email": "billing@acme.test"},
		"company": {"companyName": "Widgets Ltd", "companyPhone": "555-0100"},
		"lineItems": [
			{"description": "Consulting", "quantity": 2, "price": 150}
		]
	}`
	rec, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	want := &Record{
		Number:  "INV-001",
		DueDate: "2024-12-31",
		Items: []LineItem{
			{Description: "Consulting", Quantity: 2, Price: 150},
		},
		Company: Company{Name: "Widgets Ltd", Phone: "555-0100"},
		Client:  Client{Name: "Acme Corp", Email: "billing@acme.test"},
	}
	if d := cmp.Diff(want, rec); d != "" {
		t.Errorf("unexpected record (-want +got):\n%s", d)
	}
}

func TestDecodeDefaultCompany(t *testing.T) {
	in := `{"invoiceNumber": "7", "client": {"name": "Acme Corp"}}`
	rec, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(DefaultCompany(), rec.Company); d != "" {
		t.Errorf("unexpected company (-want +got):\n%s", d)
	}
	if rec.Items != nil {
		t.Errorf("unexpected items %v", rec.Items)
	}
}

func TestDecodeErrors(t *testing.T) {
	type testCase struct {
		in    string
		field string
	}
	cases := []testCase{
		{`not json`, ""},
		{`{"client": {"name": "x"}} {}`, ""},
		{`{"lineItems": "none", "client": {"name": "x"}}`, ""},
		{`{"invoiceNumber": "1"}`, "client.name"},
		{`{"client": {"name": "   "}}`, "client.name"},
	}
	for i, c := range cases {
		_, err := Decode(strings.NewReader(c.in))
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Errorf("%d: expected *InputError, got %v", i, err)
			continue
		}
		if inputErr.Field != c.field {
			t.Errorf("%d: Field = %q, want %q", i, inputErr.Field, c.field)
		}
	}
}

func TestValidateNonFinite(t *testing.T) {
	rec := &Record{
		Client: Client{Name: "Acme Corp"},
		Items: []LineItem{
			{Description: "ok", Quantity: 1, Price: 1},
			{Description: "bad", Quantity: 1, Price: math.Inf(1)},
		},
	}
	err := rec.Validate()
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %v", err)
	}
	if inputErr.Field != "lineItems[1].price" {
		t.Errorf("Field = %q", inputErr.Field)
	}
}
