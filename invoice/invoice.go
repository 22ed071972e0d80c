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

// Package invoice describes the business data printed on an invoice.
//
// A [Record] is supplied by the caller and is never modified while a
// document is generated.  Only the client name is required; all other
// fields may be empty, in which case the corresponding line is omitted
// from the printed page.
package invoice

// Record is the input for generating one invoice.
type Record struct {
	Number  string     `json:"invoiceNumber"`
	DueDate string     `json:"dueDate"`
	Items   []LineItem `json:"lineItems"`
	Company Company    `json:"company"`
	Client  Client     `json:"client"`
}

// LineItem is one billable row of an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// Total returns the line total, quantity times unit price.
func (item LineItem) Total() float64 {
	return item.Quantity * item.Price
}

// Company identifies the issuer of an invoice.
type Company struct {
	Name    string `json:"companyName"`
	Address string `json:"companyAddress,omitempty"`
	Email   string `json:"companyEmail,omitempty"`
	Phone   string `json:"companyPhone,omitempty"`
}

// IsZero reports whether no company information is present.
func (c Company) IsZero() bool {
	return c == Company{}
}

// DefaultCompany returns the company settings used when the caller has
// none on record.
func DefaultCompany() Company {
	return Company{
		Name:    "Your Company Name",
		Address: "123 Business Street",
		Email:   "contact@yourcompany.com",
		Phone:   "+1 (555) 123-4567",
	}
}

// Client identifies the party an invoice is addressed to.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Total returns the sum of all line totals.
func (r *Record) Total() float64 {
	var sum float64
	for _, item := range r.Items {
		sum += item.Total()
	}
	return sum
}
