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

// Package graphics writes PDF content streams.
//
// A [Writer] provides one method for each supported PDF graphics operator.
// The methods use the PDF coordinate system, with the origin in the
// bottom-left corner of the page.  [Writer.Draw] converts the output of the
// layout engine, which uses a top-left origin, into a sequence of operators.
//
// Errors are sticky: once an operator fails, the error is stored in
// [Writer.Err] and all following operators are ignored.
package graphics
