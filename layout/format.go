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

package layout

import (
	"math"
	"strconv"
)

// FormatMoney formats an amount with a currency symbol and exactly two
// fractional digits.  Amounts are rounded to the cent, with halves rounded
// away from zero.  Negative amounts keep their sign after the currency
// symbol, e.g. "$-5.00".
func FormatMoney(symbol string, x float64) string {
	cents := math.Round(x * 100)
	if cents == 0 {
		cents = 0 // avoid "-0.00"
	}
	return symbol + strconv.FormatFloat(cents/100, 'f', 2, 64)
}

// FormatQuantity formats a quantity in its shortest decimal form,
// e.g. "2" or "1.5".
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
