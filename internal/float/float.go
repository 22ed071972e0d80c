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

// Package float formats floating point numbers for use in PDF files.
package float

import (
	"strconv"
	"strings"
)

// Format formats x using at most the given number of digits after the
// decimal point.  Trailing zeros, a trailing decimal point and a leading
// zero before the decimal point are removed, so that 0.50 becomes ".5" and
// 12.00 becomes "12".
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	switch {
	case out == "-0" || out == "":
		out = "0"
	case strings.HasPrefix(out, "0."):
		out = out[1:]
	case strings.HasPrefix(out, "-0."):
		out = "-" + out[2:]
	}
	return out
}
