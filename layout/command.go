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
	"github.com/ledgerprint/pdf/graphics/color"
)

// Command is a single drawing instruction on an invoice page.
// The concrete types are [*Text] and [*FilledRect].
//
// All coordinates use a top-left origin, with y increasing downwards.
type Command interface {
	isCommand()
}

// Text shows a single line of text.
// X is the left edge of the text and Y is the baseline.
type Text struct {
	Content  string
	X, Y     float64
	FontSize float64
	Color    color.Color
}

// FilledRect fills a rectangle.
// X and Y give the top-left corner.
type FilledRect struct {
	X, Y          float64
	Width, Height float64
	Color         color.Color
}

func (*Text) isCommand()       {}
func (*FilledRect) isCommand() {}
