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

// Package color implements the device colors used on invoice pages.
//
// Two color spaces are supported:
//   - [DeviceGray]: grayscale colors, e.g. DeviceGray(0.5)
//   - [DeviceRGB]: RGB colors, e.g. DeviceRGB{1, 0, 0}
//
// RGB colors are most conveniently given in CSS hex notation,
// using [ParseHex] or [Hex].
package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents a PDF color in one of the device color spaces.
type Color interface {
	// Values returns the color components, each in the range from 0 to 1.
	Values() []float64

	// FillOperator returns the content stream operator which sets the
	// color for filling operations.
	FillOperator() string
}

// The following types implement the Color interface.
var (
	_ Color = DeviceGray(0)
	_ Color = DeviceRGB{}
)

// The following types also implement the [image/color.Color] interface.
var (
	_ stdcolor.Color = DeviceGray(0)
	_ stdcolor.Color = DeviceRGB{}
)

// DeviceGray is a color in the DeviceGray color space.
// The value must be in the range from 0 (black) to 1 (white).
type DeviceGray float64

// Black is the default fill color of a PDF page.
const Black = DeviceGray(0)

// Values implements the [Color] interface.
func (c DeviceGray) Values() []float64 {
	return []float64{float64(c)}
}

// FillOperator returns "g".
// This implements the [Color] interface.
func (c DeviceGray) FillOperator() string {
	return "g"
}

// RGBA implements the [image/color.Color] interface.
func (c DeviceGray) RGBA() (r, g, b, a uint32) {
	v := to16(float64(c))
	return v, v, v, 0xffff
}

// DeviceRGB is a color in the DeviceRGB color space.
// The components must be in the range from 0 to 1.
type DeviceRGB [3]float64

// Values implements the [Color] interface.
func (c DeviceRGB) Values() []float64 {
	return []float64{c[0], c[1], c[2]}
}

// FillOperator returns "rg".
// This implements the [Color] interface.
func (c DeviceRGB) FillOperator() string {
	return "rg"
}

// RGBA implements the [image/color.Color] interface.
func (c DeviceRGB) RGBA() (r, g, b, a uint32) {
	return to16(c[0]), to16(c[1]), to16(c[2]), 0xffff
}

// String returns the color in CSS hex notation.
func (c DeviceRGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c[0]), to8(c[1]), to8(c[2]))
}

var errHexColor = errors.New("invalid hex color")

// ParseHex parses a color given in CSS hex notation, like "#2563eb" or
// "#fff".  The leading "#" is optional.
func ParseHex(s string) (DeviceRGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return DeviceRGB{}, fmt.Errorf("%w %q", errHexColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return DeviceRGB{}, fmt.Errorf("%w %q", errHexColor, s)
	}
	return DeviceRGB{
		float64(v>>16&0xff) / 255,
		float64(v>>8&0xff) / 255,
		float64(v&0xff) / 255,
	}, nil
}

// Hex is like [ParseHex], but panics if the color cannot be parsed.
// This is intended for package-level color constants.
func Hex(s string) DeviceRGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

func to16(x float64) uint32 {
	return uint32(math.Round(clamp01(x) * 0xffff))
}
