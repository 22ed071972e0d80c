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
	"bytes"
	"compress/zlib"
)

// Filter represents a PDF stream filter.
//
// See section 7.4 of ISO 32000-2:2020.
type Filter interface {
	// Name is the value used in the /Filter entry of the stream dictionary.
	Name() Name

	// Encode applies the filter to the stream data.
	Encode(data []byte) ([]byte, error)
}

// FilterFlate is the FlateDecode filter.
// The output is deterministic for a given input.
type FilterFlate struct {
	// Level is the zlib compression level.  The zero value
	// selects zlib.BestCompression.
	Level int
}

// Name implements the [Filter] interface.
func (f FilterFlate) Name() Name {
	return "FlateDecode"
}

// Encode implements the [Filter] interface.
func (f FilterFlate) Encode(data []byte) ([]byte, error) {
	level := f.Level
	if level == 0 {
		level = zlib.BestCompression
	}
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, level)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
