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
	"fmt"
	"io"
)

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this library.
const (
	V1_4 Version = iota + 4
	V1_5
	V1_6
	V1_7
)

func (ver Version) String() string {
	return fmt.Sprintf("1.%d", int(ver))
}

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// Version is the PDF version written to the file header.
	// The zero value means [V1_7].
	Version Version
}

// Writer represents a PDF file open for writing.
//
// Objects are written sequentially, in the order the methods are called.
// Objects refer to each other by object number only, so forward references
// to allocated but not yet written objects are allowed.  Close checks that
// every reference has been resolved before the cross-reference table and the
// trailer are written.
type Writer struct {
	w       *posWriter
	ver     Version
	nextRef Reference
	xref    map[Reference]int64
	used    map[Reference]Reference // referenced object -> first object using it
	info    *Info

	openStream *streamWriter
}

// NewWriter prepares a PDF file for writing.
// The file header is written to w immediately.
func NewWriter(w io.Writer, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = V1_7
	}
	if ver < V1_4 || ver > V1_7 {
		return nil, fmt.Errorf("pdf: unsupported version %s", ver)
	}

	pdf := &Writer{
		w:       &posWriter{w: w},
		ver:     ver,
		nextRef: 1,
		xref:    make(map[Reference]int64),
		used:    make(map[Reference]Reference),
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// GetVersion returns the PDF version of the file being written.
func (pdf *Writer) GetVersion() Version {
	return pdf.ver
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := pdf.nextRef
	pdf.nextRef++
	return ref
}

// SetInfo sets the document information dictionary, which is written
// when the file is closed.
func (pdf *Writer) SetInfo(info *Info) {
	pdf.info = info
}

// Write writes an object to the PDF file, as an indirect object.  If ref is
// 0, a new object number is allocated.  The returned reference can be used to
// refer to this object from other parts of the file.
func (pdf *Writer) Write(obj Object, ref Reference) (Reference, error) {
	if pdf.w == nil {
		return 0, ErrClosed
	}
	if pdf.openStream != nil {
		return 0, &SerializationError{Ref: pdf.openStream.ref, Err: ErrOpenStream}
	}

	if ref == 0 {
		ref = pdf.Alloc()
	}
	err := pdf.register(ref, obj)
	if err != nil {
		return 0, err
	}

	pdf.xref[ref] = pdf.w.pos
	_, err = fmt.Fprintf(pdf.w, "%d 0 obj\n", ref)
	if err != nil {
		return 0, err
	}
	if obj == nil {
		_, err = pdf.w.Write([]byte("null"))
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return 0, err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	if err != nil {
		return 0, err
	}

	return ref, nil
}

// register checks that ref can be written and records all references
// contained in obj.
func (pdf *Writer) register(ref Reference, obj Object) error {
	if ref >= pdf.nextRef {
		return &SerializationError{Ref: ref, Err: ErrUnresolvedReference}
	}
	if _, seen := pdf.xref[ref]; seen {
		return &SerializationError{Ref: ref, Err: ErrDuplicateObject}
	}

	var bad Reference
	found := false
	references(obj, func(target Reference) {
		if target == 0 || target >= pdf.nextRef {
			if !found || target < bad {
				bad = target
			}
			found = true
			return
		}
		if _, ok := pdf.used[target]; !ok {
			pdf.used[target] = ref
		}
	})
	if found {
		return &SerializationError{
			Ref: ref,
			Err: fmt.Errorf("%w to object %d", ErrUnresolvedReference, bad),
		}
	}
	return nil
}

// OpenStream adds a PDF stream to the file and returns an io.WriteCloser
// which can be used to add the stream's data.  No other objects can be
// written until the stream is closed.
//
// If dict contains a /Length entry, this must equal the number of bytes
// after all filters have been applied, otherwise Close returns a
// [*SerializationError].  If /Length is missing, it is filled in
// automatically.
func (pdf *Writer) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	if pdf.w == nil {
		return nil, ErrClosed
	}
	if pdf.openStream != nil {
		return nil, &SerializationError{Ref: pdf.openStream.ref, Err: ErrOpenStream}
	}
	if ref == 0 {
		ref = pdf.Alloc()
	}

	// copy the dictionary, so that the caller's value is not modified
	streamDict := make(Dict, len(dict)+2)
	for key, val := range dict {
		streamDict[key] = val
	}
	err := pdf.register(ref, streamDict)
	if err != nil {
		return nil, err
	}

	stm := &streamWriter{
		parent:  pdf,
		ref:     ref,
		dict:    streamDict,
		filters: filters,
	}
	pdf.openStream = stm
	return stm, nil
}

type streamWriter struct {
	parent  *Writer
	ref     Reference
	dict    Dict
	filters []Filter
	buf     bytes.Buffer
	closed  bool
}

func (s *streamWriter) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return s.buf.Write(p)
}

// Close applies the stream filters, writes the stream object to the file
// and verifies that the declared length matches the data.
func (s *streamWriter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	pdf := s.parent
	pdf.openStream = nil

	data := s.buf.Bytes()
	var names Array
	for _, f := range s.filters {
		var err error
		data, err = f.Encode(data)
		if err != nil {
			return fmt.Errorf("pdf: stream %d: %w", s.ref, err)
		}
		names = append(names, f.Name())
	}
	// Filters are listed in decoding order.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	switch len(names) {
	case 0:
		// pass
	case 1:
		s.dict["Filter"] = names[0]
	default:
		s.dict["Filter"] = names
	}

	declared, hasLength := s.dict["Length"].(Integer)
	if !hasLength {
		declared = Integer(len(data))
		s.dict["Length"] = declared
	}

	pdf.xref[s.ref] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d 0 obj\n", s.ref)
	if err != nil {
		return err
	}
	err = s.dict.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	start := pdf.w.pos
	_, err = pdf.w.Write(data)
	if err != nil {
		return err
	}
	if written := pdf.w.pos - start; written != int64(declared) {
		return &SerializationError{
			Ref: s.ref,
			Err: fmt.Errorf("%w: /Length %d, %d bytes written",
				ErrLengthMismatch, declared, written),
		}
	}
	_, err = pdf.w.Write([]byte("\nendstream\nendobj\n"))
	return err
}

// Close writes the catalog, the information dictionary, the cross-reference
// table and the trailer.  If the underlying io.Writer has a Close() method,
// it is closed afterwards.
//
// Close fails with a [*SerializationError] if a stream is still open, or if
// any object refers to an object which has not been written.
func (pdf *Writer) Close(catalog *Catalog) error {
	if pdf.w == nil {
		return ErrClosed
	}
	if catalog == nil {
		return &SerializationError{Err: errMissingCatalog}
	}
	if catalog.Pages == 0 {
		return &SerializationError{Err: errMissingPages}
	}
	if pdf.openStream != nil {
		return &SerializationError{Ref: pdf.openStream.ref, Err: ErrOpenStream}
	}

	root, err := pdf.Write(catalog.AsDict(), 0)
	if err != nil {
		return err
	}
	trailer := Dict{
		"Root": root,
	}
	if pdf.info != nil {
		infoRef, err := pdf.Write(pdf.info.AsDict(), 0)
		if err != nil {
			return err
		}
		trailer["Info"] = infoRef
	}

	err = pdf.checkReferences()
	if err != nil {
		return err
	}

	xRefPos := pdf.w.pos
	err = pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	closer, ok := pdf.w.w.(io.Closer)
	pdf.w = nil
	if ok {
		return closer.Close()
	}
	return nil
}

// posWriter counts the bytes written, to determine object offsets.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
