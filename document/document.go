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

// Package document generates complete PDF invoices.
//
// A [Generator] combines the layout engine, the content stream writer and
// the PDF serializer.  Each call to [Generator.Generate] produces one
// single-page PDF file in memory.  The output depends only on the input
// record and the generator options, so generating the same invoice twice
// gives identical files.
package document

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/ledgerprint/pdf"
	"github.com/ledgerprint/pdf/font/truetype"
	"github.com/ledgerprint/pdf/internal/assembler"
	"github.com/ledgerprint/pdf/invoice"
	"github.com/ledgerprint/pdf/layout"
)

// ContentType is the MIME type of generated documents.
const ContentType = "application/pdf"

// DefaultProducer is written to the document information dictionary.
const DefaultProducer = "ledgerprint/pdf"

// Options control the generation of invoices.
// A nil pointer selects the defaults.
type Options struct {
	// Font is used for all text.  If this is nil, FontFile is loaded.
	// If both are unset, the built-in Go Regular font is used.
	Font     *truetype.Font
	FontFile string

	// Layout changes the appearance of the page.
	Layout *layout.Options

	// Compress enables compression of the page content stream.
	// The embedded font is always compressed.
	Compress bool

	// Metadata adds an XMP metadata stream to the document.
	Metadata bool

	// Producer overrides the producer name in the document information
	// dictionary.
	Producer string

	// Logger receives debug messages about generated documents.
	// If this is nil, nothing is logged.
	Logger *zap.Logger
}

// Generator creates PDF invoices.
// A Generator can be used concurrently from multiple goroutines.
type Generator struct {
	font     *truetype.Font
	engine   *layout.Engine
	compress bool
	metadata bool
	producer string
	log      *zap.Logger
}

// NewGenerator creates a new Generator.
// Errors loading the font are reported as [*GenerationError], wrapping a
// [*truetype.LoadError].
func NewGenerator(opt *Options) (*Generator, error) {
	if opt == nil {
		opt = &Options{}
	}

	F := opt.Font
	if F == nil {
		var err error
		if opt.FontFile != "" {
			F, err = truetype.Load(opt.FontFile)
		} else {
			F, err = truetype.GoRegular()
		}
		if err != nil {
			return nil, &GenerationError{Err: err}
		}
	}

	g := &Generator{
		font:     F,
		engine:   layout.New(F, opt.Layout),
		compress: opt.Compress,
		metadata: opt.Metadata,
		producer: opt.Producer,
		log:      opt.Logger,
	}
	if g.producer == "" {
		g.producer = DefaultProducer
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	return g, nil
}

// Generate creates the PDF file for one invoice.
//
// The record is not validated; missing optional fields are left out of the
// printed page.  If ctx is cancelled before the file is complete,
// ctx.Err() is returned.  All other errors are of type [*GenerationError].
func (g *Generator) Generate(ctx context.Context, rec *invoice.Record) ([]byte, error) {
	start := time.Now()
	g.log.Debug("generating invoice",
		zap.String("invoice", rec.Number),
		zap.Int("items", len(rec.Items)))

	cmds := g.engine.Layout(rec)

	out := assembler.New()
	b := &build{
		Generator: g,
		rec:       rec,
		cmds:      cmds,
		out:       out,
	}
	go func() {
		err := b.run(ctx)
		if err != nil {
			out.CloseWithError(err)
		}
	}()

	data, err := out.Finalize(ctx)
	if err != nil {
		if ctx.Err() != nil && err == ctx.Err() {
			return nil, err
		}
		return nil, &GenerationError{Invoice: rec.Number, Err: err}
	}

	g.log.Debug("invoice generated",
		zap.String("invoice", rec.Number),
		zap.Int("items", len(rec.Items)),
		zap.Int("commands", len(cmds)),
		zap.Int("chunks", out.Chunks()),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	return data, nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName returns the file name used when an invoice is downloaded,
// "invoice-<number>.pdf".  Characters which are not safe in file names are
// replaced by underscores.
func FileName(rec *invoice.Record) string {
	return "invoice-" + unsafeFileChars.ReplaceAllString(rec.Number, "_") + ".pdf"
}

// Info returns the document information dictionary for an invoice.
func (g *Generator) Info(rec *invoice.Record) *pdf.Info {
	return &pdf.Info{
		Title:    "Invoice #" + rec.Number,
		Author:   rec.Company.Name,
		Subject:  "Invoice for " + rec.Client.Name,
		Producer: g.producer,
	}
}
