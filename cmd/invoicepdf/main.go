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

// Invoicepdf generates PDF invoices.
//
// Usage:
//
//	invoicepdf [options] [invoice.json]
//	invoicepdf -serve :8080 [options]
//
// In the first form, the invoice record is read from the given file, or from
// standard input, and the PDF file is written to the file given by -o.  If
// -o is not given, the output goes to standard output, unless this is a
// terminal.  In the second form, an HTTP server is started.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ledgerprint/pdf/document"
	"github.com/ledgerprint/pdf/internal/server"
	"github.com/ledgerprint/pdf/invoice"
)

var (
	fontArg     = flag.String("font", "", "TrueType or OpenType font file (default: Go Regular)")
	outArg      = flag.String("o", "", "output file (default: standard output)")
	serveArg    = flag.String("serve", "", "run an HTTP server on the given address, e.g. \":8080\"")
	compressArg = flag.Bool("z", false, "compress the page content stream")
	xmpArg      = flag.Bool("xmp", false, "add XMP metadata")
	verboseArg  = flag.Bool("v", false, "verbose logging")
)

var errTerminal = errors.New("refusing to write PDF data to a terminal, use -o")

func main() {
	flag.CommandLine.Usage = func() {
		out := flag.CommandLine.Output()
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(out, "Usage: %s [options] [invoice.json]\n", name)
		fmt.Fprintf(out, "       %s -serve <addr> [options]\n", name)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.CommandLine.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*verboseArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, logger)
	if err != nil {
		logger.Error("invoicepdf failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, logger *zap.Logger) error {
	gen, err := document.NewGenerator(&document.Options{
		FontFile: *fontArg,
		Compress: *compressArg,
		Metadata: *xmpArg,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if *serveArg != "" {
		srv, err := server.New(&server.Config{
			Generator: gen,
			Logger:    logger,
		})
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx, *serveArg)
	}

	return generateFile(ctx, gen, flag.Arg(0), *outArg)
}

// generateFile reads an invoice record from inName and writes the PDF file
// to outName.  Empty names refer to standard input and standard output.
func generateFile(ctx context.Context, gen *document.Generator, inName, outName string) error {
	if outName == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errTerminal
	}

	var in io.Reader = os.Stdin
	if inName != "" && inName != "-" {
		fd, err := os.Open(inName)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	}

	rec, err := invoice.Decode(in)
	if err != nil {
		return err
	}

	data, err := gen.Generate(ctx, rec)
	if err != nil {
		return err
	}

	if outName == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outName, data, 0o644)
}
