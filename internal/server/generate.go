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

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ledgerprint/pdf/document"
	"github.com/ledgerprint/pdf/invoice"
)

const (
	msgGenerationFailed = "Failed to generate PDF"
	msgBodyTooLarge     = "request body too large"
)

// GeneratePDF handles POST /api/generate-pdf.
//
// The request body is an invoice record in JSON format.  The response is
// the PDF file, sent as an attachment named "invoice-<number>.pdf".
func (s *Server) GeneratePDF(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody)
	rec, err := invoice.Decode(body)
	if err != nil {
		s.metrics.generated.WithLabelValues(resultInputError).Inc()

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.log.Warn("invoice request too large", zap.Int64("limit", tooLarge.Limit))
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": msgBodyTooLarge})
			return
		}

		var inputErr *invoice.InputError
		if !errors.As(err, &inputErr) {
			inputErr = &invoice.InputError{Reason: "invalid request", Err: err}
		}
		s.log.Warn("invalid invoice request", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": inputErr.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	start := time.Now()
	data, err := s.gen.Generate(ctx, rec)
	if err != nil {
		s.metrics.generated.WithLabelValues(resultFailure).Inc()
		s.log.Error("pdf generation failed",
			zap.String("invoice", rec.Number),
			zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgGenerationFailed})
		return
	}
	s.metrics.generated.WithLabelValues(resultSuccess).Inc()
	s.metrics.duration.Observe(time.Since(start).Seconds())
	s.metrics.size.Observe(float64(len(data)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.FileName(rec)))
	c.Data(http.StatusOK, document.ContentType, data)
}
