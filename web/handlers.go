package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	invoicing "github.com/xraph/invoicing"
	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
)

const maxBodySize = 1 << 20 // 1MB

// createPaymentRequest is the body for POST /api/payments.
type createPaymentRequest struct {
	InvoiceNumber int64  `json:"invoiceNumber"`
	PaymentMethod string `json:"paymentMethod"`
}

// ──────────────────────────────────────────────────
// Invoice handlers
// ──────────────────────────────────────────────────

func (s *Server) handleListInvoices(c *gin.Context) {
	invoices, err := s.tracker.ListInvoices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (s *Server) handleGetInvoice(c *gin.Context) {
	number, ok := invoiceNumber(c)
	if !ok {
		return
	}

	inv, err := s.tracker.GetInvoice(c.Request.Context(), number)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (s *Server) handleCreateInvoice(c *gin.Context) {
	var draft invoice.Draft
	if !bindJSON(c, &draft) {
		return
	}

	inv, err := s.tracker.CreateInvoice(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (s *Server) handleUpdateInvoice(c *gin.Context) {
	number, ok := invoiceNumber(c)
	if !ok {
		return
	}

	var patch invoice.Patch
	if !bindJSON(c, &patch) {
		return
	}

	inv, err := s.tracker.UpdateInvoice(c.Request.Context(), number, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (s *Server) handleDeleteInvoice(c *gin.Context) {
	number, ok := invoiceNumber(c)
	if !ok {
		return
	}

	if err := s.tracker.DeleteInvoice(c.Request.Context(), number); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": number})
}

func (s *Server) handleRejectInvoice(c *gin.Context) {
	number, ok := invoiceNumber(c)
	if !ok {
		return
	}

	inv, err := s.tracker.RejectInvoice(c.Request.Context(), number)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ──────────────────────────────────────────────────
// Payment handlers
// ──────────────────────────────────────────────────

func (s *Server) handleListPayments(c *gin.Context) {
	payments, err := s.tracker.ListPayments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (s *Server) handleCreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := s.tracker.RecordPayment(c.Request.Context(), req.InvoiceNumber, payment.Method(req.PaymentMethod))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ──────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────

// invoiceNumber parses the :number path parameter. A non-numeric value is a
// malformed identifier, not a missing invoice.
func invoiceNumber(c *gin.Context) (int64, bool) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		writeError(c, invoicing.ErrMalformedNumber)
		return 0, false
	}
	return number, true
}

// bindJSON decodes the request body, rejecting oversized payloads.
func bindJSON(c *gin.Context, v any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorMessage(err)})
		return false
	}
	return true
}

// writeError maps a domain error to an HTTP status and JSON body.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, invoicing.ErrInvoiceNotFound), errors.Is(err, invoicing.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// errorMessage strips the module prefix so clients see a plain message.
func errorMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "invoicing: ")
}
