// Package web exposes the invoice tracker as a JSON REST API.
//
// All domain operations are served under /api; the route surface mirrors
// the Tracker API one to one. Responses carry the domain entities directly,
// errors are returned as {"error": message} with the HTTP status carrying
// the error class.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	invoicing "github.com/xraph/invoicing"
	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
)

// Tracker is the subset of the invoicing engine the web layer depends on.
type Tracker interface {
	ListInvoices(ctx context.Context) ([]*invoice.Invoice, error)
	GetInvoice(ctx context.Context, number int64) (*invoice.Invoice, error)
	CreateInvoice(ctx context.Context, draft invoice.Draft) (*invoice.Invoice, error)
	UpdateInvoice(ctx context.Context, number int64, patch invoice.Patch) (*invoice.Invoice, error)
	DeleteInvoice(ctx context.Context, number int64) error
	RejectInvoice(ctx context.Context, number int64) (*invoice.Invoice, error)
	ListPayments(ctx context.Context) ([]*payment.Payment, error)
	RecordPayment(ctx context.Context, invoiceNumber int64, method payment.Method) (*payment.Payment, error)
	Ping(ctx context.Context) error
}

var _ Tracker = (*invoicing.Tracker)(nil)

// Server is the invoicing web server.
type Server struct {
	tracker Tracker
	router  *gin.Engine
	logger  *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the logger for the server.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates a new web server around the given tracker.
func NewServer(t Tracker, opts ...ServerOption) *Server {
	s := &Server{
		tracker: t,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(s.logger), cors())
	s.router = router

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/invoices", s.handleListInvoices)
		api.POST("/invoices", s.handleCreateInvoice)
		api.GET("/invoices/:number", s.handleGetInvoice)
		api.PUT("/invoices/:number", s.handleUpdateInvoice)
		api.DELETE("/invoices/:number", s.handleDeleteInvoice)
		api.POST("/invoices/:number/reject", s.handleRejectInvoice)

		api.GET("/payments", s.handleListPayments)
		api.POST("/payments", s.handleCreatePayment)
	}

	return s
}

// Router returns the underlying gin engine, for mounting or testing.
func (s *Server) Router() *gin.Engine { return s.router }

// Run starts the web server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.tracker.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
