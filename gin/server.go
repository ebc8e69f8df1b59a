// Package gin serves the summarization API and browser client over HTTP.
package gin

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/newsbrief"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = ":5000"

//go:embed index.html
var indexHTML []byte

// Server exposes a SummaryService over HTTP.
type Server struct {
	service newsbrief.SummaryService
	logger  *slog.Logger
	router  *gin.Engine
	server  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request and error logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.server.Addr = addr
	}
}

// NewServer creates a new Server with all routes registered.
func NewServer(service newsbrief.SummaryService, opts ...Option) *Server {
	s := &Server{
		service: service,
		logger:  slog.New(slog.DiscardHandler),
		router:  gin.New(),
		server: &http.Server{
			Addr:              DefaultAddr,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.server.Handler = s.router

	s.router.Use(
		s.requestID,
		s.requestLogger,
		gin.CustomRecoveryWithWriter(io.Discard, s.recover),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:    []string{"Origin", "Content-Type", RequestIDHeader},
			ExposeHeaders:   []string{RequestIDHeader},
			MaxAge:          12 * time.Hour,
		}),
	)

	s.router.GET("/", s.handleIndex)
	api := s.router.Group("/api")
	api.POST("/summarize", s.handleSummarize)
	api.GET("/health", s.handleHealth)
	api.GET("/demo", s.handleDemo)

	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe serves until Shutdown is called. It returns nil after a
// clean shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req newsbrief.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	summary, err := s.service.SummarizeURL(c.Request.Context(), req.URL)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"title":     summary.Title,
		"summary":   summary.Summary,
		"sourceUrl": summary.SourceURL,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleDemo(c *gin.Context) {
	c.JSON(http.StatusOK, newsbrief.DemoArticle())
}

// writeError writes err as a JSON error body with a status derived from its code.
func (s *Server) writeError(c *gin.Context, err error) {
	code, message := newsbrief.ErrorCode(err), newsbrief.ErrorMessage(err)
	status := ErrorStatusCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"request_id", c.GetString("request_id"),
			"path", c.Request.URL.Path,
			"err", err,
		)
	}
	c.JSON(status, gin.H{"error": message})
}

// ErrorStatusCode maps an application error code to an HTTP status.
// Client-side problems with the submitted URL or page are all 400.
func ErrorStatusCode(code string) int {
	switch code {
	case newsbrief.EINVALID, newsbrief.EUNAVAILABLE, newsbrief.EUNPROCESSABLE:
		return http.StatusBadRequest
	case newsbrief.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("request_id", id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

func (s *Server) requestLogger(c *gin.Context) {
	begin := time.Now()
	c.Next()
	s.logger.Info("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(begin),
		"request_id", c.GetString("request_id"),
	)
}

func (s *Server) recover(c *gin.Context, recovered any) {
	s.logger.Error("panic recovered",
		"request_id", c.GetString("request_id"),
		"path", c.Request.URL.Path,
		"panic", recovered,
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": fmt.Sprintf("an error occurred: %v", recovered),
	})
}
