// Package server exposes the dispatch pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aaalens/internal/dispatch"
)

const shutdownGrace = 10 * time.Second

// Server is the HTTP boundary around a dispatch.Service.
type Server struct {
	addr   string
	svc    *dispatch.Service
	log    *zap.Logger
	engine *gin.Engine
}

// analyzeRequest is the single inbound payload: one test snippet.
type analyzeRequest struct {
	Code string `json:"code"`
}

// New builds the router. A nil logger disables access logging.
func New(addr string, svc *dispatch.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		addr:   addr,
		svc:    svc,
		log:    log,
		engine: gin.New(),
	}
	// Editor extensions post from other origins, so CORS stays open.
	s.engine.Use(gin.Recovery(), s.accessLog(), cors.Default())

	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/analyze", s.handleAnalyze)
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.log.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	return g.Wait()
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Server is running. Use the editor extension to send test code.",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze validates the request and delegates to the dispatch
// pipeline. Per-request analysis failures are reported in the body with
// a 200; only a malformed request itself is a client error.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code cannot be empty"})
		return
	}

	report := s.svc.Handle(c.Request.Context(), req.Code)
	c.JSON(http.StatusOK, report)
}

// accessLog tags each request with an ID and logs its outcome.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", id)

		start := time.Now()
		c.Next()

		s.log.Info("request",
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
