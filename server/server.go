// SPDX-License-Identifier: MIT

// Package server exposes the analysis operations as a read-only JSON API.
//
// Routes (node arguments are raw labels from the input file):
//
//	GET /health
//	GET /metrics
//	GET /v1/degree
//	GET /v1/closeness
//	GET /v1/betweenness[?start=&end=&via=]
//	GET /v1/paths?start=&end=
//	GET /v1/distances?source=
//	GET /v1/search?target=[&root=]
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/loader"
	"github.com/katalvlaran/socialgraph/matrix"
)

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

// shutdownGrace bounds graceful shutdown.
const shutdownGrace = 10 * time.Second

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnknownNode    = "UNKNOWN_NODE"
	CodeUndefined      = "METRIC_UNDEFINED"
	CodeCanceled       = "CANCELED"
	CodeInternal       = "INTERNAL"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// Engine is the subset of *analysis.Analyzer the server serves.
type Engine interface {
	NodeCount() int
	EdgeCount() int
	Degree(ctx context.Context) (*analysis.Ranking, error)
	Closeness(ctx context.Context) (*analysis.Ranking, error)
	Betweenness(ctx context.Context) (*analysis.Ranking, error)
	Triple(start, end, via int64) (*analysis.TripleReport, error)
	Paths(start, end int64) (*analysis.PathReport, error)
	Distances(source int64) (*analysis.DistanceReport, error)
	Search(target int64) (*analysis.SearchReport, error)
	SearchFrom(root, target int64) (*analysis.SearchReport, error)
}

// Server wires an Engine into a gin router.
type Server struct {
	eng    Engine
	cfg    config.ServerConfig
	log    *slog.Logger
	router *gin.Engine
}

// New builds the router. gatherer may be nil, which disables /metrics.
func New(eng Engine, cfg config.ServerConfig, gatherer prometheus.Gatherer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{eng: eng, cfg: cfg, log: log, router: gin.New()}

	s.router.Use(gin.Recovery(), s.requestID())
	if len(cfg.AllowedOrigins) > 0 {
		s.router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	}

	s.router.GET("/health", s.handleHealth)
	if gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	v1 := s.router.Group("/v1")
	v1.GET("/degree", s.handleRanking(eng.Degree))
	v1.GET("/closeness", s.handleRanking(eng.Closeness))
	v1.GET("/betweenness", s.handleBetweenness)
	v1.GET("/paths", s.handlePaths)
	v1.GET("/distances", s.handleDistances)
	v1.GET("/search", s.handleSearch)

	return s
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Accept", RequestIDHeader}
	c.ExposeHeaders = []string{RequestIDHeader}
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}

	return c
}

// Handler returns the router for use with net/http or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}

// requestID reuses or assigns X-Request-ID and attaches a request logger.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set(RequestIDHeader, id)

		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"nodes":  s.eng.NodeCount(),
		"edges":  s.eng.EdgeCount(),
	})
}

func (s *Server) handleRanking(run func(context.Context) (*analysis.Ranking, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		rk, err := run(c.Request.Context())
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, rk)
	}
}

func (s *Server) handleBetweenness(c *gin.Context) {
	_, hasStart := c.GetQuery("start")
	_, hasEnd := c.GetQuery("end")
	_, hasVia := c.GetQuery("via")
	if !hasStart && !hasEnd && !hasVia {
		s.handleRanking(s.eng.Betweenness)(c)
		return
	}

	labels, err := queryLabels(c, "start", "end", "via")
	if err != nil {
		s.fail(c, err)
		return
	}
	rep, err := s.eng.Triple(labels[0], labels[1], labels[2])
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handlePaths(c *gin.Context) {
	labels, err := queryLabels(c, "start", "end")
	if err != nil {
		s.fail(c, err)
		return
	}
	rep, err := s.eng.Paths(labels[0], labels[1])
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleDistances(c *gin.Context) {
	labels, err := queryLabels(c, "source")
	if err != nil {
		s.fail(c, err)
		return
	}
	rep, err := s.eng.Distances(labels[0])
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleSearch(c *gin.Context) {
	labels, err := queryLabels(c, "target")
	if err != nil {
		s.fail(c, err)
		return
	}

	var rep *analysis.SearchReport
	if _, ok := c.GetQuery("root"); ok {
		var root []int64
		if root, err = queryLabels(c, "root"); err != nil {
			s.fail(c, err)
			return
		}
		rep, err = s.eng.SearchFrom(root[0], labels[0])
	} else {
		rep, err = s.eng.Search(labels[0])
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// errBadQuery marks a missing or malformed query parameter.
var errBadQuery = errors.New("bad query parameter")

// queryLabels parses the named query parameters as node labels.
func queryLabels(c *gin.Context, names ...string) ([]int64, error) {
	out := make([]int64, len(names))
	for i, name := range names {
		raw, ok := c.GetQuery(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s is required", errBadQuery, name)
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a node label", errBadQuery, name, raw)
		}
		out[i] = v
	}

	return out, nil
}

// fail maps err onto a status code and writes an ErrorResponse.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := classify(err)
	id := c.GetString(RequestIDHeader)

	logger := s.log.With("request_id", id, "path", c.FullPath())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	} else {
		logger.Warn("request rejected", "error", err, "status", status)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), Code: code, RequestID: id})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errBadQuery), errors.Is(err, matrix.ErrIndexOutOfRange):
		return http.StatusBadRequest, CodeInvalidRequest
	case errors.Is(err, loader.ErrUnknownLabel):
		return http.StatusNotFound, CodeUnknownNode
	case errors.Is(err, centrality.ErrUndefinedMetric):
		return http.StatusUnprocessableEntity, CodeUndefined
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, CodeCanceled
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
