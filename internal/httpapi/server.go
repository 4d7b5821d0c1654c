// Package httpapi exposes the solver over HTTP.
//
//	GET  /healthz              liveness probe, always 200 "OK"
//	POST /v1/solve?render=1    body is maze text; answers with SolveResponse
//
// The optional `facing` query parameter overrides the start facing.
// Malformed mazes are rejected with 400; an unreachable goal is a normal
// 200 response with reachable=false.
package httpapi

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/assert0/aoc24/dijkstra"
	"github.com/assert0/aoc24/gridgraph"
)

// MaxBodyBytes bounds the size of an uploaded maze.
const MaxBodyBytes = 16 << 20

const requestIDHeader = "X-Request-ID"

// Config holds the settings used to build a Server.
type Config struct {
	Logger       *slog.Logger
	ParseOptions []gridgraph.ParseOption // applied before query overrides
	SolveOptions []dijkstra.Option
}

// Server routes solve requests to the engine.
type Server struct {
	logger    *slog.Logger
	parseOpts []gridgraph.ParseOption
	solveOpts []dijkstra.Option
	engine    *gin.Engine
}

// New builds a Server with its routes registered.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:    logger,
		parseOpts: cfg.ParseOptions,
		solveOpts: cfg.SolveOptions,
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestID())
	router.GET("/healthz", s.health)

	v1 := router.Group("/v1")
	{
		v1.POST("/solve", s.solve)
	}
	s.engine = router
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server starting.", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server shutting down.")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestID tags every request with a fresh id, echoed in X-Request-ID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := uuid.New().String()
		ctx.Set(requestIDHeader, id)
		ctx.Header(requestIDHeader, id)

		began := time.Now()
		ctx.Next()
		s.logger.Debug("HTTP request served.",
			"request_id", id,
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"elapsed", time.Since(began))
	}
}

func (s *Server) health(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK\n")
}

// solve handles maze uploads.
func (s *Server) solve(ctx *gin.Context) {
	id := ctx.GetString(requestIDHeader)

	parseOpts := append([]gridgraph.ParseOption(nil), s.parseOpts...)
	if raw := ctx.Query("facing"); raw != "" {
		f, err := gridgraph.ParseFacing(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{ID: id, Error: err.Error()})
			return
		}
		parseOpts = append(parseOpts, gridgraph.WithStartFacing(f))
	}

	render := false
	if raw := ctx.Query("render"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{ID: id, Error: "render must be a boolean"})
			return
		}
		render = b
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxBodyBytes)
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{ID: id, Error: err.Error()})
		return
	}

	g, err := gridgraph.Parse(bytes.NewReader(body), parseOpts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{ID: id, Error: err.Error()})
		return
	}

	res, err := dijkstra.Solve(g, s.solveOpts...)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		resp := SolveResponse{ID: id}
		if render {
			resp.Render = g.String()
		}
		ctx.JSON(http.StatusOK, resp)
		return
	case err != nil:
		s.logger.Error("Solve failed.", "request_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{ID: id, Error: "error while solving maze"})
		return
	}

	cost := res.Cost
	resp := SolveResponse{
		ID:        id,
		Reachable: true,
		Cost:      &cost,
		Tiles:     res.Tiles(),
	}
	if render {
		resp.Render = g.Render(res.Cells)
	}
	ctx.JSON(http.StatusOK, resp)
}
