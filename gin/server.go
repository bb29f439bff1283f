// Package gin serves archived reports over HTTP.
package gin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/sitereport"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout bounds graceful shutdown of the server.
const ShutdownTimeout = 5 * time.Second

// Server exposes a ReportService as a JSON API.
type Server struct {
	reports sitereport.ReportService
	logger  *slog.Logger
	engine  *gin.Engine
}

// NewServer creates a Server backed by reports.
func NewServer(reports sitereport.ReportService, logger *slog.Logger) *Server {
	s := &Server{reports: reports, logger: logger}
	s.engine = s.router()
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (s *Server) router() *gin.Engine {
	router := gin.New()

	router.Use(s.requestLogger())
	router.Use(recovery())

	router.GET("/health", healthCheck)

	v1 := router.Group("/api/v1")
	{
		reports := v1.Group("/reports")
		{
			reports.GET("", s.listReports)
			reports.GET("/:id", s.getReport)
			reports.GET("/:id/download", s.downloadReport)
			reports.DELETE("/:id", s.deleteReport)
		}
	}

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		s.logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}

func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
		c.Abort()
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listReports(c *gin.Context) {
	var filter sitereport.ReportFilter

	if seed := c.Query("seed"); seed != "" {
		filter.SeedURL = &seed
	}
	if name := c.Query("format"); name != "" {
		format, err := sitereport.ParseFormat(name)
		if err != nil {
			s.writeError(c, err)
			return
		}
		filter.Format = &format
	}

	var err error
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		s.writeError(c, err)
		return
	}
	if filter.Offset, err = queryInt(c, "offset"); err != nil {
		s.writeError(c, err)
		return
	}

	reports, err := s.reports.FindReports(c.Request.Context(), filter)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if reports == nil {
		reports = []*sitereport.Report{}
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (s *Server) getReport(c *gin.Context) {
	report, err := s.reports.FindReportByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) downloadReport(c *gin.Context) {
	report, err := s.reports.FindReportByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sitereport.DefaultReportName(report.Format)))
	c.Data(http.StatusOK, report.Format.MIMEType(), report.Payload)
}

func (s *Server) deleteReport(c *gin.Context) {
	if err := s.reports.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps an application error code to an HTTP status.
// Internal error details are logged, never returned.
func (s *Server) writeError(c *gin.Context, err error) {
	code := sitereport.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case sitereport.ENOTFOUND:
		status = http.StatusNotFound
	case sitereport.EINVALID, sitereport.EUNSUPPORTED:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("http error", "path", c.Request.URL.Path, "err", err)
	}

	c.JSON(status, gin.H{"error": sitereport.ErrorMessage(err)})
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, sitereport.Errorf(sitereport.EINVALID, "%s must be a non-negative integer", key)
	}
	return n, nil
}
