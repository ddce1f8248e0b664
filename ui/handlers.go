package ui

import (
	stderrors "errors"
	"io"
	"net/http"

	"realestate/app"
	"realestate/internal/errors"
	"realestate/ui/middleware"

	"github.com/gin-gonic/gin"
)

// errorKey is the field clients read failure messages from
const errorKey = "Error"

// handleAnalyze answers POST /api/analyze/ with {area, chart_data, summary, table}
func (s *Server) handleAnalyze(c *gin.Context) {
	var req app.AnalyzeRequest
	// An empty body is treated like a body without a query
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		s.respondError(c, errors.ValidationError(err.Error()))
		return
	}

	report, err := s.analyzer.Analyze(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleAreas lists the locations a query can end with
func (s *Server) handleAreas(c *gin.Context) {
	areas, err := s.analyzer.Areas(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// handleColumns lists the normalized dataset columns
func (s *Server) handleColumns(c *gin.Context) {
	columns, err := s.analyzer.Columns(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

func (s *Server) handleHealth(c *gin.Context) {
	rows, loaded := s.analyzer.RowCount()
	if !loaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{errorKey: app.MsgDatasetNotLoaded})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows": rows})
}

// respondError writes {"Error": message} with the status of the error's kind
func (s *Server) respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request %s failed: %v", c.GetString(middleware.RequestIDKey), err)
	} else {
		s.logger.Debug("request %s rejected (%d): %v", c.GetString(middleware.RequestIDKey), status, err)
	}
	c.JSON(status, gin.H{errorKey: errors.PublicMessage(err)})
}
