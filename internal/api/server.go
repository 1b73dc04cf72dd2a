// Package api handles HTTP and WebSocket API endpoints
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/billworks/receipt-render/internal/loader"
	"github.com/billworks/receipt-render/internal/printer"
	"github.com/billworks/receipt-render/internal/render/escpos"
	"github.com/billworks/receipt-render/internal/render/markup"
	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

// Server is the API server
type Server struct {
	router   *gin.Engine
	pool     *printer.Pool
	queue    *printer.Queue
	loader   *loader.Loader
	upgrader websocket.Upgrader
}

// NewServer creates a new API server
func NewServer(pool *printer.Pool, queue *printer.Queue) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()
	router.Use(corsMiddleware())

	server := &Server{
		router: router,
		pool:   pool,
		queue:  queue,
		loader: loader.New(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	// Rendering
	s.router.POST("/render/markup", s.handleRenderMarkup)
	s.router.POST("/render/escpos", s.handleRenderESCPOS)
	s.router.POST("/validate", s.handleValidate)
	s.router.POST("/variables", s.handleVariables)

	// Printing
	s.router.POST("/print", s.handlePrint)
	s.router.GET("/jobs", s.handleGetJobs)
	s.router.GET("/job/:id", s.handleGetJob)
	s.router.GET("/printers", s.handleGetPrinters)

	// WebSocket
	s.router.GET("/ws", s.handleWebSocket)

	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// renderRequest is the common body for render endpoints. A template
// may arrive inline, by local path, or by URL; data is the flat
// variable context.
type renderRequest struct {
	Template     json.RawMessage        `json:"template"`
	TemplatePath string                 `json:"template_path"`
	TemplateURL  string                 `json:"template_url"`
	Data         map[string]interface{} `json:"data"`
	DataPath     string                 `json:"data_path"`
}

// resolveTemplate loads the template from whichever source the
// request carries.
func (req *renderRequest) resolveTemplate() (*template.Template, error) {
	switch {
	case req.TemplateURL != "":
		return loadTemplateFromPathOrURL(req.TemplateURL)
	case req.TemplatePath != "":
		return loadTemplateFromPathOrURL(req.TemplatePath)
	case len(req.Template) > 0:
		return template.Parse(req.Template)
	}
	return nil, fmt.Errorf("template, template_path, or template_url is required")
}

// resolveData builds the variable context for a request. Inline data
// wins; a data_path goes through the loader, and if the file fails to
// parse the last successfully loaded data is used so a broken edit
// does not blank the preview.
func (s *Server) resolveData(req *renderRequest) data.Context {
	if req.Data != nil {
		return data.Context(req.Data)
	}
	if req.DataPath != "" {
		ctx, err := s.loader.LoadData(req.DataPath)
		if err != nil {
			return s.loader.LastData()
		}
		return ctx
	}
	return data.Context{}
}

// loadTemplateFromPathOrURL loads a template from a file path or URL
func loadTemplateFromPathOrURL(pathOrURL string) (*template.Template, error) {
	var raw []byte
	var err error

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		resp, err := http.Get(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch template from URL: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch template: HTTP %d", resp.StatusCode)
		}

		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read template from URL: %w", err)
		}
	} else {
		raw, err = os.ReadFile(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to read template file: %w", err)
		}
	}

	tpl, err := template.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return tpl, nil
}

// handleRenderMarkup renders a template to preview markup
func (s *Server) handleRenderMarkup(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	tpl, err := req.resolveTemplate()
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"markup": markup.Render(tpl, s.resolveData(&req)),
	})
}

// handleRenderESCPOS renders a template to a raw printer command
// stream and returns it as application/octet-stream.
func (s *Server) handleRenderESCPOS(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	tpl, err := req.resolveTemplate()
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	payload := escpos.Render(tpl, s.resolveData(&req))
	c.Data(200, "application/octet-stream", payload)
}

// handleValidate checks a template and reports errors and warnings
func (s *Server) handleValidate(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	tpl, err := req.resolveTemplate()
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	result := template.Validate(tpl)
	c.JSON(200, gin.H{
		"valid":    result.Valid,
		"errors":   result.Errors,
		"warnings": result.Warnings,
	})
}

// handleVariables lists the placeholder names a template references
func (s *Server) handleVariables(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	tpl, err := req.resolveTemplate()
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"variables": template.ExtractVariables(tpl),
	})
}

// handlePrint renders a template and enqueues the result for a printer
func (s *Server) handlePrint(c *gin.Context) {
	var req struct {
		renderRequest
		Printer *printer.Printer `json:"printer"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if req.Printer == nil {
		c.JSON(400, gin.H{"error": "printer is required"})
		return
	}

	tpl, err := req.resolveTemplate()
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	result := template.Validate(tpl)
	if !result.Valid {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid template: %s", strings.Join(result.Errors, "; "))})
		return
	}

	payload := escpos.Render(tpl, s.resolveData(&req.renderRequest))
	jobID := s.queue.Enqueue(*req.Printer, payload)

	c.JSON(200, gin.H{
		"success": true,
		"job_id":  jobID,
	})
}

// handleGetJobs returns all print jobs
func (s *Server) handleGetJobs(c *gin.Context) {
	c.JSON(200, gin.H{"jobs": s.queue.GetAllJobs()})
}

// handleGetJob returns a specific print job
func (s *Server) handleGetJob(c *gin.Context) {
	jobID := c.Param("id")

	job := s.queue.GetJob(jobID)
	if job == nil {
		c.JSON(404, gin.H{"error": "job not found"})
		return
	}

	c.JSON(200, job)
}

// handleGetPrinters returns USB printers visible on the bus
func (s *Server) handleGetPrinters(c *gin.Context) {
	printers, err := printer.DetectUSB()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"printers": printers})
}

// Run starts the API server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
