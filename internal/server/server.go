// Package server serves the template upload form and the generated workbooks.
package server

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukaji3/cbamatrix-go/internal/config"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
)

//go:embed static
var staticFiles embed.FS

// GenerateFunc produces a workbook from template bytes.
type GenerateFunc func(data []byte, req cbamatrix.Request) (*cbamatrix.Result, error)

// Server is the HTTP front end.
type Server struct {
	router   *gin.Engine
	log      *slog.Logger
	sessions *sessionStore
	generate GenerateFunc

	// maxUpload caps the apply request body in bytes; 0 disables the cap.
	maxUpload int64
}

// New creates a server that generates with cbamatrix.Generate.
func New(cfg *config.AppConfig, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	opts := cbamatrix.DefaultOptions()
	opts.Logger = log
	return NewWithGenerator(cfg, log, func(data []byte, req cbamatrix.Request) (*cbamatrix.Result, error) {
		return cbamatrix.Generate(data, req, opts)
	})
}

// NewWithGenerator creates a server with a custom generator.
func NewWithGenerator(cfg *config.AppConfig, log *slog.Logger, generate GenerateFunc) *Server {
	if log == nil {
		log = slog.Default()
	}
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	s := &Server{
		router:    router,
		log:       log,
		sessions:  newSessionStore(),
		generate:  generate,
		maxUpload: cfg.Server.MaxUploadMB << 20,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	sub, _ := fs.Sub(staticFiles, "static")
	s.router.GET("/", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	api := s.router.Group("/api")
	{
		api.GET("/purposes", s.handlePurposes)
		api.POST("/apply", s.handleApply)
		api.GET("/download", s.handleDownload)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts serving on addr.
func (s *Server) Run(addr string) error {
	s.log.Info("server listening", "addr", addr)
	return s.router.Run(addr)
}
