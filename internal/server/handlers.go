package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
)

// Response codes.
const (
	codeOK           = 0
	codeMissingInput = 1001
	codeBadFile      = 1002
	codeTooLarge     = 1003
	codeTemplate     = 2001
	codeGenerate     = 2002
	codeNoResult     = 4004
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Response is the JSON envelope of every API reply.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ApplyResult describes a generated workbook.
type ApplyResult struct {
	Filename   string `json:"filename"`
	Download   string `json:"download"`
	Options    int    `json:"options"`
	Attributes int    `json:"attributes"`
	Cached     bool   `json:"cached"`
}

// ValidationData lists the inputs left empty.
type ValidationData struct {
	Missing []string `json:"missing"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    codeOK,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

func (s *Server) handlePurposes(c *gin.Context) {
	success(c, cbamatrix.PurposePresets)
}

// handleApply validates the form and generates the workbook, reusing the
// session's last result when the inputs are unchanged.
func (s *Server) handleApply(c *gin.Context) {
	if s.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
		if err := c.Request.ParseMultipartForm(s.maxUpload); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.log.Warn("upload rejected", "limit", tooLarge.Limit)
				errorResponse(c, codeTooLarge, fmt.Sprintf("File too large (max %d MB)", s.maxUpload>>20))
				return
			}
		}
	}

	req := cbamatrix.Request{
		Purpose:         cbamatrix.ResolvePurpose(c.PostForm("purpose"), c.PostForm("purpose_other")),
		ProjectName:     c.PostForm("project_name"),
		ProjectLocation: c.PostForm("project_location"),
		SheetName:       c.PostForm("sheet"),
	}.Normalize()

	file, header, fileErr := c.Request.FormFile("file")
	if fileErr == nil {
		defer file.Close()
	}

	if err := cbamatrix.Validate(req, fileErr == nil); err != nil {
		var verr *cbamatrix.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusOK, Response{
				Code:    codeMissingInput,
				Message: verr.Error(),
				Data:    ValidationData{Missing: verr.Missing},
			})
			return
		}
		errorResponse(c, codeMissingInput, err.Error())
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		errorResponse(c, codeBadFile, "Only .xlsx and .xlsm files are supported")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		errorResponse(c, codeBadFile, "Failed to read uploaded file")
		return
	}

	cache := s.sessions.cache(c)
	sig := cbamatrix.NewSignature(req, header.Filename, header.Size)
	result, cached, err := cache.Get(sig, func() (*cbamatrix.Result, error) {
		return s.generate(content, req)
	})
	if err != nil {
		s.log.Warn("generation failed", "file", header.Filename, "error", err)
		var perr *cbamatrix.TemplateParseError
		if errors.As(err, &perr) {
			errorResponse(c, codeTemplate, "Could not read the template: "+perr.Err.Error())
			return
		}
		errorResponse(c, codeGenerate, "Error while generating the workbook: "+err.Error())
		return
	}

	s.log.Info("workbook generated",
		"filename", result.Filename,
		"options", result.Options,
		"attributes", result.Attributes,
		"cached", cached)

	success(c, ApplyResult{
		Filename:   result.Filename,
		Download:   "/api/download",
		Options:    result.Options,
		Attributes: result.Attributes,
		Cached:     cached,
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	cache := s.sessions.lookup(c)
	if cache == nil {
		errorResponse(c, codeNoResult, "Nothing generated yet")
		return
	}
	result := cache.Last()
	if result == nil {
		errorResponse(c, codeNoResult, "Nothing generated yet")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, xlsxContentType, result.Data)
}
