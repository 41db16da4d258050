// Package uploads accepts research documents and returns their extracted text.
package uploads

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"researchspark-backend/internal/analyses"
	"researchspark-backend/internal/extract"
	"researchspark-backend/internal/shared/metrics"
	"researchspark-backend/internal/shared/server/respond"
	"researchspark-backend/internal/shared/util"
)

const maxUploadBytes = 5 << 20

// Handler extracts text from uploaded files. Uploads are processed in memory
// and never stored.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/extract", h.extractText)
}

func (h *Handler) extractText(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, analyses.CodeValidation, "file is required", nil)
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, analyses.CodeValidation, "file exceeds the 5 MiB limit", nil)
		return
	}

	fileName, err := util.SanitizeFileName(header.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, analyses.CodeValidation, "invalid file name", nil)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, analyses.CodeInternal, "failed to read upload", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, analyses.CodeValidation, "file exceeds the 5 MiB limit", nil)
		return
	}

	text, err := extract.FromBytes(data, header.Header.Get("Content-Type"), fileName)
	if err != nil {
		metrics.IncExtraction(false)
		switch {
		case errors.Is(err, extract.ErrUnsupportedFileType):
			respond.Error(c, http.StatusBadRequest, analyses.CodeUnsupportedFileType, "only PDF and plain-text files are accepted", nil)
		case errors.Is(err, extract.ErrEmptyExtraction):
			respond.Error(c, http.StatusUnprocessableEntity, analyses.CodeEmptyExtraction, "no readable text found in the uploaded file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, analyses.CodeInternal, "failed to extract text", nil)
		}
		return
	}

	metrics.IncExtraction(true)
	respond.OK(c, gin.H{
		"fileName":  fileName,
		"text":      text,
		"wordCount": util.CountWords(text),
	})
}
