package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fabclean/laundry-api/internal/httperr"
)

// QRHandler serves the per-order QR artifacts from the local QR directory.
type QRHandler struct {
	dir string
}

func NewQRHandler(dir string) *QRHandler {
	return &QRHandler{dir: dir}
}

func (h *QRHandler) Serve(c *gin.Context) {
	filename := c.Param("filename")

	// reject anything that could escape the QR directory
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		httperr.BadRequest(c, "invalid_filename", "Invalid filename")
		return
	}

	path := filepath.Join(h.dir, filename)
	if _, err := os.Stat(path); err != nil {
		httperr.NotFound(c, "qr_not_found", "QR code not found")
		return
	}

	c.File(path)
}
