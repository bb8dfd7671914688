package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/conchobar/candidates/api/http/presenter"
	"github.com/conchobar/candidates/pkg/upload"
)

type UploadHandler struct {
	orch *upload.Orchestrator
	log  *zap.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewUploadHandler(orch *upload.Orchestrator, log *zap.Logger) *UploadHandler {
	return &UploadHandler{orch: orch, log: log, maxBytes: 15 << 20} // 15MB
}

// Upload proxies one CV file to the external ingestion endpoint.
// @Summary Upload a CV
// @Description Accepts a single PDF and forwards it to the ingestion pipeline, which parses the CV and creates the profile row.
// @Tags    uploads
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "CV file (PDF only)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	progress := make(chan int)
	go func() {
		for pct := range progress {
			h.log.Debug("upload progress", zap.String("filename", fh.Filename), zap.Int("pct", pct))
		}
	}()

	err = h.orch.Submit(c.Context(), upload.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, progress)
	if err != nil {
		if errors.Is(err, upload.ErrNotPDF) || errors.Is(err, upload.ErrUnreadablePDF) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		var ie *upload.IngestError
		if errors.As(err, &ie) {
			return presenter.Error(c, http.StatusBadGateway, ie.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "upload failed")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "CV submitted for ingestion",
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
