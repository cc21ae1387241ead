package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ajinkya1806/Data-Diggers/internal/metrics"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

type DocType string

var (
	PDF   DocType = "PDF"
	Image DocType = "IMAGE"
	ERR   DocType = "ERROR"
)

// TextSource yields the raw extracted text for one page of a stored
// document. The downstream pipeline never sees pixels.
type TextSource interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// VisionClient transcribes a raster page into plain text.
type VisionClient interface {
	Transcribe(ctx context.Context, data []byte, mimeType string) (string, error)
}

// GetDocType resolves the allowed upload formats: png, jpg, jpeg, pdf.
func GetDocType(path string) DocType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF
	case ".png", ".jpg", ".jpeg":
		return Image
	default:
		return ERR
	}
}

type Reader struct {
	vision VisionClient
	logger *logger_i.Logger
}

func NewReader(vision VisionClient) *Reader {
	return &Reader{
		vision: vision,
		logger: logger_i.NewLogger("OCR Reader"),
	}
}

func (r *Reader) ExtractText(ctx context.Context, path string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("ocr", time.Since(start)) }()

	switch GetDocType(path) {
	case PDF:
		return r.extractPDFFirstPage(path)
	case Image:
		return r.transcribeImage(ctx, path)
	default:
		return "", fmt.Errorf("unsupported content type: %s", filepath.Ext(path))
	}
}

func (r *Reader) transcribeImage(ctx context.Context, path string) (string, error) {
	if r.vision == nil {
		return "", fmt.Errorf("ocr engine unavailable")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	text, err := r.vision.Transcribe(ctx, data, mimeTypeFor(path))
	if err != nil {
		return "", fmt.Errorf("image transcription failed: %w", err)
	}
	r.logger.Debug("Transcribed image", "path", path, "chars", len(text))
	return text, nil
}

func mimeTypeFor(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".png" {
		return "image/png"
	}
	return "image/jpeg"
}
