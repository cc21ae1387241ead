package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ajinkya1806/Data-Diggers/internal/extract"
	"github.com/ajinkya1806/Data-Diggers/internal/metrics"
	"github.com/ajinkya1806/Data-Diggers/internal/ocr"
	"github.com/ajinkya1806/Data-Diggers/internal/reconcile"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

// Service is the public contract the handlers call. The private struct
// below keeps the OCR, extraction and reconciliation dependencies out of
// reach so tests can swap them through the constructor.
type Service interface {
	ProcessDocument(ctx context.Context, username string, filePath string) (reconcile.Outcome, error)
	UpdateFields(ctx context.Context, username string, docType string, fields map[string]string) (reconcile.Outcome, error)
}

type service struct {
	textSource ocr.TextSource
	extractor  *extract.Extractor
	engine     *reconcile.Engine
	logger     *logger_i.Logger
}

func NewService(textSource ocr.TextSource, extractor *extract.Extractor, engine *reconcile.Engine) Service {
	return &service{
		textSource: textSource,
		extractor:  extractor,
		engine:     engine,
		logger:     logger_i.NewLogger("Pipeline Service"),
	}
}

// ProcessDocument runs one stored upload through text extraction, field
// extraction and reconciliation, all within the caller's request.
func (s *service) ProcessDocument(ctx context.Context, username string, filePath string) (reconcile.Outcome, error) {
	start := time.Now()
	outcome := reconcile.Outcome{Kind: "FAILED"}
	defer func() { metrics.CapturePipelineMetrics(string(outcome.Kind), time.Since(start)) }()

	rawText, err := s.textSource.ExtractText(ctx, filePath)
	if err != nil {
		return reconcile.Outcome{}, fmt.Errorf("text extraction failed: %w", err)
	}

	record := s.extractor.Extract(ctx, rawText)
	metrics.IncrementDocumentsProcessed(string(record.DocType))

	result, err := s.engine.Reconcile(ctx, username, record)
	if err != nil {
		return reconcile.Outcome{}, err
	}
	outcome = result
	s.logger.Debug("Processed document", "username", username, "outcome", outcome.Kind)
	return outcome, nil
}

func (s *service) UpdateFields(ctx context.Context, username string, docType string, fields map[string]string) (reconcile.Outcome, error) {
	return s.engine.ApplyPatch(ctx, username, docType, fields)
}
