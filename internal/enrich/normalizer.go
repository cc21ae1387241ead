package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ajinkya1806/Data-Diggers/internal/config"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
	"github.com/ajinkya1806/Data-Diggers/internal/metrics"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

// Oracle is the narrow contract with the external text-transformation
// service. It is allowed to fail; the Normalizer absorbs every failure.
type Oracle interface {
	Transform(ctx context.Context, prompt string) (string, error)
}

// Normalizer wraps the oracle with the fallback values baked into the
// contract: FormatName falls back to the raw input, InferGender to
// "Not applicable". Neither operation ever returns an error.
type Normalizer struct {
	oracle Oracle
	logger *logger_i.Logger
}

// NewNormalizer accepts a nil oracle - the service then degrades to the
// fallback values instead of crashing the pipeline.
func NewNormalizer(oracle Oracle) *Normalizer {
	return &Normalizer{
		oracle: oracle,
		logger: logger_i.NewLogger("Normalizer"),
	}
}

const (
	formatNamePrompt  = "Format the following name properly without extra spaces: %s"
	inferGenderPrompt = "Based on the name '%s', infer the most likely gender (Male/Female). If uncertain, return 'Not applicable'."
)

func (n *Normalizer) FormatName(ctx context.Context, raw string) string {
	out, err := n.ask(ctx, fmt.Sprintf(formatNamePrompt, raw))
	if err != nil {
		n.logger.Warn("Name formatting failed, keeping raw value", "error", err)
		return raw
	}
	return out
}

func (n *Normalizer) InferGender(ctx context.Context, name string) string {
	out, err := n.ask(ctx, fmt.Sprintf(inferGenderPrompt, name))
	if err != nil {
		n.logger.Warn("Gender inference failed", "error", err)
		return docModel.NotApplicable
	}
	return out
}

func (n *Normalizer) ask(ctx context.Context, prompt string) (string, error) {
	if n.oracle == nil {
		return "", errors.New("oracle unavailable")
	}

	oracleCtx, cancel := context.WithTimeout(ctx, config.OracleTimeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("oracle", time.Since(start)) }()

	out, err := n.oracle.Transform(oracleCtx, prompt)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", errors.New("empty oracle response")
	}
	return out, nil
}
