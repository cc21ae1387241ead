package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

// Enricher is the text normalizer capability the extractor delegates to.
// Both operations carry their fallback in the contract - they never fail.
type Enricher interface {
	FormatName(ctx context.Context, raw string) string
	InferGender(ctx context.Context, name string) string
}

type Extractor struct {
	enricher Enricher
	logger   *logger_i.Logger
}

func NewExtractor(enricher Enricher) *Extractor {
	return &Extractor{
		enricher: enricher,
		logger:   logger_i.NewLogger("Extractor"),
	}
}

// Extract maps raw OCR text to a typed document record. It never fails on
// malformed input - absence of a pattern match yields the documented
// sentinel, not an error.
func (x *Extractor) Extract(ctx context.Context, rawText string) docModel.DocumentRecord {
	record := docModel.NewEmptyRecord()

	record.DocType = classify(rawText)
	if record.DocType == docModel.DocTypeUnknown {
		// no partial classification leaks downstream
		record.FatherName = docModel.NotApplicable
		x.logger.Warn("Could not classify document from text")
		return record
	}

	record.Identifier = extractIdentifier(rawText, record.DocType)

	lines := splitLines(rawText)
	record.Name = firstAcceptedCandidate(lines, namePatterns[record.DocType])

	if record.DocType == docModel.DocTypePAN {
		record.FatherName = firstAcceptedCandidate(lines, fatherNamePatterns)
	}

	record.DOB = extractDOB(rawText)

	// gender is inferred from the name, PAN only
	if record.DocType == docModel.DocTypePAN {
		record.Gender = x.enricher.InferGender(ctx, record.Name)
	}

	record.Name = x.enricher.FormatName(ctx, record.Name)
	if record.DocType == docModel.DocTypePAN {
		record.FatherName = x.enricher.FormatName(ctx, record.FatherName)
	} else {
		record.FatherName = docModel.NotApplicable
	}

	x.logger.Debug("Extracted document record", "docType", record.DocType, "identifier", record.Identifier)
	return record
}

func classify(text string) docModel.DocumentType {
	if aadharIDPattern.MatchString(text) {
		return docModel.DocTypeAadhar
	}
	if panIDPattern.MatchString(text) {
		return docModel.DocTypePAN
	}
	return docModel.DocTypeUnknown
}

func extractIdentifier(text string, docType docModel.DocumentType) string {
	switch docType {
	case docModel.DocTypeAadhar:
		if m := aadharIDPattern.FindString(text); m != "" {
			return strings.ReplaceAll(m, " ", "")
		}
	case docModel.DocTypePAN:
		if m := panIDPattern.FindString(text); m != "" {
			return m
		}
	}
	return docModel.NotFound
}

// splitLines yields the non-empty, trimmed lines heuristics scan.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	rawLines := strings.Split(text, "\n")

	lines := make([]string, 0, len(rawLines))
	for _, l := range rawLines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// firstAcceptedCandidate walks the pattern cascade in order; within a
// pattern it scans line by line. Multi-line values are not concatenated -
// only the first accepted line is used.
func firstAcceptedCandidate(lines []string, patterns []*regexp.Regexp) string {
	for _, pattern := range patterns {
		for _, line := range lines {
			m := pattern.FindStringSubmatch(line)
			if len(m) < 2 {
				continue
			}
			candidate := strings.TrimSpace(m[1])
			if acceptName(candidate) {
				return candidate
			}
		}
	}
	return docModel.NotFound
}

// acceptName filters out labels and OCR noise: a candidate needs at least
// two whitespace-separated tokens and no digit.
func acceptName(candidate string) bool {
	return len(strings.Fields(candidate)) > 1 && !digitPattern.MatchString(candidate)
}

func extractDOB(text string) string {
	for _, pattern := range dobPatterns {
		if m := pattern.FindStringSubmatch(text); len(m) > 1 {
			return m[1]
		}
	}
	return docModel.NotFound
}
