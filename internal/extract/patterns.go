package extract

import (
	"regexp"

	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
)

// Classification patterns. Aadhar is checked before PAN; first match wins.
var (
	aadharIDPattern = regexp.MustCompile(`\b\d{4}\s\d{4}\s\d{4}\b`)
	panIDPattern    = regexp.MustCompile(`\b[A-Z]{5}\d{4}[A-Z]\b`)
)

// namePatterns is the ordered heuristic cascade per document type. Patterns
// are tried in order against every line; the first capture that passes the
// acceptance filter wins and scanning stops. Each pattern captures the
// content after the label, never the label itself.
var namePatterns = map[docModel.DocumentType][]*regexp.Regexp{
	docModel.DocTypeAadhar: {
		regexp.MustCompile(`(?i)^Name\s*:?\s*(.+)$`),
		regexp.MustCompile(`(?i)Name\s*:?\s*(.+)`),
	},
	docModel.DocTypePAN: {
		regexp.MustCompile(`(?i)^Name\s*:?\s*(.+)$`),
		regexp.MustCompile(`(?i)Name\s*:?\s*(.+)`),
		// fallback for bare full-uppercase name lines, deliberately
		// case-sensitive
		regexp.MustCompile(`^([A-Z\s]+)$`),
	},
}

// fatherNamePatterns only apply to PAN.
var fatherNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Father'?s?\s*Name\s*:?\s*(.+)$`),
	regexp.MustCompile(`(?i)Father'?s?\s*Name\s*:?\s*(.+)`),
}

// dobPatterns run against the whole text, separator priority / then - then .
var dobPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`),
	regexp.MustCompile(`\b(\d{2}-\d{2}-\d{4})\b`),
	regexp.MustCompile(`\b(\d{2}\.\d{2}\.\d{4})\b`),
}

var digitPattern = regexp.MustCompile(`\d`)
