package ingest

import (
	"log/slog"
	"time"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

// Parser turns one raw export blob into canonical records. An empty keyword set
// means the default Spanish/English vocabulary.
type Parser struct {
	keywords []string
	log      *slog.Logger
	now      func() time.Time // test hook
}

func NewParser(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{keywords: numericKeywords, log: log.With("cmp", "ingest.parser"), now: time.Now}
}

// Parse runs the full pipeline: dialect detection, row splitting, classification,
// normalization, identity resolution and record assembly. Input without a
// recognizable header yields an empty slice and no error; malformed rows and rows
// without identity are skipped, never fatal.
func (p *Parser) Parse(raw string) []models.CompanyRecord {
	lines := splitLines(raw)
	dialect, ok := detectDialect(lines)
	if !ok {
		p.log.Warn("header_marker_not_found", "lines", len(lines))
		return nil
	}

	headers := splitFields(lines[dialect.HeaderIndex], dialect.Delimiter)
	cls := newClassifier(headers, p.keywords)
	now := p.now()

	var records []models.CompanyRecord
	skipped := 0
	for _, line := range lines[dialect.HeaderIndex+1:] {
		fields := splitFields(line, dialect.Delimiter)
		if len(fields) < minFields {
			skipped++
			continue
		}
		rec, ok := buildRecord(headers, fields, cls, now)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	p.log.Info("parse_done",
		"delimiter", string(dialect.Delimiter),
		"records", len(records), "skipped", skipped)
	return records
}
