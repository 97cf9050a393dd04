package ingest

import (
	"context"
	"log/slog"
)

// Service is the whole pipeline behind one call: raw export text in, records
// parsed and upserted sequentially into the sink.
type Service struct {
	parser *Parser
	loader *Loader
}

func NewService(sink Upserter, log *slog.Logger) *Service {
	return &Service{parser: NewParser(log), loader: NewLoader(sink, log)}
}

func (s *Service) Run(ctx context.Context, raw string) IngestReport {
	return s.loader.Load(ctx, s.parser.Parse(raw))
}
