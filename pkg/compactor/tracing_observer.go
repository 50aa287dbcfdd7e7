package compactor

import (
	"github.com/buildbarn/bb-defrag/pkg/blockstore"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type tracingObserver struct {
	base Observer
	span trace.Span
}

// NewTracingObserver creates a decorator for Observer that adds an
// event to an OpenTelemetry trace span for every file that is
// considered for relocation. Swaps made by the unit compactor are too
// numerous to be recorded individually, so they are not traced.
func NewTracingObserver(base Observer, span trace.Span) Observer {
	return &tracingObserver{
		base: base,
		span: span,
	}
}

func (o *tracingObserver) BlocksSwapped(from, to int) {
	o.base.BlocksSwapped(from, to)
}

func (o *tracingObserver) SectorIndexBuilt(sectorCount int) {
	o.base.SectorIndexBuilt(sectorCount)
}

func (o *tracingObserver) FileRelocated(fileID blockstore.FileID, from, to, length int) {
	o.span.AddEvent("FileRelocated", trace.WithAttributes(
		attribute.Int64("file_id", int64(fileID)),
		attribute.Int("from", from),
		attribute.Int("to", to),
		attribute.Int("length", length),
	))
	o.base.FileRelocated(fileID, from, to, length)
}

func (o *tracingObserver) FileSkipped(fileID blockstore.FileID, start, length int) {
	o.span.AddEvent("FileSkipped", trace.WithAttributes(
		attribute.Int64("file_id", int64(fileID)),
		attribute.Int("start", start),
		attribute.Int("length", length),
	))
	o.base.FileSkipped(fileID, start, length)
}
