package report

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/tokfreq/internal/model"
)

// Writer consumes a ranked list once and is then closed.
type Writer interface {
	Write(entries []model.Entry) error
	Close() error
}

// WriteText emits one "<token> <count>" line per entry in ranked order.
func WriteText(w io.Writer, entries []model.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %d\n", e.Token, e.Count); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// TextWriter writes the plain-text report to a destination.
type TextWriter struct {
	dest Destination
}

// NewTextWriter wraps dest. Closing the writer closes dest.
func NewTextWriter(dest Destination) *TextWriter {
	return &TextWriter{dest: dest}
}

// Write emits the ranked lines.
func (t *TextWriter) Write(entries []model.Entry) error {
	return WriteText(t.dest, entries)
}

// Close flushes and releases the destination.
func (t *TextWriter) Close() error {
	return t.dest.Close()
}

// Exporter stores a ranked list, such as a SQLite database.
type Exporter interface {
	Export(ctx context.Context, entries []model.Entry) error
	Close() error
}

// StoreWriter adapts an Exporter to Writer.
type StoreWriter struct {
	ctx context.Context
	exp Exporter
}

// NewStoreWriter wraps exp. Closing the writer closes exp.
func NewStoreWriter(ctx context.Context, exp Exporter) *StoreWriter {
	return &StoreWriter{ctx: ctx, exp: exp}
}

// Write exports the entries.
func (s *StoreWriter) Write(entries []model.Entry) error {
	if err := s.exp.Export(s.ctx, entries); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}
	return nil
}

// Close releases the exporter.
func (s *StoreWriter) Close() error {
	return s.exp.Close()
}
