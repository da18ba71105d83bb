package csvwriter

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"os"
)

// GzipWriter writes tab-separated rows into a gzip compressed file.
type GzipWriter struct {
	file   *os.File
	gzip   *gzip.Writer
	writer *csv.Writer
	closed bool
}

func NewGzipWriter(fp string) (*GzipWriter, error) {
	file, err := os.Create(fp)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	gzipWriter := gzip.NewWriter(file)
	csvWriter := csv.NewWriter(gzipWriter)
	csvWriter.Comma = '\t'
	return &GzipWriter{
		file:   file,
		gzip:   gzipWriter,
		writer: csvWriter,
	}, nil
}

func (g *GzipWriter) Write(row []string) error {
	return g.writer.Write(row)
}

func (g *GzipWriter) Flush() error {
	g.writer.Flush()
	return g.writer.Error()
}

func (g *GzipWriter) Close() error {
	if g.closed {
		return fmt.Errorf("writer is already closed")
	}
	g.closed = true

	if err := g.Flush(); err != nil {
		// If the writer failed to flush, let's try to close the gzip writer and file.
		_ = g.gzip.Close()
		_ = g.file.Close()
		return err
	}
	if err := g.gzip.Close(); err != nil {
		// If gzip fails, we should at least try to close the file
		_ = g.file.Close()
		return err
	}
	return g.file.Close()
}
