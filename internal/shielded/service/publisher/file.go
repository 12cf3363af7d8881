// Package publisher delivers finished graphs to their destinations.
package publisher

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/graph"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/source/filecache"
	"go.uber.org/zap"
)

// Stdout is the File path that writes to standard output.
const Stdout = "-"

// File writes the DOT document to a path, replacing it atomically.
type File struct {
	path   string
	stdout io.Writer
	logger *zap.Logger
}

func NewFile(path string, logger *zap.Logger) *File {
	return &File{path: path, stdout: os.Stdout, logger: logger}
}

func (p *File) Name() string {
	return "file"
}

func (p *File) Publish(ctx context.Context, g *graph.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.path == Stdout {
		return g.WriteDOT(p.stdout)
	}

	var buf bytes.Buffer
	if err := g.WriteDOT(&buf); err != nil {
		return err
	}
	if err := filecache.WriteFileAtomic(p.path, buf.Bytes()); err != nil {
		return err
	}
	p.logger.Info("graph written", zap.String("path", p.path), zap.Int("bytes", buf.Len()))
	return nil
}
