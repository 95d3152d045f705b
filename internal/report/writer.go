package report

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Writer persists rendered documents under one output directory.
type Writer struct {
	dir    string
	logger *zap.Logger
}

func NewWriter(dir string, logger *zap.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

func (w *Writer) Write(docs []Document) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, doc := range docs {
		path := filepath.Join(w.dir, doc.Name)
		if err := os.WriteFile(path, []byte(doc.Body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", doc.Name, err)
		}
		w.logger.Info("Report written",
			zap.String("path", path),
			zap.Int("bytes", len(doc.Body)))
	}
	return nil
}
