package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eastsky4dk/youtubeQurator/internal/core/ports"
)

type fileSinkImpl struct {
	dir string
}

// NewFileSink writes export payloads to timestamped text files under dir.
func NewFileSink(dir string) ports.ExportSink {
	if dir == "" {
		dir = "exports"
	}
	return &fileSinkImpl{dir: dir}
}

func (s *fileSinkImpl) Write(payload string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory '%s': %w", s.dir, err)
	}

	name := fmt.Sprintf("curated_%s.txt", time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(s.dir, name)

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create export file '%s': %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(payload); err != nil {
		return "", fmt.Errorf("failed to write export file '%s': %w", path, err)
	}

	return path, nil
}
