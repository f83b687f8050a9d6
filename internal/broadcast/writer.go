package broadcast

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer persists generated scripts to disk, one file per broadcast day.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Save writes the script as script-YYYY-MM-DD.txt and returns its path.
func (w *Writer) Save(date time.Time, script string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create broadcast dir: %w", err)
	}
	path := filepath.Join(w.dir, fmt.Sprintf("script-%s.txt", date.Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return "", fmt.Errorf("write script: %w", err)
	}
	return path, nil
}
