// Package trace records model interactions as JSON lines for offline
// inspection of prompts and responses.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Call is one recorded model interaction.
type Call struct {
	Kind      string        `json:"kind"`
	Model     string        `json:"model"`
	Prompt    string        `json:"prompt"`
	Response  string        `json:"response,omitempty"`
	Err       string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// Recorder appends calls to a JSONL sink. A nil Recorder is a no-op, so
// callers never need to guard their Record calls.
type Recorder struct {
	mu     sync.Mutex
	writer io.WriteCloser
}

// NewRecorder creates a timestamped trace file under dir.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create trace dir: %w", err)
	}
	name := fmt.Sprintf("trace-%s.jsonl", time.Now().Format("20060102-150405"))
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create trace file: %w", err)
	}
	return &Recorder{writer: file}, nil
}

// NewRecorderTo wraps an arbitrary sink.
func NewRecorderTo(w io.WriteCloser) *Recorder {
	return &Recorder{writer: w}
}

// Record appends one call. Write failures are swallowed: tracing must
// never break the pipeline.
func (r *Recorder) Record(call Call) {
	if r == nil || r.writer == nil {
		return
	}
	line, err := json.Marshal(call)
	if err != nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writer.Write(append(line, '\n'))
}

// Close flushes the underlying sink.
func (r *Recorder) Close() error {
	if r == nil || r.writer == nil {
		return nil
	}
	return r.writer.Close()
}
