package capture

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// recordCodec is the FOURCC used for recorded video.
const recordCodec = "XVID"

// ErrRecorderClosed is returned when writing to a closed recorder.
var ErrRecorderClosed = errors.New("recorder is closed")

// Recorder writes annotated frames to a timestamped AVI file.
type Recorder struct {
	writer *gocv.VideoWriter
	path   string
	mu     sync.Mutex
}

// NewRecorder creates a recorder writing output_<timestamp>.avi into dir.
func NewRecorder(dir string, width, height int, fps float64) (*Recorder, error) {
	name := fmt.Sprintf("output_%s.avi", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	writer, err := gocv.VideoWriterFile(path, recordCodec, fps, width, height, true)
	if err != nil {
		return nil, fmt.Errorf("open video writer: %w", err)
	}

	return &Recorder{writer: writer, path: path}, nil
}

// Path returns the output file path.
func (r *Recorder) Path() string {
	return r.path
}

// Write appends one frame to the recording.
func (r *Recorder) Write(frame *gocv.Mat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writer == nil {
		return ErrRecorderClosed
	}
	return r.writer.Write(*frame)
}

// Close finishes the recording.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writer == nil {
		return nil
	}
	err := r.writer.Close()
	r.writer = nil
	return err
}
