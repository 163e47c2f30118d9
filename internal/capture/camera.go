// Package capture provides frame capture from a webcam or video file using
// GoCV (OpenCV).
package capture

import (
	"errors"
	"image"
	"strconv"
	"sync"

	"gocv.io/x/gocv"
)

// Default capture settings. The frame size matches the geometry the gesture
// classifier's pixel thresholds are tuned for.
const (
	DefaultWidth  = 480
	DefaultHeight = 360
	DefaultFPS    = 15
)

// ErrCameraNotOpen is returned when trying to read from a source that is
// not open.
var ErrCameraNotOpen = errors.New("capture source is not open")

// Camera defines the interface for frame source implementations.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	SetFPS(fps int)
	FPS() int
	Size() (width, height int)
	IsOpen() bool
}

// cameraImpl reads frames from a webcam device or a video file.
type cameraImpl struct {
	source  string
	width   int
	height  int
	capture *gocv.VideoCapture
	mu      sync.Mutex
	running bool
	fps     int
}

// NewCamera creates a Camera for the given source: a small integer string
// ("0", "1", ...) selects a webcam device, anything else is treated as a
// video file path.
func NewCamera(source string) Camera {
	return &cameraImpl{
		source: source,
		width:  DefaultWidth,
		height: DefaultHeight,
		fps:    DefaultFPS,
	}
}

// Open opens the capture source and sets the working resolution.
func (c *cameraImpl) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	var (
		capture *gocv.VideoCapture
		err     error
	)
	if id, convErr := strconv.Atoi(c.source); convErr == nil {
		capture, err = gocv.OpenVideoCapture(id)
	} else {
		capture, err = gocv.OpenVideoCapture(c.source)
	}
	if err != nil {
		return err
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(c.width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(c.height))
	capture.Set(gocv.VideoCaptureFPS, float64(c.fps))

	c.capture = capture
	c.running = true
	return nil
}

// Close closes the source and releases resources.
func (c *cameraImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		c.running = false
		return nil
	}

	err := c.capture.Close()
	c.capture = nil
	c.running = false
	return err
}

// ReadFrame reads a single frame. The caller is responsible for closing the
// returned Mat.
func (c *cameraImpl) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok {
		mat.Close()
		return nil, errors.New("failed to read frame from source")
	}
	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	// Video files ignore the capture-size properties, so resize there.
	if mat.Cols() != c.width || mat.Rows() != c.height {
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(c.width, c.height), 0, 0, gocv.InterpolationLinear)
		mat.Close()
		return &resized, nil
	}

	return &mat, nil
}

// SetFPS sets the frames per second for capture. Values less than or equal
// to 0 are ignored.
func (c *cameraImpl) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.fps = fps
	if c.capture != nil {
		c.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current frames per second setting.
func (c *cameraImpl) FPS() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps
}

// Size returns the working frame dimensions.
func (c *cameraImpl) Size() (int, int) {
	return c.width, c.height
}

// IsOpen reports whether the source is currently open.
func (c *cameraImpl) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
