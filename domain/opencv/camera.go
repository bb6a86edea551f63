// Package opencv binds the capture and detection interfaces to OpenCV via gocv.
package opencv

import (
	"image"
	"io"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/soocke/circle-shot-go/domain/capture"
)

// Camera reads frames from a local video device and delivers them as RGBA
// at capture.FrameBounds.
type Camera struct {
	DeviceID int

	vc    *gocv.VideoCapture
	raw   gocv.Mat
	sized gocv.Mat
	rgba  gocv.Mat
}

// NewCamera returns an unopened camera for the given device index.
func NewCamera(deviceID int) *Camera {
	return &Camera{DeviceID: deviceID}
}

var _ capture.Device = (*Camera)(nil)

// Open opens the device and requests the working resolution. Drivers may
// ignore the request; Read rescales in that case.
func (c *Camera) Open() error {
	vc, err := gocv.OpenVideoCapture(c.DeviceID)
	if err != nil {
		return errors.Wrapf(err, "open camera %d", c.DeviceID)
	}
	if !vc.IsOpened() {
		vc.Close()
		return errors.Errorf("camera %d not opened", c.DeviceID)
	}
	vc.Set(gocv.VideoCaptureFrameWidth, capture.FrameWidth)
	vc.Set(gocv.VideoCaptureFrameHeight, capture.FrameHeight)
	c.vc = vc
	c.raw = gocv.NewMat()
	c.sized = gocv.NewMat()
	c.rgba = gocv.NewMat()
	return nil
}

// Read grabs one frame into dst. A failed grab is reported as io.EOF.
func (c *Camera) Read(dst *image.RGBA) error {
	if c.vc == nil {
		return errors.New("camera not open")
	}
	if ok := c.vc.Read(&c.raw); !ok || c.raw.Empty() {
		return io.EOF
	}
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	src := c.raw
	if c.raw.Cols() != w || c.raw.Rows() != h {
		gocv.Resize(c.raw, &c.sized, image.Pt(w, h), 0, 0, gocv.InterpolationLinear)
		src = c.sized
	}
	gocv.CvtColor(src, &c.rgba, gocv.ColorBGRToRGBA)

	data := c.rgba.ToBytes()
	row := w * 4
	if len(data) < row*h {
		return errors.Errorf("camera frame %d bytes, want %d", len(data), row*h)
	}
	for y := 0; y < h; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+row], data[y*row:(y+1)*row])
	}
	return nil
}

// Close releases the device and scratch matrices.
func (c *Camera) Close() error {
	if c.vc == nil {
		return nil
	}
	c.raw.Close()
	c.sized.Close()
	c.rgba.Close()
	err := c.vc.Close()
	c.vc = nil
	return errors.Wrap(err, "close camera")
}
