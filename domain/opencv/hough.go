package opencv

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/soocke/circle-shot-go/domain/detect"
	"github.com/soocke/circle-shot-go/domain/vision"
)

// HoughDetector runs cv::HoughCircles with the gradient method.
type HoughDetector struct {
	params detect.Params
}

// NewHoughDetector returns a detector configured with p.
func NewHoughDetector(p detect.Params) *HoughDetector {
	return &HoughDetector{params: p}
}

var _ detect.Detector = (*HoughDetector)(nil)

// Detect returns every circle OpenCV reports for gray, in frame coordinates.
func (d *HoughDetector) Detect(gray *image.Gray) ([]vision.Circle, error) {
	if gray == nil {
		return nil, detect.ErrNilRaster
	}
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, nil
	}
	pix := gray.Pix
	if gray.Stride != w {
		pix = make([]byte, 0, w*h)
		for y := 0; y < h; y++ {
			off := y * gray.Stride
			pix = append(pix, gray.Pix[off:off+w]...)
		}
	}
	src, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, pix)
	if err != nil {
		return nil, errors.Wrap(err, "gray to mat")
	}
	defer src.Close()

	circles := gocv.NewMat()
	defer circles.Close()

	p := d.params
	gocv.HoughCirclesWithParams(src, &circles, gocv.HoughGradient, p.DP, p.MinDist,
		p.EdgeThreshold, p.AccumulatorThreshold, p.MinRadius, p.MaxRadius)
	if circles.Empty() || circles.Cols() == 0 {
		return nil, nil
	}

	// OpenCV centers are pixel indices; shift to pixel-center coordinates.
	out := make([]vision.Circle, 0, circles.Cols())
	for i := 0; i < circles.Cols(); i++ {
		out = append(out, vision.Circle{
			X:      float64(circles.GetFloatAt(0, i*3)) + 0.5 + float64(b.Min.X),
			Y:      float64(circles.GetFloatAt(0, i*3+1)) + 0.5 + float64(b.Min.Y),
			Radius: float64(circles.GetFloatAt(0, i*3+2)),
		})
	}
	return out, nil
}
