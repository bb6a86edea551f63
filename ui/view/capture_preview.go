package view

import (
	"image"

	"github.com/soocke/circle-shot-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview shows the annotated frame and the zoomed selection.
// It owns two LabelWidgets and provides methods to update or reset them.
type CapturePreview interface {
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
	Reset()
}

type capturePreview struct {
	captureLabel       *LabelWidget
	detectionLabel     *LabelWidget
	maxW, maxH         int
	prevCapturePhoto   *Img // last Tk photo image instance for capture
	prevDetectionPhoto *Img // last Tk photo image instance for detection
}

const (
	// zoom pane placeholder edge
	zoomPlaceholder = 120
)

// NewCapturePreview creates the preview labels, grids them and returns the view.
// The frame spans columns 0-3 of row; the zoom sits at column 4. Frames
// larger than maxW x maxH are scaled down for display.
func NewCapturePreview(row, maxW, maxH int) CapturePreview {
	capPhoto := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, maxW, maxH)))))
	detPhoto := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, zoomPlaceholder, zoomPlaceholder)))))
	capture := Label(Image(capPhoto), Borderwidth(1), Relief("sunken"))
	detection := Label(Image(detPhoto), Borderwidth(1), Relief("sunken"))
	Grid(capture, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	Grid(detection, Row(row), Column(4), Columnspan(1), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return &capturePreview{
		captureLabel:       capture,
		detectionLabel:     detection,
		maxW:               maxW,
		maxH:               maxH,
		prevCapturePhoto:   capPhoto,
		prevDetectionPhoto: detPhoto,
	}
}

// UpdateCapture encodes img immediately; the caller may reuse it afterwards.
func (v *capturePreview) UpdateCapture(img image.Image) {
	if v.captureLabel == nil || img == nil {
		return
	}
	v.prevCapturePhoto = replacePhoto(v.captureLabel, v.prevCapturePhoto, images.ScaleToFit(img, v.maxW, v.maxH))
}

func (v *capturePreview) UpdateDetection(img image.Image) {
	if v.detectionLabel == nil || img == nil {
		return
	}
	v.prevDetectionPhoto = replacePhoto(v.detectionLabel, v.prevDetectionPhoto, images.ScaleToFit(img, zoomPlaceholder*2, zoomPlaceholder*2))
}

func (v *capturePreview) Reset() {
	if v.captureLabel != nil {
		v.prevCapturePhoto = replacePhoto(v.captureLabel, v.prevCapturePhoto, image.NewRGBA(image.Rect(0, 0, v.maxW, v.maxH)))
	}
	if v.detectionLabel != nil {
		v.prevDetectionPhoto = replacePhoto(v.detectionLabel, v.prevDetectionPhoto, image.NewRGBA(image.Rect(0, 0, zoomPlaceholder, zoomPlaceholder)))
	}
}

// replacePhoto swaps the label's photo, deleting the previous one so
// off-screen pixel data does not accumulate.
func replacePhoto(lbl *LabelWidget, prev *Img, img image.Image) *Img {
	if prev != nil {
		prev.Delete()
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	lbl.Configure(Image(photo))
	return photo
}
