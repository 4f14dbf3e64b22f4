package mainwindow

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const ringSegments = 60

var (
	ringAccentColor = color.NRGBA{R: 214, G: 69, B: 65, A: 255}
	ringTrackColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
)

// Ring renders countdown progress as a segmented circle filling clockwise
// from twelve o'clock.
type Ring struct {
	widget.BaseWidget
	mu       sync.Mutex
	progress float64
}

// NewRing creates an empty progress ring.
func NewRing() *Ring {
	ring := &Ring{}
	ring.ExtendBaseWidget(ring)
	return ring
}

// SetProgress updates the filled fraction, clamped to [0, 1].
func (ring *Ring) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	ring.mu.Lock()
	changed := ring.progress != progress
	ring.progress = progress
	ring.mu.Unlock()
	if changed {
		ring.Refresh()
	}
}

// Progress returns the current filled fraction.
func (ring *Ring) Progress() float64 {
	ring.mu.Lock()
	defer ring.mu.Unlock()
	return ring.progress
}

// CreateRenderer implements fyne.Widget.
func (ring *Ring) CreateRenderer() fyne.WidgetRenderer {
	segments := make([]*canvas.Line, ringSegments)
	objects := make([]fyne.CanvasObject, ringSegments)
	for i := range segments {
		line := canvas.NewLine(ringTrackColor)
		line.StrokeWidth = 4
		segments[i] = line
		objects[i] = line
	}
	return &ringRenderer{ring: ring, segments: segments, objects: objects}
}

type ringRenderer struct {
	ring     *Ring
	segments []*canvas.Line
	objects  []fyne.CanvasObject
}

func (renderer *ringRenderer) Layout(size fyne.Size) {
	centerX := float64(size.Width) / 2
	centerY := float64(size.Height) / 2
	outer := math.Min(centerX, centerY) - 4
	inner := outer - 12
	if inner < 0 {
		inner = 0
	}

	for i, line := range renderer.segments {
		// Segment zero sits at twelve o'clock; the fill advances clockwise.
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/ringSegments
		sin, cos := math.Sin(angle), math.Cos(angle)
		line.Position1 = fyne.NewPos(float32(centerX+inner*cos), float32(centerY+inner*sin))
		line.Position2 = fyne.NewPos(float32(centerX+outer*cos), float32(centerY+outer*sin))
	}
}

func (renderer *ringRenderer) MinSize() fyne.Size {
	return fyne.NewSize(220, 220)
}

func (renderer *ringRenderer) Refresh() {
	filled := int(renderer.ring.Progress()*ringSegments + 0.5)
	for i, line := range renderer.segments {
		if i < filled {
			line.StrokeColor = ringAccentColor
		} else {
			line.StrokeColor = ringTrackColor
		}
		canvas.Refresh(line)
	}
}

func (renderer *ringRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *ringRenderer) Destroy() {}
