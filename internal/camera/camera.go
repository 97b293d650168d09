package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Button identifies a pointer button in toolkit-agnostic terms.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Mode is the controller's current interaction state.
type Mode int

const (
	Idle Mode = iota
	Rotating
	Panning
)

const (
	panFactor   = 0.1
	wheelFactor = 0.001
	initialZoom = -8.0
)

// Controller accumulates orbit, pan and zoom from pointer events. It holds
// the camera state for the lifetime of the viewer; nothing ever resets it.
//
// Events are plain method calls so any host toolkit can drive it. All calls
// are expected on the event thread.
type Controller struct {
	AngleX float32 // degrees, rotation around X (vertical drag)
	AngleY float32 // degrees, rotation around Y (horizontal drag)
	PanX   float32
	PanY   float32
	Zoom   float32 // translation along the view axis, negative = away

	mode      Mode
	leftHeld  bool
	rightHeld bool
	lastX     float32
	lastY     float32

	onMarker func()
}

func NewController() *Controller {
	return &Controller{Zoom: initialZoom}
}

// SetMarkerHandler registers the callback invoked on a middle-button press.
// Object insertion is owned by the host; the controller only raises the event.
func (c *Controller) SetMarkerHandler(fn func()) {
	c.onMarker = fn
}

// Mode returns the current interaction state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// HandlePress starts a drag for the left and right buttons, recording the
// pointer position as the delta reference. A later press wins over a button
// already held. Middle press only fires the marker notification.
func (c *Controller) HandlePress(b Button, x, y float32) {
	switch b {
	case ButtonLeft:
		c.leftHeld = true
		c.mode = Rotating
		c.lastX, c.lastY = x, y
	case ButtonRight:
		c.rightHeld = true
		c.mode = Panning
		c.lastX, c.lastY = x, y
	case ButtonMiddle:
		if c.onMarker != nil {
			c.onMarker()
		}
	}
}

// HandleMove applies the pointer delta to the active drag and advances the
// reference position. Moves while idle are ignored.
func (c *Controller) HandleMove(x, y float32) {
	dx := x - c.lastX
	dy := y - c.lastY
	switch c.mode {
	case Rotating:
		c.AngleX += dy
		c.AngleY += dx
	case Panning:
		c.PanX += dx * panFactor
		c.PanY -= dy * panFactor
	default:
		return
	}
	c.lastX, c.lastY = x, y
}

// HandleRelease ends that button's drag. If the other drag button is still
// held, its mode becomes active again instead of Idle.
func (c *Controller) HandleRelease(b Button) {
	switch b {
	case ButtonLeft:
		c.leftHeld = false
		if c.mode == Rotating {
			if c.rightHeld {
				c.mode = Panning
			} else {
				c.mode = Idle
			}
		}
	case ButtonRight:
		c.rightHeld = false
		if c.mode == Panning {
			if c.leftHeld {
				c.mode = Rotating
			} else {
				c.mode = Idle
			}
		}
	}
}

// HandleWheel adjusts zoom regardless of interaction state. Delta is in
// wheel units, 120 per detent on a typical mouse.
func (c *Controller) HandleWheel(delta float32) {
	c.Zoom += delta * wheelFactor
}

// ViewMatrix composes the camera transform for the frame: pan/zoom
// translation, then the accumulated rotation around X, then around Y.
func (c *Controller) ViewMatrix() mgl32.Mat4 {
	view := mgl32.Translate3D(c.PanX, c.PanY, c.Zoom)
	view = view.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.AngleX)))
	view = view.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.AngleY)))
	return view
}
