// Package locomotion turns per-frame head orientation into a bounded eye
// offset along the room's Z axis. Tilting the head down walks forward,
// tilting it up walks backward, and each stride eases up while the player
// keeps going the same way.
package locomotion

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Direction is the walking intent read from head pitch.
type Direction int

const (
	DirectionInvalid Direction = iota // only before the first moving frame
	DirectionStill
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionStill:
		return "still"
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	}
	return "invalid"
}

// Orientation says which of the two end walls the head faces. Side walls
// are Invalid and disable movement.
type Orientation int

const (
	OrientationInvalid Orientation = iota
	OrientationAhead               // facing -Z
	OrientationBehind              // facing +Z
)

func (o Orientation) String() string {
	switch o {
	case OrientationAhead:
		return "ahead"
	case OrientationBehind:
		return "behind"
	}
	return "invalid"
}

// Sample is one frame of head tracking.
type Sample struct {
	Euler   mgl64.Vec3 // pitch, yaw, roll in radians
	Forward mgl64.Vec3 // unit vector the head points along
}

func (s Sample) finite() bool {
	for _, v := range [...]float64{
		s.Euler[0], s.Euler[1], s.Euler[2],
		s.Forward[0], s.Forward[1], s.Forward[2],
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// State is the controller's memory between frames. The zero value is the
// start-of-session state.
type State struct {
	Direction       Direction
	PrevDirection   Direction
	Orientation     Orientation
	PrevOrientation Orientation
	Step            float64
	Position        float64
}

// ErrNonFiniteSample is returned by Update for samples with NaN or infinite
// components.
var ErrNonFiniteSample = errors.New("non-finite head sample")

// Controller owns a State and advances it once per rendered frame. It is
// not safe for concurrent use; the frame loop owns it.
type Controller struct {
	cfg   Config
	state State
}

// NewController validates cfg and returns a controller in the start state.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg}, nil
}

func (c *Controller) Config() Config    { return c.cfg }
func (c *Controller) State() State      { return c.state }
func (c *Controller) Position() float64 { return c.state.Position }

// setPosition overrides the eye offset. Values outside the room bounds are
// pulled back in on the next Update.
func (c *Controller) setPosition(pos float64) { c.state.Position = pos }

// Reset returns the controller to the start-of-session state.
func (c *Controller) Reset() { c.state = State{} }

// Update consumes one head sample and returns the new eye offset. A sample
// with NaN or infinite components is skipped: the previous offset is
// returned together with ErrNonFiniteSample and the state is untouched.
func (c *Controller) Update(s Sample) (float64, error) {
	st := &c.state
	if !s.finite() {
		return st.Position, fmt.Errorf("%w: euler %v forward %v", ErrNonFiniteSample, s.Euler, s.Forward)
	}

	pos := st.Position
	fz := s.Forward.Z()
	st.Orientation = c.cfg.OrientationOf(fz)
	st.Direction = c.cfg.DirectionOf(s.Euler[0])

	if st.Direction == DirectionStill || st.Orientation == OrientationInvalid {
		st.Position = c.cfg.clamp(pos)
		return st.Position, nil
	}

	// Intent is recorded even when the wall blocks the step.
	c.advanceStep(pos)

	if !c.cfg.Allowed(st.Direction, st.Orientation, pos) {
		st.Position = c.cfg.clamp(pos)
		return st.Position, nil
	}

	next := (pos + st.Step) * fz
	if st.Direction == DirectionBackward {
		next = -next
	}
	if towardAhead(st.Direction, st.Orientation) {
		next *= c.cfg.Compensation
	}
	st.Position = c.cfg.clamp(next)
	return st.Position, nil
}

// advanceStep resets the stride on a change of direction or facing and
// grows it otherwise.
func (c *Controller) advanceStep(pos float64) {
	st := &c.state
	if st.Direction == st.PrevDirection && st.Orientation == st.PrevOrientation {
		st.Step += c.cfg.Speed
		return
	}
	if towardAhead(st.Direction, st.Orientation) {
		// Cancels the sign flip of the upcoming multiply by forward.z so the
		// first visible step is one stride.
		st.Step = -(pos*2 - c.cfg.Stride)
	} else {
		st.Step = c.cfg.Stride
	}
	st.PrevDirection = st.Direction
	st.PrevOrientation = st.Orientation
}

func towardAhead(d Direction, o Orientation) bool {
	return (o == OrientationAhead && d == DirectionForward) ||
		(o == OrientationBehind && d == DirectionBackward)
}

// OrientationOf classifies the Z component of the head's forward vector.
func (c Config) OrientationOf(forwardZ float64) Orientation {
	switch {
	case forwardZ <= -c.OrientLimit:
		return OrientationAhead
	case forwardZ >= c.OrientLimit:
		return OrientationBehind
	}
	return OrientationInvalid
}

// DirectionOf classifies head pitch, given in radians.
func (c Config) DirectionOf(pitch float64) Direction {
	deg := mgl64.RadToDeg(pitch)
	switch {
	case deg <= -c.ThresholdAngle:
		return DirectionForward
	case deg >= c.ThresholdAngle:
		return DirectionBackward
	}
	return DirectionStill
}

// Allowed reports whether moving in direction d while facing o is permitted
// from pos.
func (c Config) Allowed(d Direction, o Orientation, pos float64) bool {
	pastAhead := pos < c.BoundAhead
	pastBehind := pos > c.BoundBehind
	switch d {
	case DirectionForward:
		return !((o == OrientationAhead && pastAhead) || (o == OrientationBehind && pastBehind))
	case DirectionBackward:
		return !((o == OrientationAhead && pastBehind) || (o == OrientationBehind && pastAhead))
	}
	return false
}

func (c Config) clamp(pos float64) float64 {
	return mgl64.Clamp(pos, c.BoundAhead, c.BoundBehind)
}
