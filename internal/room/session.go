package room

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"lookandpick/internal/gaze"
	"lookandpick/internal/locomotion"
)

// Session is one play-through of the room. Frame drives it once per
// rendered frame from the main loop.
type Session struct {
	ID      uuid.UUID
	Head    HeadTracker
	Camera  Camera
	Targets []Target
	Gazed   int // index of the looked-at target, -1 for none
	Bus     *EventBus
	Time    float64

	loco   *locomotion.Controller
	log    *logrus.Entry
	travel float64 // distance since the last footstep
	atWall bool
}

func NewSession(cfg locomotion.Config, log logrus.FieldLogger) (*Session, error) {
	loco, err := locomotion.NewController(cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:      uuid.New(),
		Targets: LayoutTargets(TargetCount),
		Gazed:   -1,
		Bus:     NewEventBus(),
		loco:    loco,
	}
	s.log = log.WithField("session", s.ID.String())
	s.subscribeLog()
	s.log.WithFields(logrus.Fields{
		"threshold": cfg.ThresholdAngle,
		"bounds":    []float64{cfg.BoundAhead, cfg.BoundBehind},
	}).Info("session started")
	return s, nil
}

func (s *Session) subscribeLog() {
	s.Bus.Subscribe(EventBoundary, func(e Event) {
		s.log.WithField("eye_z", e.Position).Debug("reached wall")
	})
	s.Bus.Subscribe(EventTargetPicked, func(e Event) {
		s.log.WithFields(logrus.Fields{"target": e.Target, "eye_z": e.Position}).Info("target picked")
	})
}

func (s *Session) Locomotion() locomotion.State { return s.loco.State() }

// View is the full world-to-eye transform for the current frame.
func (s *Session) View() mgl64.Mat4 {
	return s.Head.View().Mul4(s.Camera.View())
}

func (s *Session) TargetModel(i int) mgl64.Mat4 {
	return s.Targets[i].Model(s.Time)
}

// Frame advances the session by dt seconds. dx, dy are the cursor movement
// since the last frame and trigger reports a fresh trigger press.
func (s *Session) Frame(dt, dx, dy float64, trigger bool) {
	s.Time += dt
	s.Head.Look(dx, dy)
	s.walk()

	s.Gazed = s.nearestTarget()
	if trigger && s.Gazed >= 0 {
		s.Targets[s.Gazed].Picked = true
		s.Bus.Emit(Event{Type: EventTargetPicked, Position: s.Camera.EyeZ, Target: s.Gazed})
		s.Gazed = -1
	}
}

func (s *Session) walk() {
	prev := s.loco.Position()
	pos, err := s.loco.Update(s.Head.Sample())
	if err != nil {
		if errors.Is(err, locomotion.ErrNonFiniteSample) {
			s.log.WithError(err).Warn("head sample rejected, recentering")
			s.Head.Recenter()
			s.Bus.Emit(Event{Type: EventSampleRejected, Position: pos})
			return
		}
		s.log.WithError(err).Error("locomotion update")
		return
	}
	s.Camera.EyeZ = pos

	s.travel += math.Abs(pos - prev)
	if s.travel >= StepSoundDistance {
		s.travel = 0
		s.Bus.Emit(Event{Type: EventStep, Position: pos})
	}

	st := s.loco.State()
	cfg := s.loco.Config()
	moving := st.Direction != locomotion.DirectionStill && st.Orientation != locomotion.OrientationInvalid
	atWall := moving && (pos == cfg.BoundAhead || pos == cfg.BoundBehind)
	if atWall && !s.atWall {
		s.Bus.Emit(Event{Type: EventBoundary, Position: pos})
	}
	s.atWall = atWall
}

// LookingAt reports whether target i is unpicked and within the gaze limit
// of the current line of sight.
func (s *Session) LookingAt(i int) bool {
	if s.Targets[i].Picked {
		return false
	}
	return gaze.IsLookingAt(s.View(), s.TargetModel(i), gaze.AngleLimit)
}

func (s *Session) nearestTarget() int {
	idx := make([]int, 0, len(s.Targets))
	models := make([]mgl64.Mat4, 0, len(s.Targets))
	for i := range s.Targets {
		if s.Targets[i].Picked {
			continue
		}
		idx = append(idx, i)
		models = append(models, s.TargetModel(i))
	}
	i, ok := gaze.Nearest(s.View(), models, gaze.AngleLimit)
	if !ok {
		return -1
	}
	return idx[i]
}

// Remaining counts targets not yet picked.
func (s *Session) Remaining() int {
	n := 0
	for _, t := range s.Targets {
		if !t.Picked {
			n++
		}
	}
	return n
}
