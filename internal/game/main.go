//go:build !android

package game

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"lookandpick/internal/locomotion"
	"lookandpick/internal/room"
)

func RunDesktop() {
	runtime.LockOSThread()

	log := NewLogger(os.Getenv(EnvDebug) != "")

	cfg, err := comfortConfig()
	if err != nil {
		log.WithError(err).Fatal("comfort profile")
	}

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		log.WithError(err).Warn("audio init failed, continuing without sound")
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.05, 0.05, 0.07, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	session, err := room.NewSession(cfg, log)
	if err != nil {
		panic(fmt.Errorf("session: %w", err))
	}
	session.Bus.Subscribe(room.EventStep, func(room.Event) { PlaySound(SoundStep) })
	session.Bus.Subscribe(room.EventBoundary, func(room.Event) { PlaySound(SoundBump) })
	session.Bus.Subscribe(room.EventTargetPicked, func(room.Event) { PlaySound(SoundPick) })

	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyR) {
			session.Head.Recenter()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		dx, dy := input.CursorDelta(window)
		session.Frame(dt, dx, dy, input.Trigger(window))

		viewProj := room.Projection(fbW, fbH).Mul4(session.View())
		rend.BeginFrame(fbW, fbH)
		rend.DrawRoom(viewProj)
		for i, t := range session.Targets {
			if t.Picked {
				continue
			}
			rend.DrawTarget(viewProj, session.TargetModel(i), t.Color, session.LookingAt(i))
		}

		window.SwapBuffers()
	}

	log.WithFields(logrus.Fields{
		"session":   session.ID.String(),
		"remaining": session.Remaining(),
	}).Info("session ended")
}

// comfortConfig loads the comfort profile named by the environment, or the
// defaults when none is set.
func comfortConfig() (locomotion.Config, error) {
	path := os.Getenv(EnvComfortProfile)
	if path == "" {
		return locomotion.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return locomotion.Config{}, fmt.Errorf("open comfort profile: %w", err)
	}
	defer f.Close()
	cfg, err := locomotion.LoadConfig(f)
	if err != nil {
		return locomotion.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
