//go:build !android

package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevMouse   map[glfw.MouseButton]bool
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
	haveCursor  bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorDelta returns how far the cursor moved since the previous call, in
// window pixels. The first call reports no movement.
func (in *Input) CursorDelta(window *glfw.Window) (float64, float64) {
	cx, cy := window.GetCursorPos()
	if !in.haveCursor {
		in.prevCursorX, in.prevCursorY = cx, cy
		in.haveCursor = true
		return 0, 0
	}
	dx, dy := cx-in.prevCursorX, cy-in.prevCursorY
	in.prevCursorX, in.prevCursorY = cx, cy
	return dx, dy
}

// Trigger stands in for the headset button: left click or space.
func (in *Input) Trigger(window *glfw.Window) bool {
	click := in.JustClicked(window, glfw.MouseButtonLeft)
	key := in.JustPressed(window, glfw.KeySpace)
	return click || key
}
