package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/arena-engine/engine/core"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY    int
	MouseDX, MouseDY  int // delta since last frame
	prevMouseX        int
	prevMouseY        int
	LeftPressed       bool
	RightPressed      bool
	LeftJustPressed   bool
	RightJustPressed  bool
	LeftJustReleased  bool
	RightJustReleased bool
	ScrollY           float64

	// Keyboard
	KeysPressed map[ebiten.Key]bool

	// Requests seen since the last TakeIntent
	attackQueued bool
	dashQueued   bool
}

func NewInputState() *InputState {
	return &InputState{
		KeysPressed: make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	// Mouse position
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	// Mouse buttons
	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	rightDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.RightJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	s.LeftPressed = leftDown
	s.RightPressed = rightDown

	// Scroll
	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	// Common keys
	commonKeys := []ebiten.Key{
		ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
		ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
		ebiten.KeySpace, ebiten.KeyShift,
	}
	for _, k := range commonKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}

	// Queue ability requests so a frame without a simulation step keeps them
	if s.KeysPressed[ebiten.KeySpace] || s.LeftPressed {
		s.attackQueued = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyShift) || s.RightJustPressed {
		s.dashQueued = true
	}
}

// TakeIntent builds the intent for one simulation step and clears queued
// ability requests. toWorld maps the cursor to world space; nil skips aiming.
func (s *InputState) TakeIntent(toWorld func(x, y int) (float64, float64)) Intent {
	in := Intent{
		MoveX:  axis(s.held(ebiten.KeyA, ebiten.KeyLeft), s.held(ebiten.KeyD, ebiten.KeyRight)),
		MoveY:  axis(s.held(ebiten.KeyW, ebiten.KeyUp), s.held(ebiten.KeyS, ebiten.KeyDown)),
		Attack: s.attackQueued,
		Dash:   s.dashQueued,
	}
	if toWorld != nil {
		wx, wy := toWorld(s.MouseX, s.MouseY)
		in.Aim = &core.Vec2{X: wx, Y: wy}
	}
	s.attackQueued = false
	s.dashQueued = false
	return in
}

func (s *InputState) held(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if s.KeysPressed[k] {
			return true
		}
	}
	return false
}

func axis(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	}
	return 0
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
