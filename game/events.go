package game

import "github.com/go-gl/mathgl/mgl64"

// Key is an abstract input command. The raylib key polling in input.go
// translates physical keys into these; tests feed them directly.
type Key uint8

const (
	KeyPause Key = iota
	KeySpeedUp
	KeySpeedDown
	KeyZoomIn
	KeyZoomOut
	KeyReset
	KeyTogglePanel
)

// Button is an abstract pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Event is one ordered input event. Events are applied in arrival order;
// the set is closed (sealed by the unexported marker method).
type Event interface {
	isEvent()
}

// Resize reports a new viewport size.
type Resize struct {
	W, H float64
}

// KeyDown reports a pressed command key.
type KeyDown struct {
	Key Key
}

// PointerDown reports a pointer button press at a screen position.
type PointerDown struct {
	Button Button
	Pos    mgl64.Vec2
}

// PointerUp reports a pointer button release.
type PointerUp struct {
	Button Button
}

// PointerMove reports the pointer at a new screen position.
type PointerMove struct {
	Pos mgl64.Vec2
}

func (Resize) isEvent()      {}
func (KeyDown) isEvent()     {}
func (PointerDown) isEvent() {}
func (PointerUp) isEvent()   {}
func (PointerMove) isEvent() {}
