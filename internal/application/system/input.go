package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/pevious/internal/infrastructure/config"
)

// InputState holds the input polled for one frame. Key fields are true only
// on the frame the key went down.
type InputState struct {
	MouseX  int
	MouseY  int
	Click   bool
	Fire    bool
	Special bool
	Confirm bool
	Copy    bool
}

// InputSource produces one InputState per frame
type InputSource interface {
	Poll() InputState
}

// InputSystem polls ebiten for the configured bindings
type InputSystem struct {
	fire    ebiten.Key
	special ebiten.Key
	confirm ebiten.Key
	copy    ebiten.Key
}

// NewInputSystem resolves the key names in cfg
func NewInputSystem(cfg config.ControlsConfig) (*InputSystem, error) {
	s := &InputSystem{}
	bindings := []struct {
		name string
		dst  *ebiten.Key
	}{
		{cfg.Fire, &s.fire},
		{cfg.Special, &s.special},
		{cfg.Confirm, &s.confirm},
		{cfg.Copy, &s.copy},
	}
	for _, b := range bindings {
		if err := b.dst.UnmarshalText([]byte(b.name)); err != nil {
			return nil, fmt.Errorf("failed to bind key %q: %w", b.name, err)
		}
	}
	return s, nil
}

// Poll reads the current input state
func (s *InputSystem) Poll() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:  mx,
		MouseY:  my,
		Click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Fire:    inpututil.IsKeyJustPressed(s.fire),
		Special: inpututil.IsKeyJustPressed(s.special),
		Confirm: inpututil.IsKeyJustPressed(s.confirm),
		Copy:    inpututil.IsKeyJustPressed(s.copy),
	}
}

// Controller turns an InputSource into per-frame intents
type Controller struct {
	src  InputSource
	prev InputState
	init bool
}

// NewController creates a controller over src
func NewController(src InputSource) *Controller {
	return &Controller{src: src}
}

// Next polls the source and returns this frame's intents. The first poll
// always reports the pointer position.
func (c *Controller) Next() []Intent {
	cur := c.src.Poll()
	prev := c.prev
	if !c.init {
		prev.MouseX, prev.MouseY = cur.MouseX-1, cur.MouseY
		c.init = true
	}
	c.prev = cur
	return Intents(prev, cur)
}

// Pointer returns the last polled cursor position
func (c *Controller) Pointer() (x, y float64) {
	return float64(c.prev.MouseX), float64(c.prev.MouseY)
}
