package system

// Intent represents an action the player asked for this frame
type Intent interface {
	isIntent()
}

// PointerMoveIntent steers the ship toward a screen position
type PointerMoveIntent struct {
	X, Y float64
}

func (PointerMoveIntent) isIntent() {}

// ClickIntent is a primary button press at a screen position
type ClickIntent struct {
	X, Y float64
}

func (ClickIntent) isIntent() {}

// FireIntent fires the main gun
type FireIntent struct{}

func (FireIntent) isIntent() {}

// SpecialIntent launches the homing special attack
type SpecialIntent struct{}

func (SpecialIntent) isIntent() {}

// ConfirmIntent accepts the focused button (Enter)
type ConfirmIntent struct{}

func (ConfirmIntent) isIntent() {}

// CopyIntent copies the result line to the clipboard
type CopyIntent struct{}

func (CopyIntent) isIntent() {}

// Intents converts a polled input state into intents. A pointer move is
// emitted only when the cursor moved since the previous state.
func Intents(prev, cur InputState) []Intent {
	var out []Intent
	if cur.MouseX != prev.MouseX || cur.MouseY != prev.MouseY {
		out = append(out, PointerMoveIntent{X: float64(cur.MouseX), Y: float64(cur.MouseY)})
	}
	if cur.Click {
		out = append(out, ClickIntent{X: float64(cur.MouseX), Y: float64(cur.MouseY)})
	}
	if cur.Fire {
		out = append(out, FireIntent{})
	}
	if cur.Special {
		out = append(out, SpecialIntent{})
	}
	if cur.Confirm {
		out = append(out, ConfirmIntent{})
	}
	if cur.Copy {
		out = append(out, CopyIntent{})
	}
	return out
}
