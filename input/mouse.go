package input

import "github.com/gdamore/tcell/v2"

// MouseDecoder turns tcell button masks into discrete actions
// tcell reports the held button set on every motion, so a click is the
// transition from released to pressed, and each wheel report is one notch
type MouseDecoder struct {
	prev tcell.ButtonMask
}

// MouseAction is a decoded mouse report
type MouseAction struct {
	Click  bool
	Scroll ScrollDir
	X, Y   int
}

// Decode consumes one mouse event
func (d *MouseDecoder) Decode(ev *tcell.EventMouse) MouseAction {
	buttons := ev.Buttons()
	x, y := ev.Position()
	act := MouseAction{X: x, Y: y}

	switch {
	case buttons&tcell.WheelUp != 0:
		act.Scroll = ScrollUp
	case buttons&tcell.WheelDown != 0:
		act.Scroll = ScrollDown
	}

	pressed := buttons&tcell.Button1 != 0
	wasPressed := d.prev&tcell.Button1 != 0
	act.Click = pressed && !wasPressed

	// Wheel bits are momentary, keep only held buttons
	d.prev = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	return act
}

// Reset forgets the held buttons, used after focus loss
func (d *MouseDecoder) Reset() {
	d.prev = tcell.ButtonNone
}
